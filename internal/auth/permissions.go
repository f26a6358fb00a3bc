package auth

import (
	"github.com/vidnest/vidnest/internal/db/models"
	"github.com/vidnest/vidnest/internal/roles"
)

// Role labels that guard routes.
const (
	// RoleAdmin allows managing site settings and ad units.
	RoleAdmin = models.RoleAdmin
	// RoleModerator allows moderating content.
	RoleModerator = models.RoleModerator
)

// HasRole reports whether r grants role.
func HasRole(r roles.Roles, role string) (bool, error) {
	switch role {
	case RoleAdmin:
		return r.IsAdmin, nil
	case RoleModerator:
		return r.IsModerator || r.IsAdmin, nil
	default:
		return false, ErrUnknownRole
	}
}

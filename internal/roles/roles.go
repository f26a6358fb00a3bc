// Package roles resolves the privileges of the current identity.
package roles

import (
	"context"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/vidnest/vidnest/internal/db/models"
)

// Source returns the role labels assigned to a user.
type Source interface {
	RolesFor(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// Roles are the privileges derived from role assignments.
type Roles struct {
	IsAdmin     bool `json:"isAdmin"`
	IsModerator bool `json:"isModerator"`
}

// Fetcher derives Roles for an identity. Results are not cached.
type Fetcher struct {
	src Source
}

// NewFetcher creates a Fetcher.
func NewFetcher(src Source) *Fetcher {
	return &Fetcher{src: src}
}

// Fetch queries the roles of identity. A nil identity yields no privileges without a query.
// On failure the error is logged and returned together with empty Roles.
func (f *Fetcher) Fetch(ctx context.Context, identity *uuid.UUID) (Roles, error) {
	if identity == nil || *identity == uuid.Nil {
		return Roles{}, nil
	}

	labels, err := f.src.RolesFor(ctx, *identity)
	if err != nil {
		log.Error().Err(err).Str("user_id", identity.String()).Msg("error fetching user roles")
		return Roles{}, fmt.Errorf("fetch roles: %w", err)
	}

	set := mapset.NewThreadUnsafeSet(labels...)

	return Roles{
		IsAdmin:     set.Contains(models.RoleAdmin),
		IsModerator: set.Contains(models.RoleModerator),
	}, nil
}

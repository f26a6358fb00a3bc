package models

import (
	"time"

	"github.com/google/uuid"
)

// Role labels.
const (
	// RoleAdmin grants access to site administration.
	RoleAdmin = "admin"
	// RoleModerator grants access to content moderation.
	RoleModerator = "moderator"
)

// UserRole assigns a role label to a user. The presence of a row is the grant.
type UserRole struct {
	// ID is the unique identifier of the assignment.
	ID uint64 `gorm:"primaryKey"`
	// UserID references the user holding the role.
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_role"`
	// Role is the role label, e.g. "admin" or "moderator".
	Role string `gorm:"size:50;not null;uniqueIndex:idx_user_role"`
	// User is the associated user; assignments are removed with the user.
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	// CreatedAt is managed by GORM.
	CreatedAt time.Time
}

// TableName specifies the database table name for the UserRole model.
func (UserRole) TableName() string {
	return "user_roles"
}

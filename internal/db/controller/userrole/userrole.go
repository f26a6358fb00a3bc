// Package userrole provides database access for role assignments.
package userrole

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vidnest/vidnest/internal/db/models"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrRoleEmpty is returned when granting an empty role label.
	ErrRoleEmpty = errors.New("role cannot be empty")
)

// RolesFor returns the role labels assigned to userID.
func RolesFor(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]string, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var roles []string

	err := db.WithContext(ctx).
		Model(&models.UserRole{}).
		Where("user_id = ?", userID).
		Pluck("role", &roles).Error
	if err != nil {
		return nil, err
	}

	return roles, nil
}

// Grant assigns role to userID. Granting an existing assignment is a no-op.
func Grant(ctx context.Context, db *gorm.DB, userID uuid.UUID, role string) error {
	if db == nil {
		return ErrDBNil
	}

	if role == "" {
		return ErrRoleEmpty
	}

	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "role"}},
			DoNothing: true,
		}).
		Omit(clause.Associations).
		Create(&models.UserRole{UserID: userID, Role: role}).Error
}

// Revoke removes role from userID.
func Revoke(ctx context.Context, db *gorm.DB, userID uuid.UUID, role string) error {
	if db == nil {
		return ErrDBNil
	}

	return db.WithContext(ctx).
		Where("user_id = ? AND role = ?", userID, role).
		Delete(&models.UserRole{}).Error
}

// FindUserIDByEmail looks up a user id by email, case-insensitively.
func FindUserIDByEmail(ctx context.Context, db *gorm.DB, email string) (uuid.UUID, error) {
	if db == nil {
		return uuid.Nil, ErrDBNil
	}

	var user models.User

	err := db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, ErrUserNotFound
		}

		return uuid.Nil, err
	}

	return user.ID, nil
}

// Store exposes RolesFor over one connection.
type Store struct {
	db *gorm.DB
}

// NewStore creates a Store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// RolesFor see RolesFor.
func (s *Store) RolesFor(ctx context.Context, userID uuid.UUID) ([]string, error) {
	return RolesFor(ctx, s.db, userID)
}

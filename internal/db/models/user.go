package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an identity known to the site.
// Rows are written by the external auth platform, this service only reads them.
type User struct {
	// ID is the identity id issued by the auth platform.
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`
	// Email is the unique login email.
	Email string `gorm:"uniqueIndex;size:255;not null"`
	// DisplayName is shown next to uploaded videos and comments.
	DisplayName string `gorm:"size:100"`
	// CreatedAt is managed by GORM.
	CreatedAt time.Time
	// UpdatedAt is managed by GORM.
	UpdatedAt time.Time
}

// TableName specifies the database table name for the User model.
func (User) TableName() string {
	return "users"
}

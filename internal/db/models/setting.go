// Package models contains database model definitions.
package models

import (
	"time"

	"gorm.io/datatypes"
)

// Setting represents one site setting row, a JSON value stored under a unique key.
type Setting struct {
	ID        uint64         `gorm:"primaryKey"`
	Key       string         `gorm:"column:key;uniqueIndex;size:100;not null"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName specifies the database table name for the Setting model.
func (Setting) TableName() string {
	return "site_settings"
}

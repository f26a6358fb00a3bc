package setting

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/vidnest/vidnest/internal/db/models"
)

// Store exposes the package functions over one connection.
type Store struct {
	db *gorm.DB
}

// NewStore creates a Store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// All returns every setting row.
func (s *Store) All(ctx context.Context) ([]models.Setting, error) {
	return GetAll(ctx, s.db)
}

// Get returns one row or ErrSettingNotFound.
func (s *Store) Get(ctx context.Context, key string) (*models.Setting, error) {
	return Get(ctx, s.db, key)
}

// Delete removes the row for key or returns ErrSettingNotFound.
func (s *Store) Delete(ctx context.Context, key string) error {
	return Delete(ctx, s.db, key)
}

// Upsert inserts or replaces the row for key.
func (s *Store) Upsert(ctx context.Context, key string, value []byte) error {
	_, err := Set(ctx, s.db, key, datatypes.JSON(value))
	return err
}

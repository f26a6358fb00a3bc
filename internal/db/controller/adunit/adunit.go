// Package adunit provides database access for ad units.
package adunit

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vidnest/vidnest/internal/db/models"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrAdUnitNil is returned when a nil unit is passed to Create.
	ErrAdUnitNil = errors.New("ad unit is nil")
	// ErrAdUnitNotFound is returned when a unit does not exist.
	ErrAdUnitNotFound = errors.New("ad unit not found")
)

// videoPlacements are the placements eligible on a video page.
var videoPlacements = []string{models.PlacementVideoPlayer, models.PlacementInPlayer} //nolint:gochecknoglobals

var byPriority = clause.OrderByColumn{Column: clause.Column{Name: "priority"}} //nolint:gochecknoglobals

// ListActive returns active units for a page, sorted ascending by priority.
// Video pages get video_player and in_player units, every other page gets all but video_player units.
func ListActive(ctx context.Context, db *gorm.DB, video bool) ([]models.AdUnit, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	q := db.WithContext(ctx).Where(&models.AdUnit{Status: models.AdStatusActive})

	if video {
		q = q.Where("ad_placement IN ?", videoPlacements)
	} else {
		q = q.Where("ad_placement <> ?", models.PlacementVideoPlayer)
	}

	var units []models.AdUnit
	if err := q.Order(byPriority).Find(&units).Error; err != nil {
		return nil, err
	}

	return units, nil
}

// List returns a page of all units regardless of status, plus the total count.
func List(ctx context.Context, db *gorm.DB, offset, limit int) ([]models.AdUnit, int64, error) {
	if db == nil {
		return nil, 0, ErrDBNil
	}

	var total int64
	if err := db.WithContext(ctx).Model(&models.AdUnit{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var units []models.AdUnit
	if err := db.WithContext(ctx).Order(byPriority).Offset(offset).Limit(limit).Find(&units).Error; err != nil {
		return nil, 0, err
	}

	return units, total, nil
}

// Get returns a single unit by id.
func Get(ctx context.Context, db *gorm.DB, id uuid.UUID) (*models.AdUnit, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var unit models.AdUnit
	if err := db.WithContext(ctx).First(&unit, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdUnitNotFound
		}

		return nil, err
	}

	return &unit, nil
}

// Create stores a new unit.
func Create(ctx context.Context, db *gorm.DB, unit *models.AdUnit) error {
	if db == nil {
		return ErrDBNil
	}

	if unit == nil {
		return ErrAdUnitNil
	}

	return db.WithContext(ctx).Create(unit).Error
}

// SetStatus changes the status of a unit.
func SetStatus(ctx context.Context, db *gorm.DB, id uuid.UUID, status models.AdStatus) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.WithContext(ctx).Model(&models.AdUnit{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrAdUnitNotFound
	}

	return nil
}

// Store exposes the package functions over one connection.
type Store struct {
	db *gorm.DB
}

// NewStore creates a Store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ListActive see ListActive.
func (s *Store) ListActive(ctx context.Context, video bool) ([]models.AdUnit, error) {
	return ListActive(ctx, s.db, video)
}

// Create see Create.
func (s *Store) Create(ctx context.Context, unit *models.AdUnit) error {
	return Create(ctx, s.db, unit)
}

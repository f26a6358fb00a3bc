// Package sitesettings holds the site settings service and the application-scoped settings state.
package sitesettings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"

	"github.com/vidnest/vidnest/internal/db/controller/setting"
	"github.com/vidnest/vidnest/internal/db/models"
)

var (
	// ErrUpdateFailed is returned by SetMany when any update could not be persisted.
	ErrUpdateFailed = errors.New("settings update failed")
	// ErrKeyEmpty is returned when a setting key is empty.
	ErrKeyEmpty = errors.New("setting key is empty")

	writeFailures = promauto.NewCounter(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "site_settings_write_failures_total",
		Help: "Number of setting writes the store rejected.",
	})
)

// Snapshot maps setting keys to their decoded JSON values.
type Snapshot map[string]any

// Clone returns a shallow copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	if s == nil {
		return Snapshot{}
	}

	return maps.Clone(s)
}

// String returns the value for key when it is a string, or "".
func (s Snapshot) String(key string) string {
	v, _ := s[key].(string)
	return v
}

// Update is one key/value pair applied by SetMany.
type Update struct {
	Key   string
	Value any
}

// Store persists setting rows.
type Store interface {
	All(ctx context.Context) ([]models.Setting, error)
	Get(ctx context.Context, key string) (*models.Setting, error)
	Upsert(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Service translates setting keys to store rows.
type Service struct {
	store Store
}

// NewService creates a Service on top of store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Load returns every persisted setting.
func (s *Service) Load(ctx context.Context) (Snapshot, error) {
	rows, err := s.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	snap := make(Snapshot, len(rows))

	for _, row := range rows {
		var v any
		if err = json.Unmarshal(row.Value, &v); err != nil {
			log.Warn().Err(err).Str("key", row.Key).Msg("skipping setting with undecodable value")
			continue
		}

		snap[row.Key] = v
	}

	return snap, nil
}

// GetAll returns every persisted setting. Failures are logged and yield an empty snapshot.
func (s *Service) GetAll(ctx context.Context) Snapshot {
	snap, err := s.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("error fetching settings")
		return Snapshot{}
	}

	return snap
}

// Get returns the value stored under key. A missing row yields found=false and a nil error.
func (s *Service) Get(ctx context.Context, key string) (any, bool, error) {
	row, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, setting.ErrSettingNotFound) {
			return nil, false, nil
		}

		log.Error().Err(err).Str("key", key).Msg("error fetching setting")

		return nil, false, fmt.Errorf("get setting %s: %w", key, err)
	}

	var v any
	if err = json.Unmarshal(row.Value, &v); err != nil {
		log.Error().Err(err).Str("key", key).Msg("error decoding setting")
		return nil, false, fmt.Errorf("decode setting %s: %w", key, err)
	}

	return v, true, nil
}

// Set inserts or replaces the value stored under key.
func (s *Service) Set(ctx context.Context, key string, value any) error {
	if key == "" {
		return ErrKeyEmpty
	}

	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode setting %s: %w", key, err)
	}

	if err = s.store.Upsert(ctx, key, b); err != nil {
		writeFailures.Inc()
		log.Error().Err(err).Str("key", key).Msg("error updating setting")

		return fmt.Errorf("set setting %s: %w", key, err)
	}

	return nil
}

// SetMany applies updates one after another in slice order and stops at the first failure.
// Keys written before the failure stay persisted. The caller only learns that the run failed.
func (s *Service) SetMany(ctx context.Context, updates ...Update) error {
	for _, u := range updates {
		if err := s.Set(ctx, u.Key, u.Value); err != nil {
			return ErrUpdateFailed
		}
	}

	return nil
}

// Delete removes the row stored under key. A missing row yields false and a nil error.
func (s *Service) Delete(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, ErrKeyEmpty
	}

	if err := s.store.Delete(ctx, key); err != nil {
		if errors.Is(err, setting.ErrSettingNotFound) {
			return false, nil
		}

		writeFailures.Inc()
		log.Error().Err(err).Str("key", key).Msg("error deleting setting")

		return false, fmt.Errorf("delete setting %s: %w", key, err)
	}

	return true, nil
}

// Defaults returns the fixed fallback snapshot.
func (s *Service) Defaults() Snapshot {
	return Defaults()
}

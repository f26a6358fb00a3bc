// Package ads selects, classifies and renders ad units for a page.
package ads

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/vidnest/vidnest/internal/db/models"
)

// Source reads and writes ad units.
type Source interface {
	ListActive(ctx context.Context, video bool) ([]models.AdUnit, error)
	Create(ctx context.Context, unit *models.AdUnit) error
}

// Fetcher returns the ad units eligible for a page.
type Fetcher struct {
	src Source
}

// NewFetcher creates a Fetcher.
func NewFetcher(src Source) *Fetcher {
	return &Fetcher{src: src}
}

// Fetch returns the active units for pc sorted ascending by priority. On failure the error is
// logged and an empty list is returned alongside it.
func (f *Fetcher) Fetch(ctx context.Context, pc PageContext) ([]models.AdUnit, error) {
	units, err := f.src.ListActive(ctx, pc.IsVideo())
	if err != nil {
		log.Error().Err(err).Str("context", string(pc.Kind)).Msg("error fetching ad units")
		return []models.AdUnit{}, fmt.Errorf("fetch ad units: %w", err)
	}

	return filter(units, pc), nil
}

// filter drops inactive units and, outside video pages, units with a video format.
func filter(units []models.AdUnit, pc PageContext) []models.AdUnit {
	out := make([]models.AdUnit, 0, len(units))

	for _, u := range units {
		if u.Status != models.AdStatusActive {
			continue
		}

		if !pc.IsVideo() && strings.Contains(strings.ToLower(u.AdFormat), "video") {
			continue
		}

		if _, ok := ParseRenderKind(u.RenderKind); !ok {
			u.RenderKind = string(Classify(u.AdFormat))
		}

		out = append(out, u)
	}

	return out
}

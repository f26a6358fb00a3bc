package daemon

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/vidnest/vidnest/internal/ads"
	"github.com/vidnest/vidnest/internal/db/controller/adunit"
	"github.com/vidnest/vidnest/internal/db/models"
)

// seed inserts sample ad units if the table is empty, so a dev instance has something to show.
func seed(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.AdUnit{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	samples := []models.AdUnit{
		{
			Name:        "Sample header banner",
			AdFormat:    "image_banner",
			AdCode:      "/static/img/sample-banner.svg",
			AdPlacement: models.PlacementHeader,
			Priority:    10,
			Targeting:   datatypes.JSON(`{"click_url":"https://example.com"}`),
		},
		{
			Name:        "Sample sidebar link",
			AdFormat:    "text_link",
			AdCode:      "https://example.com",
			AdPlacement: models.PlacementSidebar,
			Priority:    20,
		},
		{
			Name:                 "Sample in-player overlay",
			AdFormat:             "html_overlay",
			AdCode:               `<div class="overlay">Sponsored</div>`,
			AdPlacement:          models.PlacementInPlayer,
			VideoPositionSeconds: 30,
			Priority:             5,
		},
	}

	for i := range samples {
		samples[i].Status = models.AdStatusActive
		samples[i].RenderKind = string(ads.Classify(samples[i].AdFormat))

		if err := adunit.Create(ctx, db, &samples[i]); err != nil {
			return err
		}
	}

	return nil
}

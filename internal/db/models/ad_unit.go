package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AdStatus is the lifecycle state of an ad unit. Only active units are ever served.
type AdStatus string

const (
	// AdStatusActive marks a unit as eligible for serving.
	AdStatusActive AdStatus = "active"
	// AdStatusInactive hides a unit without deleting it.
	AdStatusInactive AdStatus = "inactive"
)

// Placement tags used by the ad filter.
const (
	// PlacementVideoPlayer is an ad shown around the video player.
	PlacementVideoPlayer = "video_player"
	// PlacementInPlayer is an ad shown inside the player at VideoPositionSeconds.
	PlacementInPlayer = "in_player"
	// PlacementSidebar is a general page sidebar slot.
	PlacementSidebar = "sidebar"
	// PlacementHeader is a general page header slot.
	PlacementHeader = "header"
	// PlacementFooter is a general page footer slot.
	PlacementFooter = "footer"
	// PlacementFeed is a slot between cards of a video feed.
	PlacementFeed = "feed"
)

// AdUnit represents a configured advertisement.
type AdUnit struct {
	// ID is the unique identifier of the unit.
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	// Name is the admin facing label.
	Name string `gorm:"size:255;not null" json:"name"`
	// AdFormat is the free form format tag (e.g. "adsense", "html", "image_banner", "text_link").
	AdFormat string `gorm:"size:100;not null" json:"ad_format"`
	// AdType is the network or kind of ad (e.g. "display", "sponsored").
	AdType string `gorm:"size:100" json:"ad_type"`
	// AdCode is the raw payload: markup, a link url or an image path.
	AdCode string `gorm:"type:text;not null" json:"ad_code"`
	// AdPlacement is the placement tag deciding where the unit is eligible.
	AdPlacement string `gorm:"size:100;not null;index" json:"ad_placement"`
	// PagePlacement narrows the unit to a page position (e.g. "top", "bottom").
	PagePlacement string `gorm:"size:100" json:"page_placement"`
	// VideoPositionSeconds is the offset for in-player units.
	VideoPositionSeconds int `json:"video_position_seconds"`
	// Priority sorts units ascending, lower values are served first.
	Priority int `gorm:"not null;default:0;index" json:"priority"`
	// Status controls whether the unit is served.
	Status AdStatus `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	// Sizes lists the accepted creative sizes as JSON.
	Sizes datatypes.JSON `json:"sizes,omitempty"`
	// Targeting holds targeting rules as JSON; "click_url" is used by image units.
	Targeting datatypes.JSON `json:"targeting,omitempty"`
	// RenderKind is the render variant assigned at ingestion.
	RenderKind string `gorm:"size:30" json:"render_kind"`
	// CreatedAt is managed by GORM.
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is managed by GORM.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the AdUnit model.
func (AdUnit) TableName() string {
	return "ad_units"
}

// BeforeCreate assigns a new id when none is set.
func (a *AdUnit) BeforeCreate(_ *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	return nil
}

package ads

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"

	"github.com/vidnest/vidnest/internal/db/models"
)

// ErrInvalidUnit wraps validation failures of a new ad unit.
var ErrInvalidUnit = errors.New("invalid ad unit")

// NewUnit is the input for creating an ad unit.
type NewUnit struct {
	Name                 string          `json:"name" form:"name" validate:"required,max=255"`
	AdFormat             string          `json:"ad_format" form:"ad_format" validate:"required,max=100"`
	AdType               string          `json:"ad_type" form:"ad_type" validate:"max=100"`
	AdCode               string          `json:"ad_code" form:"ad_code" validate:"required"`
	AdPlacement          string          `json:"ad_placement" form:"ad_placement" validate:"required,oneof=video_player in_player sidebar header footer feed"` //nolint:lll
	PagePlacement        string          `json:"page_placement" form:"page_placement" validate:"max=100"`
	VideoPositionSeconds int             `json:"video_position_seconds" form:"video_position_seconds" validate:"gte=0"`
	Priority             int             `json:"priority" form:"priority"`
	Status               string          `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
	Sizes                json.RawMessage `json:"sizes" form:"-"`
	Targeting            json.RawMessage `json:"targeting" form:"-"`
}

// Ingester validates and stores new ad units.
type Ingester struct {
	src      Source
	validate *validator.Validate
}

// NewIngester creates an Ingester.
func NewIngester(src Source) *Ingester {
	return &Ingester{src: src, validate: validator.New()}
}

// Ingest validates in, classifies its render kind and stores it.
func (i *Ingester) Ingest(ctx context.Context, in NewUnit) (*models.AdUnit, error) {
	if err := i.validate.Struct(in); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			msgs := make([]string, len(validationErrors))
			for n, ve := range validationErrors {
				msgs[n] = "field '" + ve.Field() + "' failed validation tag '" + ve.Tag() + "'"
			}

			return nil, fmt.Errorf("%w: %s", ErrInvalidUnit, strings.Join(msgs, ", "))
		}

		return nil, fmt.Errorf("%w: %w", ErrInvalidUnit, err)
	}

	for _, raw := range []json.RawMessage{in.Sizes, in.Targeting} {
		if len(raw) > 0 && !json.Valid(raw) {
			return nil, fmt.Errorf("%w: malformed json", ErrInvalidUnit)
		}
	}

	status := models.AdStatusActive
	if in.Status != "" {
		status = models.AdStatus(in.Status)
	}

	unit := &models.AdUnit{
		Name:                 in.Name,
		AdFormat:             in.AdFormat,
		AdType:               in.AdType,
		AdCode:               in.AdCode,
		AdPlacement:          in.AdPlacement,
		PagePlacement:        in.PagePlacement,
		VideoPositionSeconds: in.VideoPositionSeconds,
		Priority:             in.Priority,
		Status:               status,
		Sizes:                datatypes.JSON(in.Sizes),
		Targeting:            datatypes.JSON(in.Targeting),
		RenderKind:           string(Classify(in.AdFormat)),
	}

	if err := i.src.Create(ctx, unit); err != nil {
		return nil, fmt.Errorf("store ad unit: %w", err)
	}

	return unit, nil
}

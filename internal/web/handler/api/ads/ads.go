// Package ads serves ad units to the site.
package ads

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/vidnest/vidnest/internal/ads"
	"github.com/vidnest/vidnest/internal/auth"
	"github.com/vidnest/vidnest/internal/web/handler"
)

const (
	// Path is the json endpoint listing eligible units.
	Path = handler.APIPath + "ads"

	// SlotPath renders eligible units as an html fragment.
	SlotPath = handler.RootPath + "ads/slot"

	// AdminPath is the ingestion endpoint.
	AdminPath = handler.APIPath + "admin/ads"

	// SlotTemplateName is the ad slot fragment template.
	SlotTemplateName = "ads/slot"
)

// Service is the ads handler service.
type Service struct {
	fetcher  *ads.Fetcher
	ingester *ads.Ingester
}

// Handler is the ads handler.
var Handler = Service{}

// Init registers the ads routes.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) {
	if app == nil || deps == nil || deps.Ads == nil || deps.Ingester == nil {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return
	}

	s.fetcher = deps.Ads
	s.ingester = deps.Ingester

	app.Get(Path, s.List)
	app.Get(SlotPath, s.Slot)
	app.Post(AdminPath, auth.RequireRole(deps.Auth, auth.RoleAdmin), s.Create)
}

func pageContext(c *fiber.Ctx) ads.PageContext {
	return ads.NewPageContext(c.Query("context"), c.Query("video_id"))
}

// List returns the units eligible for the page context as json.
// A failed fetch degrades to an empty list.
func (s *Service) List(c *fiber.Ctx) error {
	pc := pageContext(c)
	units, _ := s.fetcher.Fetch(c.UserContext(), pc)

	return c.JSON(fiber.Map{
		"context":  pc.Kind,
		"video_id": pc.VideoID,
		"units":    units,
	})
}

// Slot renders the eligible units. Nothing to show answers 204 without a body.
func (s *Service) Slot(c *fiber.Ctx) error {
	pc := pageContext(c)

	units, _ := s.fetcher.Fetch(c.UserContext(), pc)
	if len(units) == 0 {
		return c.SendStatus(fiber.StatusNoContent)
	}

	return c.Render(SlotTemplateName, fiber.Map{
		"Context": pc,
		"Units":   units,
		"Markup":  ads.RenderAll(units),
	})
}

// Create validates and stores a new unit.
func (s *Service) Create(c *fiber.Ctx) error {
	in := ads.NewUnit{}
	if err := c.BodyParser(&in); err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, "invalid ad unit body")
	}

	unit, err := s.ingester.Ingest(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, ads.ErrInvalidUnit) {
			return handler.JSONError(c, fiber.StatusBadRequest, err.Error())
		}

		log.Error().Err(err).Msg("failed to store ad unit")

		return handler.JSONError(c, fiber.StatusInternalServerError, "failed to store ad unit")
	}

	log.Info().Str("ad_unit", unit.ID.String()).Str("render_kind", unit.RenderKind).Msg("ad unit created")

	return c.Status(fiber.StatusCreated).JSON(unit)
}

// Package ads renders the ad units admin page.
package ads

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/vidnest/vidnest/internal/auth"
	"github.com/vidnest/vidnest/internal/db/controller/adunit"
	"github.com/vidnest/vidnest/internal/db/models"
	"github.com/vidnest/vidnest/internal/web/handler"
	"github.com/vidnest/vidnest/internal/web/navigation"
)

const (
	// Path is the path of the ad units page.
	Path = handler.AdminPath + "ads"

	// TemplateName is the name of the ad units template.
	TemplateName = "admin/ads"

	// DefaultPageSize is the default number of items per page.
	DefaultPageSize = 25

	// maxUnits caps how many units the page loads for filtering.
	maxUnits = 1000
)

// Service is the ad units page handler service.
type Service struct {
	db *gorm.DB
}

// Data represents the data passed to the template.
type Data struct {
	Units       []models.AdUnit
	CurrentPage int
	PageSize    int
	TotalItems  int
	TotalPages  int
	HasPrevPage bool
	HasNextPage bool
	PrevPage    int
	NextPage    int
	SearchQuery string
	Placement   string
}

var (
	// Handler is the ad units page handler.
	Handler = Service{}
)

// Init initializes the ad units page handler.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) {
	if app == nil || deps == nil || deps.DB == nil {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return
	}

	s.db = deps.DB

	// register routes with role checks
	app.Get(Path,
		auth.RequireRole(deps.Auth, auth.RoleAdmin),
		s.Get,
	)
	app.Post(Path+"/:id/status",
		auth.RequireRole(deps.Auth, auth.RoleAdmin),
		s.PostStatus,
	)
}

func newNavigation() *navigation.Context {
	return navigation.Admin(navigation.SectionAds, "Ad Units", Path)
}

// Get handles the ad units page rendering with pagination.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := newNavigation()

	// Parse query params
	page, pageSize := getPaginationParams(c)
	searchQuery, placement := getSearchAndFilter(c)

	all, _, err := adunit.List(c.UserContext(), s.db, 0, maxUnits)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch ad units")

		return c.Status(fiber.StatusInternalServerError).Render(TemplateName, fiber.Map{
			"Navigation": nav,
			"Error":      "Failed to fetch ad units",
		}, handler.BaseLayout)
	}

	units := make([]models.AdUnit, 0, len(all))
	for _, u := range all {
		if includeUnit(u, searchQuery, placement) {
			units = append(units, u)
		}
	}

	// Pagination
	totalItems := len(units)
	totalPages, page := computeTotalPagesAndAdjust(totalItems, pageSize, page)
	startIdx, endIdx := pageSliceBounds(totalItems, pageSize, page)

	data := buildData(units[startIdx:endIdx], page, pageSize, totalItems, totalPages, searchQuery, placement)

	log.Debug().
		Int("total_units", totalItems).
		Int("page", page).
		Int("page_size", pageSize).
		Str("search", searchQuery).
		Str("placement", placement).
		Msg("ad units retrieved successfully")

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Data":       data,
		"Flash":      c.Query("flash"),
	}, handler.BaseLayout)
}

// PostStatus activates or deactivates a unit and returns to the list.
func (s *Service) PostStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid ad unit id")
	}

	status := models.AdStatus(c.FormValue("status"))
	if status != models.AdStatusActive && status != models.AdStatusInactive {
		return c.Status(fiber.StatusBadRequest).SendString("invalid status")
	}

	unit, err := adunit.Get(c.UserContext(), s.db, id)
	if err != nil {
		if errors.Is(err, adunit.ErrAdUnitNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("ad unit not found")
		}

		log.Error().Err(err).Str("ad_unit", id.String()).Msg("failed to load ad unit")

		return c.Status(fiber.StatusInternalServerError).SendString("failed to change status")
	}

	if unit.Status == status {
		return c.Redirect(Path+"?flash=unchanged", fiber.StatusSeeOther)
	}

	if err = adunit.SetStatus(c.UserContext(), s.db, id, status); err != nil {
		log.Error().Err(err).Str("ad_unit", id.String()).Msg("failed to change ad unit status")

		return c.Status(fiber.StatusInternalServerError).SendString("failed to change status")
	}

	log.Info().Str("ad_unit", id.String()).Str("name", unit.Name).Str("status", string(status)).Msg("ad unit status changed")

	return c.Redirect(Path+"?flash=updated", fiber.StatusSeeOther)
}

// getPaginationParams parses and normalizes page and pageSize query parameters.
func getPaginationParams(c *fiber.Ctx) (int, int) {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	pageSize := c.QueryInt("pageSize", DefaultPageSize)
	if pageSize < 1 || pageSize > 100 {
		pageSize = DefaultPageSize
	}

	return page, pageSize
}

// getSearchAndFilter extracts search and placement filter from the request.
func getSearchAndFilter(c *fiber.Ctx) (string, string) {
	return c.Query("search", ""), c.Query("placement", "")
}

// includeUnit returns true if the unit matches search and filter criteria.
func includeUnit(u models.AdUnit, searchQuery, placement string) bool {
	if searchQuery != "" {
		if !contains(u.Name, searchQuery) && !contains(u.AdFormat, searchQuery) {
			return false
		}
	}

	if placement != "" && u.AdPlacement != placement {
		return false
	}

	return true
}

// computeTotalPagesAndAdjust computes total pages and adjusts the page into range.
func computeTotalPagesAndAdjust(totalItems, pageSize, page int) (int, int) {
	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page > totalPages {
		page = totalPages
	}

	return totalPages, page
}

// pageSliceBounds calculates start and end indices for slicing a page.
func pageSliceBounds(totalItems, pageSize, page int) (int, int) {
	startIdx := (page - 1) * pageSize

	endIdx := startIdx + pageSize
	if endIdx > totalItems {
		endIdx = totalItems
	}

	if startIdx < 0 {
		startIdx = 0
	}

	if startIdx > endIdx {
		startIdx = endIdx
	}

	return startIdx, endIdx
}

// buildData constructs the Data struct for the template.
func buildData(
	units []models.AdUnit,
	page,
	pageSize,
	totalItems,
	totalPages int,
	searchQuery,
	placement string) Data {
	return Data{
		Units:       units,
		CurrentPage: page,
		PageSize:    pageSize,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasPrevPage: page > 1,
		HasNextPage: page < totalPages,
		PrevPage:    page - 1,
		NextPage:    page + 1,
		SearchQuery: searchQuery,
		Placement:   placement,
	}
}

// contains checks if a string contains a non-empty substring (case-insensitive).
func contains(s, substr string) bool {
	return substr != "" && strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Package settings renders the site settings admin page.
package settings

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/vidnest/vidnest/internal/auth"
	"github.com/vidnest/vidnest/internal/sitesettings"
	"github.com/vidnest/vidnest/internal/web/handler"
	"github.com/vidnest/vidnest/internal/web/navigation"
)

const (
	// Path is the path to the site settings page.
	Path = handler.AdminPath + "settings"

	// TemplateName is the name of the site settings template.
	TemplateName = "admin/settings"
)

// Form is the site settings form.
type Form struct {
	SiteName            string `form:"site_name" validate:"required,max=100"`
	SiteTitle           string `form:"site_title" validate:"required,max=200"`
	MetaDescription     string `form:"meta_description" validate:"max=500"`
	MetaImage           string `form:"meta_image" validate:"omitempty,max=2048"`
	LogoURL             string `form:"logo_url" validate:"omitempty,max=2048"`
	LogoBackgroundColor string `form:"logo_background_color" validate:"omitempty,hexcolor|oneof=transparent"`
	FaviconURL          string `form:"favicon_url" validate:"omitempty,max=2048"`
	Theme               string `form:"theme" validate:"required,oneof=light dark system"`
}

// FormFromSnapshot fills a form from the cached settings.
func FormFromSnapshot(snap sitesettings.Snapshot) Form {
	return Form{
		SiteName:            snap.String(sitesettings.KeySiteName),
		SiteTitle:           snap.String(sitesettings.KeySiteTitle),
		MetaDescription:     snap.String(sitesettings.KeyMetaDescription),
		MetaImage:           snap.String(sitesettings.KeyMetaImage),
		LogoURL:             snap.String(sitesettings.KeyLogoURL),
		LogoBackgroundColor: snap.String(sitesettings.KeyLogoBackgroundColor),
		FaviconURL:          snap.String(sitesettings.KeyFaviconURL),
		Theme:               snap.String(sitesettings.KeyTheme),
	}
}

// Updates returns the form values in form order.
func (f Form) Updates() []sitesettings.Update {
	return []sitesettings.Update{
		{Key: sitesettings.KeySiteName, Value: f.SiteName},
		{Key: sitesettings.KeySiteTitle, Value: f.SiteTitle},
		{Key: sitesettings.KeyMetaDescription, Value: f.MetaDescription},
		{Key: sitesettings.KeyMetaImage, Value: f.MetaImage},
		{Key: sitesettings.KeyLogoURL, Value: f.LogoURL},
		{Key: sitesettings.KeyLogoBackgroundColor, Value: f.LogoBackgroundColor},
		{Key: sitesettings.KeyFaviconURL, Value: f.FaviconURL},
		{Key: sitesettings.KeyTheme, Value: f.Theme},
	}
}

// Service is the site settings page handler service.
type Service struct {
	state     *sitesettings.State
	validator XValidator
}

// Handler is the site settings page handler.
var Handler = Service{}

// Init initializes the site settings handler.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) {
	if app == nil || deps == nil || deps.Settings == nil {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return
	}

	s.state = deps.Settings
	s.validator = NewXValidator()

	// register routes with role checks
	app.Get(Path,
		auth.RequireRole(deps.Auth, auth.RoleAdmin),
		s.Get,
	)
	app.Post(Path,
		auth.RequireRole(deps.Auth, auth.RoleAdmin),
		s.Post,
	)
}

func newNavigation() *navigation.Context {
	return navigation.Admin(navigation.SectionSettings, "Site Settings", Path)
}

// Get renders the form with the cached settings.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.Render(TemplateName, fiber.Map{
		"Settings":   FormFromSnapshot(s.state.Snapshot()),
		"Status":     s.state.Status().String(),
		"Navigation": newNavigation(),
	}, handler.BaseLayout)
}

// Post handles the form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	nav := newNavigation()

	// Parse form data into settings struct
	form := Form{}
	if err := c.BodyParser(&form); err != nil {
		log.Error().Err(err).Msg("failed to parse site settings form")

		return c.Status(fiber.StatusBadRequest).Render(
			TemplateName, fiber.Map{
				"Settings":   form,
				"Navigation": nav,
				"Error":      []string{"Invalid form data"},
			}, handler.BaseLayout)
	}

	if errs := s.validator.Validate(form); len(errs) > 0 {
		log.Warn().Int("errors", len(errs)).Msg("validation failed for site settings")

		return c.Status(fiber.StatusBadRequest).Render(
			TemplateName, fiber.Map{
				"Settings":   form,
				"Navigation": nav,
				"Error":      Messages(errs),
			}, handler.BaseLayout)
	}

	if err := s.state.UpdateSettings(c.UserContext(), form.Updates()...); err != nil {
		log.Error().Err(err).Msg("failed to save site settings")

		return c.Status(fiber.StatusInternalServerError).Render(
			TemplateName, fiber.Map{
				"Settings":   form,
				"Navigation": nav,
				"Error":      []string{"Failed to save settings, some values may have been stored"},
			}, handler.BaseLayout)
	}

	log.Info().Str("site_name", form.SiteName).Msg("site settings saved successfully")

	return c.Render(
		TemplateName, fiber.Map{
			"Settings":   form,
			"Navigation": nav,
			"Success":    "Settings saved successfully",
		}, handler.BaseLayout)
}

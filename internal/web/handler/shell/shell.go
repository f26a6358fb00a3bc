// Package shell serves the single page application document.
package shell

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/vidnest/vidnest/internal/sitesettings"
	"github.com/vidnest/vidnest/internal/web/handler"
)

// Service is the shell handler service.
type Service struct {
	state *sitesettings.State
}

// Handler is the shell handler.
var Handler = Service{}

// Init registers the shell as the catch-all route. It must be initialized last.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) {
	if app == nil || deps == nil || deps.Settings == nil {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return
	}

	s.state = deps.Settings

	app.Get(handler.RootPath+"*", s.Get)
}

// Get sends the shell with the current settings in its head. Unknown api paths are 404.
func (s *Service) Get(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Path(), handler.APIPath) {
		return handler.JSONError(c, fiber.StatusNotFound, "not found")
	}

	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Type("html", "utf-8")

	return c.Send(s.state.Shell())
}

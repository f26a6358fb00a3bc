// Package me serves data about the current identity.
package me

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/vidnest/vidnest/internal/auth"
	"github.com/vidnest/vidnest/internal/web/handler"
)

// RolesPath returns the roles of the current identity.
const RolesPath = handler.APIPath + "me/roles"

// Service is the identity handler service.
type Service struct {
	auth *auth.Service
}

// Handler is the identity handler.
var Handler = Service{}

// Init registers the identity routes.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) {
	if app == nil || deps == nil || deps.Auth == nil {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return
	}

	s.auth = deps.Auth

	app.Get(RolesPath, s.Roles)
}

// Roles answers with the role flags of the identity. Anonymous requests get both flags false.
// Lookup failures degrade to both flags false as well.
func (s *Service) Roles(c *fiber.Ctx) error {
	r, _ := s.auth.Roles(c)

	return c.JSON(fiber.Map{
		"authenticated": auth.Identity(c) != nil,
		"isAdmin":       r.IsAdmin,
		"isModerator":   r.IsModerator,
	})
}

// Package handler holds what the web handlers share.
package handler

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/vidnest/vidnest/internal/ads"
	"github.com/vidnest/vidnest/internal/auth"
	"github.com/vidnest/vidnest/internal/config"
	"github.com/vidnest/vidnest/internal/sitesettings"
)

// Deps are the application scoped objects handlers are built from.
type Deps struct {
	Config   *config.Config
	DB       *gorm.DB
	Auth     *auth.Service
	Settings *sitesettings.State
	Service  *sitesettings.Service
	Ads      *ads.Fetcher
	Ingester *ads.Ingester
}

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, deps *Deps)
}

// ErrorResponse is the JSON body of failed api calls.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// JSONError sends an ErrorResponse with status.
func JSONError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ErrorResponse{Success: false, Message: msg})
}

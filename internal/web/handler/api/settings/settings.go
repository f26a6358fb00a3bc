// Package settings serves the site settings json api.
package settings

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/vidnest/vidnest/internal/auth"
	"github.com/vidnest/vidnest/internal/sitesettings"
	"github.com/vidnest/vidnest/internal/web/handler"
)

const (
	// Path is the public settings endpoint.
	Path = handler.APIPath + "settings"

	// AdminPath is the settings update endpoint.
	AdminPath = handler.APIPath + "admin/settings"

	// RefreshPath reloads the settings from the database.
	RefreshPath = AdminPath + "/refresh"
)

var errNotObject = errors.New("body must be a json object")

// Service is the settings api handler service.
type Service struct {
	state *sitesettings.State
	svc   *sitesettings.Service
}

// Handler is the settings api handler.
var Handler = Service{}

// Init registers the settings api routes.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) {
	if app == nil || deps == nil || deps.Settings == nil || deps.Service == nil {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return
	}

	s.state = deps.Settings
	s.svc = deps.Service

	app.Get(Path, s.GetAll)
	app.Get(Path+"/:key", s.Get)
	app.Put(AdminPath, auth.RequireRole(deps.Auth, auth.RoleAdmin), s.Update)
	app.Post(RefreshPath, auth.RequireRole(deps.Auth, auth.RoleAdmin), s.Refresh)
	app.Delete(AdminPath+"/:key", auth.RequireRole(deps.Auth, auth.RoleAdmin), s.Delete)
}

// GetAll returns the cached snapshot and its load status.
func (s *Service) GetAll(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   s.state.Status().String(),
		"settings": s.state.Snapshot(),
	})
}

// Get returns one persisted setting.
func (s *Service) Get(c *fiber.Ctx) error {
	key := c.Params("key")

	value, found, err := s.svc.Get(c.UserContext(), key)
	if err != nil {
		return handler.JSONError(c, fiber.StatusInternalServerError, "failed to load setting")
	}

	if !found {
		return handler.JSONError(c, fiber.StatusNotFound, "setting not found")
	}

	return c.JSON(fiber.Map{"key": key, "value": value})
}

// Update applies a json object of settings in document order.
func (s *Service) Update(c *fiber.Ctx) error {
	updates, err := decodeOrdered(c.Body())
	if err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, err.Error())
	}

	if err = s.state.UpdateSettings(c.UserContext(), updates...); err != nil {
		return handler.JSONError(c, fiber.StatusInternalServerError, "failed to update settings")
	}

	log.Info().Int("count", len(updates)).Msg("site settings updated")

	return c.JSON(fiber.Map{"success": true, "settings": s.state.Snapshot()})
}

// Delete removes a persisted setting. Known keys fall back to their default on the next empty load.
func (s *Service) Delete(c *fiber.Ctx) error {
	key := c.Params("key")

	deleted, err := s.state.DeleteSetting(c.UserContext(), key)
	if err != nil {
		return handler.JSONError(c, fiber.StatusInternalServerError, "failed to delete setting")
	}

	if !deleted {
		return handler.JSONError(c, fiber.StatusNotFound, "setting not found")
	}

	log.Info().Str("key", key).Msg("site setting deleted")

	return c.JSON(fiber.Map{"success": true, "settings": s.state.Snapshot()})
}

// Refresh reloads the settings from the database.
func (s *Service) Refresh(c *fiber.Ctx) error {
	snap := s.state.Refresh(c.UserContext())

	return c.JSON(fiber.Map{"success": true, "settings": snap})
}

// decodeOrdered reads a json object keeping the order of its members.
func decodeOrdered(body []byte) ([]sitesettings.Update, error) {
	dec := json.NewDecoder(bytes.NewReader(body))

	tok, err := dec.Token()
	if err != nil {
		return nil, errNotObject
	}

	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errNotObject
	}

	var updates []sitesettings.Update

	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, err
		}

		key, _ := tok.(string)
		if key == "" {
			return nil, sitesettings.ErrKeyEmpty
		}

		var value any
		if err = dec.Decode(&value); err != nil {
			return nil, err
		}

		updates = append(updates, sitesettings.Update{Key: key, Value: value})
	}

	if _, err = dec.Token(); err != nil {
		return nil, err
	}

	return updates, nil
}

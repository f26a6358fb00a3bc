package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	fiberlogger "github.com/vidnest/vidnest/internal/logger/adapter/fiber"
	"github.com/vidnest/vidnest/internal/web/session"
)

// CurrentUserLocalKey is the fiber.Locals key holding the session.Data of the request.
const CurrentUserLocalKey = "CurrentUser"

// Middleware is a Fiber middleware that resolves the identity of the request from its session.
// Anonymous requests pass through untouched, route guards decide what they may see.
func Middleware(c *fiber.Ctx) error {
	originalURL := strings.ToLower(c.OriginalURL())
	if strings.HasPrefix(originalURL, "/static") {
		return c.Next()
	}

	// get session cookie
	sessionID := c.Cookies(session.CookieName)
	if sessionID == "" {
		return c.Next()
	}

	// check session validity
	sessData := new(session.Data)
	if err := sessData.Read(sessionID); err != nil {
		log.Debug().Err(err).Msg("ignoring unreadable session")
		return c.Next()
	}

	// valid data in session
	if sessData.Valid() {
		c.Locals(fiberlogger.IdentityLocalKey, sessData.UserID)
		c.Locals(CurrentUserLocalKey, *sessData)
	}

	return c.Next()
}

package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// RequireRole creates Fiber middleware that requires the request identity to hold role.
func RequireRole(authService *Service, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := Identity(c)
		if id == nil {
			return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
		}

		r, err := authService.Roles(c)
		if err != nil {
			log.Error().Err(err).Str("user_id", id.String()).Str("role", role).
				Msg("Failed to check role")

			return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
		}

		ok, err := HasRole(r, role)
		if err != nil {
			log.Error().Err(err).Str("role", role).Msg("Route guarded by unknown role")
			return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
		}

		if !ok {
			log.Warn().Str("user_id", id.String()).Str("role", role).
				Msg("User lacks required role")

			return c.Status(fiber.StatusForbidden).SendString("Forbidden: You don't have permission to access this resource")
		}

		return c.Next()
	}
}

// AddRolesToLocals is a Fiber middleware that adds the roles of the identity to fiber.Locals.
// Failures leave the request without roles.
func AddRolesToLocals(authService *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if Identity(c) == nil {
			return c.Next()
		}

		if _, err := authService.Roles(c); err != nil {
			log.Error().Err(err).Msg("Failed to get user roles")
		}

		return c.Next()
	}
}

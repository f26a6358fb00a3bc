package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	fiberlogger "github.com/vidnest/vidnest/internal/logger/adapter/fiber"
	"github.com/vidnest/vidnest/internal/roles"
)

// RolesLocalKey is the fiber.Locals key holding the resolved roles.Roles.
const RolesLocalKey = "roles"

// Service resolves roles for the identity of a request.
type Service struct {
	fetcher *roles.Fetcher
}

// NewService creates a new auth service.
func NewService(fetcher *roles.Fetcher) *Service {
	return &Service{fetcher: fetcher}
}

// Identity returns the identity resolved by the auth middleware, or nil.
func Identity(c *fiber.Ctx) *uuid.UUID {
	id, ok := c.Locals(fiberlogger.IdentityLocalKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return nil
	}

	return &id
}

// Roles returns the roles of the request identity. The result is kept in Locals for the rest of the request.
func (s *Service) Roles(c *fiber.Ctx) (roles.Roles, error) {
	if r, ok := c.Locals(RolesLocalKey).(roles.Roles); ok {
		return r, nil
	}

	r, err := s.fetcher.Fetch(c.UserContext(), Identity(c))
	if err != nil {
		return roles.Roles{}, err
	}

	c.Locals(RolesLocalKey, r)

	return r, nil
}

// Package session reads the identity records the auth platform stores in the session backend.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
)

// DefaultCookieName is used when no cookie name is configured.
const DefaultCookieName = "session"

var (
	// Store is the global session store instance.
	Store *session.Store

	// CookieName is the name of the cookie carrying the session id.
	CookieName = DefaultCookieName

	// ErrNotInitialized is returned when Init was not called.
	ErrNotInitialized = errors.New("session store not initialized")
	// ErrSessionNotFound is returned when no data is stored for a session id.
	ErrSessionNotFound = errors.New("session not found")
)

// Data represents the session data structure.
type Data struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}

// Valid reports whether the session carries an identity.
func (s *Data) Valid() bool {
	return s.UserID != uuid.Nil
}

// Write writes the session data for the given session ID with an expiration duration.
func (s *Data) Write(sessionID string, exp time.Duration) error {
	if Store == nil {
		return ErrNotInitialized
	}

	out, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return Store.Storage.Set(sessionID, out, exp)
}

// Read reads the session data for the given session ID.
func (s *Data) Read(sessionID string) error {
	if Store == nil {
		return ErrNotInitialized
	}

	byteData, err := Store.Storage.Get(sessionID)
	if err != nil {
		return err
	}

	if len(byteData) == 0 {
		return ErrSessionNotFound
	}

	return json.Unmarshal(byteData, s)
}

// Init initializes the session store. A nil storage selects the in-memory backend.
func Init(storage fiber.Storage, cookieName string, expiry time.Duration) {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}

	CookieName = cookieName

	Store = session.New(session.Config{
		Storage:        storage,
		KeyLookup:      "cookie:" + cookieName,
		Expiration:     expiry,
		CookieHTTPOnly: true,
	})
}

// GenerateSessionID generates a new secure random session ID.
func GenerateSessionID() (string, error) {
	// 32 bytes = 256 bits
	b := make([]byte, 32) //nolint:mnd
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

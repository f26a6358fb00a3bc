package auth

import "errors"

var (
	// ErrNoIdentity is returned when the request carries no identity.
	ErrNoIdentity = errors.New("no identity")

	// ErrUnknownRole is returned when a role label is not known.
	ErrUnknownRole = errors.New("unknown role")
)

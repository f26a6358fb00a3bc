// Package auth provides the identity middleware for the web application.
//
// The middleware reads the session cookie, loads the session record written by the
// auth platform and, when it carries a user id, stores the identity in fiber.Locals
// for handlers, route guards and the access log. Requests without a valid session
// continue anonymously.
//
// Usage:
//
//	app.Use(authmiddleware.Middleware)
package auth

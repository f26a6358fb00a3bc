// Package auth provides role based authorization for the site.
//
// Identities are issued by the external auth platform and resolved from the session
// by the web auth middleware. This package turns that identity into Roles through the
// role fetcher and guards routes with them.
//
// # Middleware
//
//   - AddRolesToLocals: resolve the roles of the current identity for handlers and templates
//   - RequireRole: reject requests whose identity lacks a role
//
// Example usage:
//
//	authService := auth.NewService(roles.NewFetcher(userrole.NewStore(db)))
//	app.Use(auth.AddRolesToLocals(authService))
//	app.Put("/api/admin/settings",
//	    auth.RequireRole(authService, auth.RoleAdmin),
//	    handler,
//	)
package auth

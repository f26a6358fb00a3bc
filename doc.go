// Package main provides the entry point of the VidNest site service.
// It runs the Fiber web server that keeps the site settings and the document head
// in sync, selects and renders ad units for pages and videos, and answers role
// lookups for the identities issued by the external auth platform. The grant-admin
// command bootstraps the first administrator with privileged database credentials.
package main

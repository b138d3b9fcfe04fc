// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// configuration structure for the listen port and the CORS origins the vote page
// is served from.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings.
package server

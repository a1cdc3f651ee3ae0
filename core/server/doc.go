// Package server holds the HTTP server configuration and constants.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structures and valid values for server settings,
// such as the supported persistence backends.
//
// # Configuration
//
// The Config struct defines the HTTP port, API key, CORS origin, the static
// asset directory, and the persistence backend (storage or database).
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by the start command to pick the blob store backend.
package server

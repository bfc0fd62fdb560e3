// Package server holds the HTTP server configuration.
//
// The main application entry point handles the server startup; this package only
// defines the configuration structure (port, API key, body limit) embedded by
// core/config.
package server

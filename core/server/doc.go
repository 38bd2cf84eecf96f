// Package server holds configuration for the HTTP server surface.
//
// It only defines the Config struct consumed by core/config; the actual
// Fiber application is assembled in cmd/start.go.
package server

package router

import "time"

// Config carries the tunables consumed by the default middleware chain.
type Config struct {
	// Timeout bounds the total time a single request may spend in the
	// pipeline. Zero disables the timeout handler.
	Timeout time.Duration

	// QuietdownRoutes lists paths excluded from per-request debug logging,
	// typically health and readiness probes.
	QuietdownRoutes []string

	// HideHeaders lists header names redacted from request log records.
	HideHeaders []string

	// CORS configures the cross-origin policy. An empty origin list leaves
	// the CORS middleware inert.
	CORS CORSConfig
}

// CORSConfig describes the allow-list installed by the CORS middleware.
type CORSConfig struct {
	Origins          []string
	Methods          []string
	Headers          []string
	AllowCredentials bool
}

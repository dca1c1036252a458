package app

import (
	"os"
	"strconv"
)

// Config holds application-wide configuration for the demo app.
type Config struct {
	// Debug enables debug logging and source locations in log entries.
	Debug bool

	// ContentPath points at a YAML content file describing the accordions
	// to show. Empty means the built-in demo content.
	ContentPath string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// ConfigFromEnv creates a configuration from environment variables:
// SQUEEZEBOX_DEBUG and SQUEEZEBOX_CONTENT.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()

	if debugStr := os.Getenv("SQUEEZEBOX_DEBUG"); debugStr != "" {
		if debug, err := strconv.ParseBool(debugStr); err == nil {
			cfg.Debug = debug
		}
	}
	if path := os.Getenv("SQUEEZEBOX_CONTENT"); path != "" {
		cfg.ContentPath = path
	}

	return cfg
}

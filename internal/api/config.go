package api

import (
	"os"
	"strconv"
)

// Config holds all configuration for the API client.
type Config struct {
	Endpoint  string
	BasePath  string
	TimeoutMs int
	LogCalls  bool
}

// DefaultConfig returns a Config pointing at a local dev server.
func DefaultConfig() Config {
	return Config{
		Endpoint:  "http://localhost:8000",
		BasePath:  "/api",
		TimeoutMs: 10000,
		LogCalls:  false,
	}
}

// LoadConfig reads client configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("AUTOBUDGET_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("AUTOBUDGET_BASE_PATH"); v != "" {
		cfg.BasePath = v
	}
	if v := os.Getenv("AUTOBUDGET_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("AUTOBUDGET_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}

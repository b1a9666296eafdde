package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "http://localhost:8000", cfg.Endpoint)
	assert.Equal(t, "/api", cfg.BasePath)
	assert.Equal(t, 10000, cfg.TimeoutMs)
	assert.False(t, cfg.LogCalls)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("AUTOBUDGET_ENDPOINT", "http://budget.local:9000")
	t.Setenv("AUTOBUDGET_TIMEOUT_MS", "2500")
	t.Setenv("AUTOBUDGET_LOG_CALLS", "true")

	cfg := LoadConfig()

	assert.Equal(t, "http://budget.local:9000", cfg.Endpoint)
	assert.Equal(t, 2500, cfg.TimeoutMs)
	assert.True(t, cfg.LogCalls)
}

func TestLoadConfig_InvalidTimeoutIgnored(t *testing.T) {
	t.Setenv("AUTOBUDGET_TIMEOUT_MS", "not-a-number")

	cfg := LoadConfig()
	assert.Equal(t, 10000, cfg.TimeoutMs)
}

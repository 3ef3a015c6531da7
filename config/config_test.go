package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"PORT", "LOG_LEVEL", "LOG_PRETTY", "REDIS_ADDR", "SELIC_URL", "SELIC_TIMEOUT",
	"SELIC_CACHE_TTL", "RATE_LIMIT_CAPACITY", "RATE_LIMIT_REFILL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogPretty)
	assert.Empty(t, cfg.RedisAddr)
	assert.Empty(t, cfg.SelicURL)
	assert.Equal(t, 5*time.Second, cfg.SelicTimeout)
	assert.Equal(t, time.Hour, cfg.SelicCacheTTL)
	assert.Equal(t, 30, cfg.RateLimitCapacity)
	assert.Equal(t, time.Minute, cfg.RateLimitRefill)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_PRETTY", "true")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("SELIC_URL", "http://sgs.local/432")
	t.Setenv("SELIC_TIMEOUT", "2s")
	t.Setenv("SELIC_CACHE_TTL", "30m")
	t.Setenv("RATE_LIMIT_CAPACITY", "5")
	t.Setenv("RATE_LIMIT_REFILL", "10s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogPretty)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "http://sgs.local/432", cfg.SelicURL)
	assert.Equal(t, 2*time.Second, cfg.SelicTimeout)
	assert.Equal(t, 30*time.Minute, cfg.SelicCacheTTL)
	assert.Equal(t, 5, cfg.RateLimitCapacity)
	assert.Equal(t, 10*time.Second, cfg.RateLimitRefill)
}

func TestLoad_MalformedValuesFallBackToDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "eighty")
	t.Setenv("SELIC_TIMEOUT", "soon")
	t.Setenv("LOG_PRETTY", "maybe")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.SelicTimeout)
	assert.False(t, cfg.LogPretty)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{key: "PORT", value: "0"},
		{key: "PORT", value: "70000"},
		{key: "SELIC_TIMEOUT", value: "-1s"},
		{key: "SELIC_CACHE_TTL", value: "0s"},
		{key: "RATE_LIMIT_CAPACITY", value: "0"},
		{key: "RATE_LIMIT_REFILL", value: "-5m"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

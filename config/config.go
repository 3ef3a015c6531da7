// Package config loads application configuration from the environment.
package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      int
	LogLevel  string
	LogPretty bool
	RedisAddr string // empty selects the in-memory cache

	SelicURL      string // empty selects the built-in SGS endpoint
	SelicTimeout  time.Duration
	SelicCacheTTL time.Duration

	RateLimitCapacity int
	RateLimitRefill   time.Duration
}

// Load reads configuration from environment variables, after loading a .env
// file when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnvAsInt("PORT", 8080),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogPretty:         getEnvAsBool("LOG_PRETTY", false),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		SelicURL:          getEnv("SELIC_URL", ""),
		SelicTimeout:      getEnvAsDuration("SELIC_TIMEOUT", 5*time.Second),
		SelicCacheTTL:     getEnvAsDuration("SELIC_CACHE_TTL", time.Hour),
		RateLimitCapacity: getEnvAsInt("RATE_LIMIT_CAPACITY", 30),
		RateLimitRefill:   getEnvAsDuration("RATE_LIMIT_REFILL", time.Minute),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that numeric settings are usable.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return errors.New("PORT must be between 1 and 65535")
	}
	if c.SelicTimeout <= 0 {
		return errors.New("SELIC_TIMEOUT must be positive")
	}
	if c.SelicCacheTTL <= 0 {
		return errors.New("SELIC_CACHE_TTL must be positive")
	}
	if c.RateLimitCapacity <= 0 {
		return errors.New("RATE_LIMIT_CAPACITY must be positive")
	}
	if c.RateLimitRefill <= 0 {
		return errors.New("RATE_LIMIT_REFILL must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

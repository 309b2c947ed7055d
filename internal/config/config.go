// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the complete service configuration.
type Config struct {
	Port           int    `envconfig:"PORT" default:"8000"`
	MongoURL       string `envconfig:"MONGO_URL"`
	DBName         string `envconfig:"DB_NAME" default:"financial_analytics"`
	AllowedOrigins string `envconfig:"ALLOWED_ORIGINS" default:"*"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	BodyLimitMB    int    `envconfig:"BODY_LIMIT_MB" default:"32"`
}

// Load reads configuration from a .env file (when present) and the process
// environment. MONGO_URL is optional: without it the service runs on the
// in-memory store.
func Load() (*Config, error) {
	// A missing .env file is fine; environment variables still apply.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config from env: %w", err)
	}
	return &cfg, nil
}

// SlogLevel maps the configured level name to a slog level, defaulting to
// info for unknown names.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the server settings read from the environment.
type Config struct {
	Port          string        `env:"PORT" envDefault:"7521"`
	Heading       string        `env:"COUNTER_HEADING" envDefault:"Go + templ + htmx"`
	ViewTTL       time.Duration `env:"COUNTER_VIEW_TTL" envDefault:"30m"`
	SweepInterval time.Duration `env:"COUNTER_SWEEP_INTERVAL" envDefault:"1m"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses Config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if strings.TrimSpace(cfg.Heading) == "" {
		return Config{}, fmt.Errorf("COUNTER_HEADING must not be empty")
	}
	return cfg, nil
}

// SlogLevel maps LogLevel to a slog level. Unknown values fall back to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
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

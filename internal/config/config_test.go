package config

import (
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	unsetenv(t, "PORT", "COUNTER_HEADING", "COUNTER_VIEW_TTL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "7521" {
		t.Fatalf("expected default port 7521, got %q", cfg.Port)
	}
	if cfg.Heading != "Go + templ + htmx" {
		t.Fatalf("unexpected default heading %q", cfg.Heading)
	}
	if cfg.ViewTTL != 30*time.Minute {
		t.Fatalf("expected default ttl 30m, got %v", cfg.ViewTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("COUNTER_HEADING", "Counter *demo*")
	t.Setenv("COUNTER_SWEEP_INTERVAL", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9000" {
		t.Fatalf("expected port 9000, got %q", cfg.Port)
	}
	if cfg.Heading != "Counter *demo*" {
		t.Fatalf("unexpected heading %q", cfg.Heading)
	}
	if cfg.SweepInterval != 5*time.Second {
		t.Fatalf("expected sweep interval 5s, got %v", cfg.SweepInterval)
	}
}

func TestLoadError(t *testing.T) {
	t.Setenv("COUNTER_VIEW_TTL", "not-a-duration")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestSlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"unknown": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := (Config{LogLevel: in}).SlogLevel(); got != want {
			t.Fatalf("SlogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLoadRejectsBlankHeading(t *testing.T) {
	t.Setenv("COUNTER_HEADING", "   ")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for blank heading")
	}
}

// unsetenv clears keys for the test and restores them afterwards.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}
}

package config

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/networth")
	t.Setenv("SESSION_SECRET", "test-secret")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("expected default session TTL 24h, got %v", cfg.SessionTTL)
	}
	if cfg.DatabaseURL != "postgres://localhost:5432/networth" {
		t.Fatalf("unexpected database url %q", cfg.DatabaseURL)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/networth")
	os.Unsetenv("SESSION_SECRET")

	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected error when SESSION_SECRET is missing")
	}
}

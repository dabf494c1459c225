package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_NAME", "skillfit_test")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if cfg.App.HTTPPort != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.App.HTTPPort)
	}
	if cfg.Batch.Workers != 8 {
		t.Fatalf("expected default 8 batch workers, got %d", cfg.Batch.Workers)
	}
	if cfg.Redis.TTL != 10*time.Minute {
		t.Fatalf("expected default redis TTL 10m, got %v", cfg.Redis.TTL)
	}
	if cfg.Database.Name != "skillfit_test" {
		t.Fatalf("expected env override, got %q", cfg.Database.Name)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DB_NAME", "")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	if !errors.Is(err, errMissingRequired) {
		t.Fatalf("expected errMissingRequired, got %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_NAME", "skillfit")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("BATCH_WORKERS", "3")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Batch.Workers != 3 {
		t.Fatalf("expected 3 workers, got %d", cfg.Batch.Workers)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("expected debug level, got %q", cfg.Log.Level)
	}
}

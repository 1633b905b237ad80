package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("POSTGRES_DSN", "postgres://localhost/jobscout")
	t.Setenv("GREENHOUSE_BOARDS", "acme")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned unexpected error: %v", err)
	}

	if cfg.SweepInterval != 6*time.Hour {
		t.Errorf("SweepInterval = %v, want 6h", cfg.SweepInterval)
	}
	if cfg.SourceTimeout != 10*time.Second {
		t.Errorf("SourceTimeout = %v, want 10s", cfg.SourceTimeout)
	}
	if cfg.MaxMatchesPerRun != 10 {
		t.Errorf("MaxMatchesPerRun = %d, want 10", cfg.MaxMatchesPerRun)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr = %q", cfg.RedisAddr)
	}
	if cfg.AdzunaCountry != "in" {
		t.Errorf("AdzunaCountry = %q, want in", cfg.AdzunaCountry)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("POSTGRES_DSN", "postgres://localhost/jobscout")

	if _, err := Load(); err == nil {
		t.Error("Load expected error without TELEGRAM_TOKEN, got nil")
	}
}

func TestLoad_ListsAndOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GREENHOUSE_BOARDS", "acme, globex ,")
	t.Setenv("LEVER_ORGS", "initech")
	t.Setenv("SWEEP_INTERVAL", "2h")
	t.Setenv("LOCATIONS_ALLOW", "india,remote")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned unexpected error: %v", err)
	}

	if len(cfg.GreenhouseBoards) != 2 || cfg.GreenhouseBoards[1] != "globex" {
		t.Errorf("GreenhouseBoards = %v", cfg.GreenhouseBoards)
	}
	if len(cfg.LeverOrgs) != 1 {
		t.Errorf("LeverOrgs = %v", cfg.LeverOrgs)
	}
	if cfg.SweepInterval != 2*time.Hour {
		t.Errorf("SweepInterval = %v, want 2h", cfg.SweepInterval)
	}
	if len(cfg.LocationsAllow) != 2 {
		t.Errorf("LocationsAllow = %v", cfg.LocationsAllow)
	}
}

func TestValidate_NoSources(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GREENHOUSE_BOARDS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned unexpected error: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate expected error with no sources configured, got nil")
	}
}

func TestValidate_BadInterval(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SWEEP_INTERVAL", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned unexpected error: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate expected error for sub-minute interval, got nil")
	}
}

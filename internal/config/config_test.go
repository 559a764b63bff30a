package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.HTTPPort != "8080" {
		t.Errorf("expected default http port 8080, got %s", cfg.Server.HTTPPort)
	}
	if cfg.Server.GRPCPort != "50051" {
		t.Errorf("expected default grpc port 50051, got %s", cfg.Server.GRPCPort)
	}
	if cfg.Registry.Mode != RegistryModeStore {
		t.Errorf("expected default registry mode store, got %s", cfg.Registry.Mode)
	}
	if cfg.Sessions.IdleTTL != 30*time.Minute {
		t.Errorf("expected default idle ttl 30m, got %s", cfg.Sessions.IdleTTL)
	}
	if cfg.Workers.Count <= 0 || cfg.Workers.QueueSize <= 0 {
		t.Errorf("worker defaults must be positive: %+v", cfg.Workers)
	}
}

func TestLoad_RemoteModeRequiresBaseURL(t *testing.T) {
	t.Setenv("REGISTRY_MODE", RegistryModeRemote)
	t.Setenv("REGISTRY_BASE_URL", "")

	if _, err := Load(""); err == nil {
		t.Fatal("expected error for remote mode without base url")
	}

	t.Setenv("REGISTRY_BASE_URL", "http://registry.internal:8080")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Registry.BaseURL != "http://registry.internal:8080" {
		t.Errorf("unexpected base url: %s", cfg.Registry.BaseURL)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("SESSION_IDLE_TTL", "soon")
	if _, err := Load(""); err == nil {
		t.Error("expected error for unparsable SESSION_IDLE_TTL")
	}
	t.Setenv("SESSION_IDLE_TTL", "10m")

	t.Setenv("WORKER_COUNT", "zero")
	if _, err := Load(""); err == nil {
		t.Error("expected error for non-numeric WORKER_COUNT")
	}
	t.Setenv("WORKER_COUNT", "-1")
	if _, err := Load(""); err == nil {
		t.Error("expected error for negative WORKER_COUNT")
	}
	t.Setenv("WORKER_COUNT", "4")

	t.Setenv("REGISTRY_MODE", "carrier-pigeon")
	if _, err := Load(""); err == nil {
		t.Error("expected error for unknown REGISTRY_MODE")
	}
}

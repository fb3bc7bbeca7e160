package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIBaseURL == "" {
		t.Error("expected default API base URL")
	}
	if cfg.DevServerPort == "" {
		t.Error("expected default dev server port")
	}
	if cfg.HTTPTimeout() != 15*time.Second {
		t.Errorf("expected 15s timeout, got %v", cfg.HTTPTimeout())
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://api.example.test")
	t.Setenv("MOCK_LATENCY_MS", "250")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIBaseURL != "http://api.example.test" {
		t.Errorf("env override not applied: %s", cfg.APIBaseURL)
	}
	if cfg.MockLatency() != 250*time.Millisecond {
		t.Errorf("expected 250ms latency, got %v", cfg.MockLatency())
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{Env: "development", APIBaseURL: "http://localhost:5157", HTTPTimeoutMS: 100}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg.APIBaseURL = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing base URL")
	}

	cfg = &Config{Env: "production", APIBaseURL: "https://api.example.com", HTTPTimeoutMS: 100}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing session secret outside development")
	}
	cfg.SessionSecret = "secret"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

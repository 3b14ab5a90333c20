package main

import (
	"strings"
	"testing"
	"time"

	"github.com/kacperborowieckb/sql-chat/utils/gemini"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "GEMINI_BASE_URL", "GEMINI_MODEL", "GENERATION_BACKEND", "SESSION_TTL", "LOG_LEVEL", "LOG_JSON"} {
		t.Setenv(key, "")
	}

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q", cfg.Port)
	}
	if cfg.GeminiBaseURL != gemini.DefaultBaseURL {
		t.Fatalf("GeminiBaseURL = %q", cfg.GeminiBaseURL)
	}
	if cfg.GeminiModel != gemini.DefaultModel {
		t.Fatalf("GeminiModel = %q", cfg.GeminiModel)
	}
	if cfg.Backend != backendREST {
		t.Fatalf("Backend = %q", cfg.Backend)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("SessionTTL = %v", cfg.SessionTTL)
	}
	if cfg.LogJSON {
		t.Fatal("LogJSON should default to false")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("GEMINI_MODEL", "gemini-custom")
	t.Setenv("GENERATION_BACKEND", "SDK")
	t.Setenv("SESSION_TTL", "5m")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_JSON", "true")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Port != "9000" || cfg.GeminiModel != "gemini-custom" || cfg.Backend != backendSDK {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.SessionTTL != 5*time.Minute || !cfg.LogJSON || cfg.LogLevel != "debug" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name        string
		key         string
		value       string
		errContains string
	}{
		{name: "backend", key: "GENERATION_BACKEND", value: "grpc", errContains: "GENERATION_BACKEND"},
		{name: "ttl", key: "SESSION_TTL", value: "-1m", errContains: "SESSION_TTL"},
		{name: "log level", key: "LOG_LEVEL", value: "chatty", errContains: "LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := loadConfig()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Fatalf("error = %v, want it to contain %q", err, tt.errContains)
			}
		})
	}
}

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/kacperborowieckb/sql-chat/utils/env"
	"github.com/kacperborowieckb/sql-chat/utils/gemini"
	"github.com/kacperborowieckb/sql-chat/utils/logger"
)

const (
	backendREST = "rest"
	backendSDK  = "sdk"
)

type config struct {
	Port          string
	GeminiBaseURL string
	GeminiModel   string
	Backend       string
	SessionTTL    time.Duration
	LogLevel      string
	LogJSON       bool
}

func loadConfig() (config, error) {
	cfg := config{
		Port:          env.GetString("PORT", "8080"),
		GeminiBaseURL: env.GetString("GEMINI_BASE_URL", gemini.DefaultBaseURL),
		GeminiModel:   env.GetString("GEMINI_MODEL", gemini.DefaultModel),
		Backend:       strings.ToLower(env.GetString("GENERATION_BACKEND", backendREST)),
		SessionTTL:    env.GetDuration("SESSION_TTL", 30*time.Minute),
		LogLevel:      env.GetString("LOG_LEVEL", "info"),
		LogJSON:       env.GetBool("LOG_JSON", false),
	}

	if err := cfg.validate(); err != nil {
		return config{}, err
	}

	return cfg, nil
}

func (c config) validate() error {
	if c.Backend != backendREST && c.Backend != backendSDK {
		return fmt.Errorf("invalid GENERATION_BACKEND %q: must be %q or %q", c.Backend, backendREST, backendSDK)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return nil
}

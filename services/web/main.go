package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kacperborowieckb/sql-chat/shared/sqlgen"
	"github.com/kacperborowieckb/sql-chat/utils/gemini"
	"github.com/kacperborowieckb/sql-chat/utils/logger"
	"github.com/kacperborowieckb/sql-chat/utils/shutdown"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log, err := logger.New(os.Stdout, cfg.LogLevel, cfg.LogJSON, "sql-chat-web")
	if err != nil {
		slog.Error("failed to set up logger", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(log)

	s, err := newWebServer(cfg, newGenerator(cfg), log)
	if err != nil {
		log.Error("failed to set up web server", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("web service listening", "addr", srv.Addr, "backend", cfg.Backend, "model", cfg.GeminiModel)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("listen failed", "error", err)
			os.Exit(1)
		}
	}()

	shutdown.WaitForShutdown(srv, 5*time.Second, log)
}

func newGenerator(cfg config) sqlgen.Generator {
	gcfg := gemini.Config{
		BaseURL: cfg.GeminiBaseURL,
		Model:   cfg.GeminiModel,
	}

	if cfg.Backend == backendSDK {
		return gemini.NewSDKClient(gcfg)
	}

	return gemini.NewClient(gcfg)
}

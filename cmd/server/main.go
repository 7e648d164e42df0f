// Package main implements the entry point for the mock REST API server:
// token-based sessions over seeded in-memory stores, plus the users and
// products resources, an upload stub, and a validation demo.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/ChenReuven/next-api/internal/config"
	"github.com/ChenReuven/next-api/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

// run loads configuration, wires the application, and serves until a
// shutdown signal arrives. Split from main so the exit path stays testable.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"session_ttl_minutes", cfg.Auth.SessionTTLMinutes)

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(context.Background(), app.setupRouter())
}

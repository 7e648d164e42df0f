package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ChenReuven/next-api/internal/config"
	"github.com/ChenReuven/next-api/internal/platform/memstore"
	"github.com/ChenReuven/next-api/internal/service/auth"
	"github.com/ChenReuven/next-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and wiring.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Stores (using interfaces for proper abstraction)
	accountStore store.AccountStore
	tokenStore   store.TokenStore
	userStore    store.UserStore
	productStore store.ProductStore

	// Service interfaces
	sessions         auth.SessionManager
	passwordVerifier auth.PasswordVerifier
}

// newApplication creates a new application instance with all dependencies
// initialized: seeded in-memory stores, the bcrypt verifier, and the
// session service. Everything lives in process memory; a restart starts
// from the seed data with every session invalidated.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	accounts, err := memstore.BuildAccounts(memstore.DefaultAccountSeeds(), cfg.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to build account directory: %w", err)
	}

	app.accountStore = memstore.NewAccountStore(accounts)
	app.tokenStore = memstore.NewTokenStore()

	app.userStore, err = memstore.NewUserStore(memstore.DefaultUsers())
	if err != nil {
		return nil, fmt.Errorf("failed to seed user store: %w", err)
	}
	app.productStore, err = memstore.NewProductStore(memstore.DefaultProducts())
	if err != nil {
		return nil, fmt.Errorf("failed to seed product store: %w", err)
	}

	app.passwordVerifier = auth.NewBcryptVerifier()

	ttl := time.Duration(cfg.Auth.SessionTTLMinutes) * time.Minute
	app.sessions = auth.NewSessionService(
		app.accountStore,
		app.tokenStore,
		app.passwordVerifier,
		ttl,
	)
	logger.Info("session service initialized",
		"session_ttl_minutes", cfg.Auth.SessionTTLMinutes,
		"seeded_accounts", len(accounts))

	return app, nil
}

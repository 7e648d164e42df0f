package auth

import (
	"context"
	"time"
)

// SessionManager defines the session operations the API layer depends on.
// Handlers and middleware accept this interface so tests can substitute a
// mock that never touches real stores.
type SessionManager interface {
	// Login verifies credentials and issues a new session.
	// Returns ErrInvalidCredentials when the pair matches no account.
	Login(ctx context.Context, username, password string) (*Session, error)

	// Verify resolves a bare token into its session, enforcing expiry
	// lazily. Returns ErrInvalidToken, ErrExpiredToken, or
	// store.ErrAccountNotFound on failure.
	Verify(ctx context.Context, token string) (*Session, error)

	// Logout revokes the session for a bare token.
	// Returns ErrInvalidToken when there is nothing to revoke.
	Logout(ctx context.Context, token string) error

	// TTL returns the configured session lifetime.
	TTL() time.Duration
}

// Ensure SessionService implements SessionManager interface
var _ SessionManager = (*SessionService)(nil)

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ChenReuven/next-api/internal/domain"
	"github.com/ChenReuven/next-api/internal/platform/logger"
	"github.com/ChenReuven/next-api/internal/store"
)

// Session is the outcome of a successful login or verification: the bearer
// token, the account it belongs to, and when it stops being valid.
type Session struct {
	Token     string
	Account   *domain.Account
	ExpiresAt time.Time
}

// SessionService manages the lifecycle of bearer-token sessions: issuance on
// login, lazy-expiry verification, and revocation on logout. It owns no
// state itself; all mutable state lives in the injected token store.
type SessionService struct {
	accounts store.AccountStore
	tokens   store.TokenStore
	verifier PasswordVerifier
	ttl      time.Duration
	timeFunc func() time.Time // Injectable for testing
}

// NewSessionService creates a SessionService issuing tokens valid for ttl.
func NewSessionService(
	accounts store.AccountStore,
	tokens store.TokenStore,
	verifier PasswordVerifier,
	ttl time.Duration,
) *SessionService {
	return &SessionService{
		accounts: accounts,
		tokens:   tokens,
		verifier: verifier,
		ttl:      ttl,
		timeFunc: time.Now,
	}
}

// TTL returns the configured session lifetime.
func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

// Login verifies the credentials against the account directory and, on
// success, issues a fresh token with a full TTL. Accounts may hold any
// number of concurrent sessions; each token expires independently.
// Returns ErrInvalidCredentials for an unknown username or a wrong password,
// without distinguishing the two.
func (s *SessionService) Login(ctx context.Context, username, password string) (*Session, error) {
	log := logger.FromContext(ctx)

	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if err := s.verifier.Compare(account.HashedPassword, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := GenerateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	expiresAt := s.timeFunc().Add(s.ttl)
	entry := store.TokenEntry{AccountID: account.ID, ExpiresAt: expiresAt}
	if err := s.tokens.Put(ctx, token, entry); err != nil {
		return nil, fmt.Errorf("failed to store session token: %w", err)
	}

	log.Debug("session issued",
		"account_id", account.ID,
		"expires_at", expiresAt)

	return &Session{Token: token, Account: account, ExpiresAt: expiresAt}, nil
}

// Verify resolves a bare token (no Bearer prefix) into its session.
// Expiry is enforced here, on access: an expired entry is deleted and
// reported as ErrExpiredToken, after which the same token yields
// ErrInvalidToken like any unknown token. A token whose account has left
// the directory yields store.ErrAccountNotFound; dangling entries must not
// stay silently valid.
func (s *SessionService) Verify(ctx context.Context, token string) (*Session, error) {
	log := logger.FromContext(ctx)

	entry, err := s.tokens.Get(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrTokenNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to look up session token: %w", err)
	}

	if s.timeFunc().After(entry.ExpiresAt) {
		if err := s.tokens.Delete(ctx, token); err != nil && !errors.Is(err, store.ErrTokenNotFound) {
			return nil, fmt.Errorf("failed to remove expired session token: %w", err)
		}
		log.Debug("expired session removed", "account_id", entry.AccountID)
		return nil, ErrExpiredToken
	}

	account, err := s.accounts.GetByID(ctx, entry.AccountID)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			log.Warn("session token references missing account",
				"account_id", entry.AccountID)
			return nil, store.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to resolve session account: %w", err)
	}

	return &Session{Token: token, Account: account, ExpiresAt: entry.ExpiresAt}, nil
}

// Logout revokes the session for a bare token. Deletion is unconditional:
// removing an already-expired entry has the same observable effect. A second
// logout with the same token returns ErrInvalidToken because a revoked token
// is indistinguishable from one that never existed.
func (s *SessionService) Logout(ctx context.Context, token string) error {
	if err := s.tokens.Delete(ctx, token); err != nil {
		if errors.Is(err, store.ErrTokenNotFound) {
			return ErrInvalidToken
		}
		return fmt.Errorf("failed to revoke session token: %w", err)
	}

	logger.FromContext(ctx).Debug("session revoked")
	return nil
}

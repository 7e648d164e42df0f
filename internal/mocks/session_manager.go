package mocks

import (
	"context"
	"time"

	"github.com/ChenReuven/next-api/internal/service/auth"
)

// MockSessionManager implements auth.SessionManager for testing
type MockSessionManager struct {
	// Function fields for customizable behavior
	LoginFn  func(ctx context.Context, username, password string) (*auth.Session, error)
	VerifyFn func(ctx context.Context, token string) (*auth.Session, error)
	LogoutFn func(ctx context.Context, token string) error
	TTLFn    func() time.Duration

	// Call counters for test verification
	LoginCallCount  int
	VerifyCallCount int
	LogoutCallCount int

	// LastToken stores the token passed to the most recent Verify or Logout
	LastToken string
}

// Login implements the SessionManager interface
func (m *MockSessionManager) Login(
	ctx context.Context,
	username, password string,
) (*auth.Session, error) {
	m.LoginCallCount++
	if m.LoginFn != nil {
		return m.LoginFn(ctx, username, password)
	}
	return nil, auth.ErrInvalidCredentials
}

// Verify implements the SessionManager interface
func (m *MockSessionManager) Verify(ctx context.Context, token string) (*auth.Session, error) {
	m.VerifyCallCount++
	m.LastToken = token
	if m.VerifyFn != nil {
		return m.VerifyFn(ctx, token)
	}
	return nil, auth.ErrInvalidToken
}

// Logout implements the SessionManager interface
func (m *MockSessionManager) Logout(ctx context.Context, token string) error {
	m.LogoutCallCount++
	m.LastToken = token
	if m.LogoutFn != nil {
		return m.LogoutFn(ctx, token)
	}
	return auth.ErrInvalidToken
}

// TTL implements the SessionManager interface
func (m *MockSessionManager) TTL() time.Duration {
	if m.TTLFn != nil {
		return m.TTLFn()
	}
	return time.Hour
}

// Ensure MockSessionManager implements auth.SessionManager
var _ auth.SessionManager = (*MockSessionManager)(nil)

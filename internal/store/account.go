package store

import (
	"context"

	"github.com/ChenReuven/next-api/internal/domain"
)

// AccountStore defines read access to the login directory.
// The directory is seeded at startup and immutable afterwards, so there are
// no write operations; session verification must still treat a missing
// account as a recoverable error rather than a crash.
type AccountStore interface {
	// GetByUsername retrieves an account by its unique username.
	// Returns ErrAccountNotFound if no account matches.
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)

	// GetByID retrieves an account by its unique ID.
	// Returns ErrAccountNotFound if no account matches.
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
}

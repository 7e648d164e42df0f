package store

import (
	"context"
	"time"
)

// TokenEntry is the state held per issued session token.
// The AccountID is a weak reference into the account directory: the entry
// may outlive the account, which verification reports as a distinct error.
type TokenEntry struct {
	AccountID int64
	ExpiresAt time.Time
}

// TokenStore defines the interface for session token persistence.
// Presence of a token does not imply validity; callers must check
// ExpiresAt themselves. Implementations must be safe for concurrent use.
type TokenStore interface {
	// Put stores the entry under the given token, replacing any previous
	// entry for the same token.
	Put(ctx context.Context, token string, entry TokenEntry) error

	// Get retrieves the entry for the given token.
	// Returns ErrTokenNotFound if the token was never issued or was removed.
	Get(ctx context.Context, token string) (TokenEntry, error)

	// Delete removes the entry for the given token.
	// Returns ErrTokenNotFound if there is no entry to remove.
	Delete(ctx context.Context, token string) error
}

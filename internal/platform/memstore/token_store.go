package memstore

import (
	"context"
	"sync"

	"github.com/ChenReuven/next-api/internal/store"
)

// TokenStore implements the store.TokenStore interface over a mutex-guarded
// map. Expiry is enforced by the session service on access, not here: an
// expired entry stays in the map until the next lookup removes it.
type TokenStore struct {
	mu     sync.Mutex
	tokens map[string]store.TokenEntry
}

// NewTokenStore creates an empty in-memory token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{
		tokens: make(map[string]store.TokenEntry),
	}
}

// Ensure TokenStore implements store.TokenStore interface
var _ store.TokenStore = (*TokenStore)(nil)

// Put implements store.TokenStore.Put
func (s *TokenStore) Put(ctx context.Context, token string, entry store.TokenEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[token] = entry
	return nil
}

// Get implements store.TokenStore.Get
func (s *TokenStore) Get(ctx context.Context, token string) (store.TokenEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.tokens[token]
	if !ok {
		return store.TokenEntry{}, store.ErrTokenNotFound
	}
	return entry, nil
}

// Delete implements store.TokenStore.Delete
func (s *TokenStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tokens[token]; !ok {
		return store.ErrTokenNotFound
	}
	delete(s.tokens, token)
	return nil
}

// Len reports the number of stored entries, valid or expired.
// Used by tests to observe lazy expiry removal.
func (s *TokenStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.tokens)
}

package mocks

import (
	"context"
	"sync"

	"github.com/ChenReuven/next-api/internal/store"
)

// MockTokenStore implements store.TokenStore for testing
type MockTokenStore struct {
	// Function fields for customizable behavior
	PutFn    func(ctx context.Context, token string, entry store.TokenEntry) error
	GetFn    func(ctx context.Context, token string) (store.TokenEntry, error)
	DeleteFn func(ctx context.Context, token string) error

	// Call counters for test verification
	PutCallCount    int
	DeleteCallCount int

	mu      sync.Mutex
	entries map[string]store.TokenEntry
}

// NewMockTokenStore creates a mock token store with an empty entry map.
func NewMockTokenStore() *MockTokenStore {
	return &MockTokenStore{entries: make(map[string]store.TokenEntry)}
}

// Put implements the TokenStore interface
func (m *MockTokenStore) Put(ctx context.Context, token string, entry store.TokenEntry) error {
	m.mu.Lock()
	m.PutCallCount++
	m.mu.Unlock()

	if m.PutFn != nil {
		return m.PutFn(ctx, token, entry)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[token] = entry
	return nil
}

// Get implements the TokenStore interface
func (m *MockTokenStore) Get(ctx context.Context, token string) (store.TokenEntry, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, token)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[token]
	if !ok {
		return store.TokenEntry{}, store.ErrTokenNotFound
	}
	return entry, nil
}

// Delete implements the TokenStore interface
func (m *MockTokenStore) Delete(ctx context.Context, token string) error {
	m.mu.Lock()
	m.DeleteCallCount++
	m.mu.Unlock()

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, token)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[token]; !ok {
		return store.ErrTokenNotFound
	}
	delete(m.entries, token)
	return nil
}

// Len reports how many entries the default implementation holds.
func (m *MockTokenStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Ensure MockTokenStore implements store.TokenStore
var _ store.TokenStore = (*MockTokenStore)(nil)

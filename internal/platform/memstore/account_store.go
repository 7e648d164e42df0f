package memstore

import (
	"context"
	"sync"

	"github.com/ChenReuven/next-api/internal/domain"
	"github.com/ChenReuven/next-api/internal/store"
)

// AccountStore implements the store.AccountStore interface over a fixed
// in-memory directory.
type AccountStore struct {
	mu       sync.RWMutex
	accounts []domain.Account
}

// NewAccountStore creates an in-memory account directory from the given
// accounts. The slice is copied; the store never mutates it afterwards.
func NewAccountStore(accounts []domain.Account) *AccountStore {
	directory := make([]domain.Account, len(accounts))
	copy(directory, accounts)
	return &AccountStore{accounts: directory}
}

// Ensure AccountStore implements store.AccountStore interface
var _ store.AccountStore = (*AccountStore)(nil)

// GetByUsername implements store.AccountStore.GetByUsername
func (s *AccountStore) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.accounts {
		if s.accounts[i].Username == username {
			account := s.accounts[i]
			return &account, nil
		}
	}
	return nil, store.ErrAccountNotFound
}

// GetByID implements store.AccountStore.GetByID
func (s *AccountStore) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.accounts {
		if s.accounts[i].ID == id {
			account := s.accounts[i]
			return &account, nil
		}
	}
	return nil, store.ErrAccountNotFound
}

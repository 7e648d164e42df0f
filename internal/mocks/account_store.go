package mocks

import (
	"context"

	"github.com/ChenReuven/next-api/internal/domain"
	"github.com/ChenReuven/next-api/internal/store"
)

// MockAccountStore implements store.AccountStore for testing
type MockAccountStore struct {
	// Function fields for customizable behavior
	GetByUsernameFn func(ctx context.Context, username string) (*domain.Account, error)
	GetByIDFn       func(ctx context.Context, id int64) (*domain.Account, error)

	// Data for default implementation
	Accounts []*domain.Account
}

// NewMockAccountStore creates a mock directory holding the given accounts.
func NewMockAccountStore(accounts ...*domain.Account) *MockAccountStore {
	return &MockAccountStore{Accounts: accounts}
}

// GetByUsername implements the AccountStore interface
func (m *MockAccountStore) GetByUsername(
	ctx context.Context,
	username string,
) (*domain.Account, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}

	for _, account := range m.Accounts {
		if account.Username == username {
			return account, nil
		}
	}
	return nil, store.ErrAccountNotFound
}

// GetByID implements the AccountStore interface
func (m *MockAccountStore) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	for _, account := range m.Accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, store.ErrAccountNotFound
}

// Ensure MockAccountStore implements store.AccountStore
var _ store.AccountStore = (*MockAccountStore)(nil)

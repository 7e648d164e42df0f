package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/ChenReuven/next-api/internal/domain"
	"github.com/ChenReuven/next-api/internal/store"
)

// UserStore implements the store.UserStore interface over a mutex-guarded
// slice, preserving insertion order for listings.
type UserStore struct {
	mu    sync.RWMutex
	users []domain.User
}

// NewUserStore creates an in-memory user store seeded with the given users.
// Seed records must pass domain validation; request payloads are checked by
// the handlers instead, which only require name and email to be present.
func NewUserStore(users []domain.User) (*UserStore, error) {
	seeded := make([]domain.User, len(users))
	copy(seeded, users)
	for i := range seeded {
		if err := seeded[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid seed user %d: %w", seeded[i].ID, err)
		}
	}
	return &UserStore{users: seeded}, nil
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

// List implements store.UserStore.List
func (s *UserStore) List(ctx context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

// GetByID implements store.UserStore.GetByID
func (s *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].ID == id {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// Create implements store.UserStore.Create
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.nextIDLocked()
	s.users = append(s.users, *user)
	return nil
}

// Update implements store.UserStore.Update
func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == user.ID {
			s.users[i] = *user
			return nil
		}
	}
	return store.ErrUserNotFound
}

// Delete implements store.UserStore.Delete
func (s *UserStore) Delete(ctx context.Context, id int64) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			removed := s.users[i]
			s.users = append(s.users[:i], s.users[i+1:]...)
			return &removed, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// nextIDLocked returns max(ID)+1, or 1 for an empty store.
// Callers must hold the write lock.
func (s *UserStore) nextIDLocked() int64 {
	var max int64
	for i := range s.users {
		if s.users[i].ID > max {
			max = s.users[i].ID
		}
	}
	return max + 1
}

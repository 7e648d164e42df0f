package store

import (
	"context"

	"github.com/ChenReuven/next-api/internal/domain"
)

// UserStore defines the interface for the users resource.
type UserStore interface {
	// List returns all users in insertion order.
	List(ctx context.Context) ([]domain.User, error)

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// Create saves a new user and assigns it the next free ID.
	// The assigned ID is written back into the passed user.
	Create(ctx context.Context, user *domain.User) error

	// Update modifies an existing user's details, preserving the ID.
	// Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user from the store by their ID and returns the
	// removed record. Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id int64) (*domain.User, error)
}

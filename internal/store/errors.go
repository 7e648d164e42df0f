package store

import "errors"

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. The entity-specific variants below carry the same meaning for
	// callers that need to tell resources apart.
	ErrNotFound = errors.New("entity not found")

	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")

	// ErrUserNotFound is returned when a user does not exist in the store.
	ErrUserNotFound = errors.New("user not found")

	// ErrProductNotFound is returned when a product does not exist in the store.
	ErrProductNotFound = errors.New("product not found")

	// ErrTokenNotFound is returned when a session token has no entry in the
	// token store. An expired-and-removed token and a never-issued token are
	// indistinguishable to callers.
	ErrTokenNotFound = errors.New("token not found")
)

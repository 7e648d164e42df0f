package domain

import "errors"

// Common account validation errors
var (
	ErrEmptyAccountID       = errors.New("account ID must be positive")
	ErrEmptyUsername        = errors.New("username cannot be empty")
	ErrEmptyHashedPassword  = errors.New("hashed password cannot be empty")
	ErrInvalidRole          = errors.New("role must be admin or user")
)

// Role classifies an account for authorization purposes.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether the role is one of the supported values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Account represents an entry in the login directory: a principal that can
// authenticate and hold sessions. The directory is seeded at startup and
// read-only afterwards; the users CRUD resource is a separate entity.
type Account struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	HashedPassword string `json:"-"` // Never expose the password hash in JSON
	Role           Role   `json:"role"`
}

// Validate checks if the Account has valid data.
// Returns an error if any field fails validation.
func (a *Account) Validate() error {
	if a.ID <= 0 {
		return ErrEmptyAccountID
	}

	if a.Username == "" {
		return ErrEmptyUsername
	}

	if a.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}

	if !a.Role.Valid() {
		return ErrInvalidRole
	}

	return nil
}

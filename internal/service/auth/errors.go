package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidCredentials indicates the username/password pair did not
	// match any account. Deliberately covers both the unknown-username and
	// wrong-password cases so callers cannot enumerate usernames.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken indicates the token has no entry in the token store,
	// whether it was never issued, already revoked, or removed after expiry.
	ErrInvalidToken = errors.New("invalid session token")

	// ErrExpiredToken indicates the token existed but its entry had expired.
	// The entry is removed as a side effect of this detection.
	ErrExpiredToken = errors.New("session token has expired")
)

package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// tokenBytes is the entropy per session token. 32 bytes (256 bits) keeps
// brute-force guessing out of reach; the encoded form is 43 characters and
// safe for HTTP headers.
const tokenBytes = 32

// GenerateToken returns a new opaque bearer token. The token carries no
// information about the account or expiry; everything observable about a
// session lives in the token store.
func GenerateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read token entropy: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ChenReuven/next-api/internal/api/shared"
	"github.com/ChenReuven/next-api/internal/redact"
	"github.com/ChenReuven/next-api/internal/service/auth"
	"github.com/ChenReuven/next-api/internal/store"
)

// bearerPrefix is the required Authorization scheme for session tokens.
const bearerPrefix = "Bearer "

// AuthMiddleware provides bearer-token session authentication for routes.
type AuthMiddleware struct {
	sessions auth.SessionManager
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(sessions auth.SessionManager) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
	}
}

// ExtractBearerToken pulls the bare token out of an Authorization header
// value. Returns false when the header is absent or does not carry the
// Bearer scheme.
func ExtractBearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	return strings.TrimPrefix(header, bearerPrefix), true
}

// Authenticate validates session tokens from the Authorization header and
// adds the resolved account to the request context for authorized requests.
// Error statuses mirror the auth endpoint exactly, so collaborating routes
// propagate verification results verbatim.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := ExtractBearerToken(r)
		if !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized,
				"Authorization header missing or invalid")
			return
		}

		session, err := m.sessions.Verify(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token has expired")
			case errors.Is(err, auth.ErrInvalidToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			case errors.Is(err, store.ErrAccountNotFound):
				shared.RespondWithError(w, r, http.StatusNotFound, "User not found")
			default:
				slog.Error("failed to verify session token", "error", redact.Error(err))
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Server error")
			}
			return
		}

		ctx := shared.SetAccount(r.Context(), session.Account)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

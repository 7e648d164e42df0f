package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ChenReuven/next-api/internal/api/middleware"
	"github.com/ChenReuven/next-api/internal/api/shared"
	"github.com/ChenReuven/next-api/internal/redact"
	"github.com/ChenReuven/next-api/internal/service/auth"
	"github.com/ChenReuven/next-api/internal/store"
)

// AuthHandler handles the session endpoints: login, verification, logout.
type AuthHandler struct {
	sessions auth.SessionManager
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(sessions auth.SessionManager) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
	}
}

// Login handles POST /api/auth. It authenticates a username/password pair
// and issues a fresh session token. Validation order: payload shape first,
// field presence second, credential check last.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if req.Username == "" || req.Password == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Username and password are required")
		return
	}

	session, err := h.sessions.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		slog.Error("login failed", "error", redact.Error(err))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Server error")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Token:     session.Token,
		User:      session.Account,
		ExpiresIn: h.sessions.TTL().Milliseconds(),
	})
}

// Verify handles GET /api/auth. It resolves the bearer token from the
// Authorization header into the account it belongs to.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.ExtractBearerToken(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized,
			"Authorization header missing or invalid")
		return
	}

	session, err := h.sessions.Verify(r.Context(), token)
	if err != nil {
		h.respondVerifyError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, VerifyResponse{
		User:    session.Account,
		Expires: session.ExpiresAt,
	})
}

// Logout handles DELETE /api/auth. Revocation is unconditional; a second
// logout with the same token reports an invalid token because the store no
// longer distinguishes it from one that never existed.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.ExtractBearerToken(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized,
			"Authorization header missing or invalid")
		return
	}

	if err := h.sessions.Logout(r.Context(), token); err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			return
		}
		slog.Error("logout failed", "error", redact.Error(err))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Server error")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Message: "Logged out successfully",
	})
}

// respondVerifyError maps verification failures onto the session error
// contract. Anything outside the known kinds is downgraded to a generic
// server error; internal detail stays in the logs.
func (h *AuthHandler) respondVerifyError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Token has expired")
	case errors.Is(err, auth.ErrInvalidToken):
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
	case errors.Is(err, store.ErrAccountNotFound):
		shared.RespondWithError(w, r, http.StatusNotFound, "User not found")
	default:
		slog.Error("token verification failed", "error", redact.Error(err))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Server error")
	}
}

package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ChenReuven/next-api/internal/api/shared"
	"github.com/ChenReuven/next-api/internal/domain"
	"github.com/ChenReuven/next-api/internal/redact"
	"github.com/ChenReuven/next-api/internal/store"
)

// UserHandler handles the users resource endpoints.
type UserHandler struct {
	users store.UserStore
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(users store.UserStore) *UserHandler {
	return &UserHandler{
		users: users,
	}
}

// List handles GET /api/users. With an ?id= query it returns that single
// user; otherwise the full collection.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusNotFound, "User not found")
			return
		}
		h.respondUser(w, r, id)
		return
	}

	users, err := h.users.List(r.Context())
	if err != nil {
		slog.Error("failed to list users", "error", redact.Error(err))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Server error")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, users)
}

// Get handles GET /api/users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "User not found")
		return
	}
	h.respondUser(w, r, id)
}

// Create handles POST /api/users. The new record receives the next free ID.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if req.Name == "" || req.Email == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Name and email are required")
		return
	}

	user := domain.User{Name: req.Name, Email: req.Email}
	if err := h.users.Create(r.Context(), &user); err != nil {
		slog.Error("failed to create user", "error", redact.Error(err))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Server error")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, user)
}

// Update handles PUT /api/users?id= and PUT /api/users/{id}. Fields absent
// from the payload keep their current values; the ID never changes.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := requestID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "User ID is required")
		return
	}

	var req UpdateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	current, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		h.respondUserError(w, r, err)
		return
	}

	updated := domain.User{ID: id, Name: current.Name, Email: current.Email}
	if req.Name != "" {
		updated.Name = req.Name
	}
	if req.Email != "" {
		updated.Email = req.Email
	}

	if err := h.users.Update(r.Context(), &updated); err != nil {
		h.respondUserError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, updated)
}

// Delete handles DELETE /api/users?id= and DELETE /api/users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := requestID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "User ID is required")
		return
	}

	removed, err := h.users.Delete(r.Context(), id)
	if err != nil {
		h.respondUserError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteUserResponse{
		Message: "User deleted successfully",
		User:    removed,
	})
}

func (h *UserHandler) respondUser(w http.ResponseWriter, r *http.Request, id int64) {
	user, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		h.respondUserError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

func (h *UserHandler) respondUserError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, store.ErrUserNotFound) {
		shared.RespondWithError(w, r, http.StatusNotFound, "User not found")
		return
	}
	slog.Error("user store operation failed", "error", redact.Error(err))
	shared.RespondWithError(w, r, http.StatusInternalServerError, "Server error")
}

// pathID extracts the numeric {id} path parameter.
func pathID(r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// requestID resolves the target ID from either the {id} path parameter or
// the ?id= query parameter, so the path-style and query-style routes share
// their handlers. A present but unparsable value resolves to ID 0, which no
// record ever has, and surfaces as a not-found; only a truly absent ID is a
// bad request.
func requestID(r *http.Request) (int64, bool) {
	if raw := chi.URLParam(r, "id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return 0, true
		}
		return id, true
	}
	raw := r.URL.Query().Get("id")
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, true
	}
	return id, true
}

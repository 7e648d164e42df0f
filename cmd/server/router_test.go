package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ChenReuven/next-api/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "error"},
		Auth: config.AuthConfig{
			SessionTTLMinutes: 60,
			BcryptCost:        bcrypt.MinCost,
		},
		Upload: config.UploadConfig{
			MaxSizeMB:    5,
			AllowedTypes: []string{"image/jpeg", "image/png", "image/gif"},
		},
		CORS: config.CORSConfig{AllowedOrigin: "*", MaxAgeSeconds: 86400},
	}
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	app, err := newApplication(testConfig(), logger)
	require.NoError(t, err)
	return app.setupRouter()
}

func request(
	t *testing.T,
	h http.Handler,
	method, target, token, body string,
) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func login(t *testing.T, h http.Handler, username, password string) string {
	t.Helper()

	rr := request(t, h, http.MethodPost, "/api/auth", "",
		`{"username":"`+username+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, rr.Code, "login failed: %s", rr.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestSessionLifecycle(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	// Login with the seeded admin credentials.
	rr := request(t, srv, http.MethodPost, "/api/auth", "",
		`{"username":"admin","password":"admin123"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var loginResp struct {
		Token     string `json:"token"`
		ExpiresIn int64  `json:"expiresIn"`
		User      struct {
			ID       int64  `json:"id"`
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &loginResp))
	assert.Equal(t, int64(3600000), loginResp.ExpiresIn)
	assert.Equal(t, int64(1), loginResp.User.ID)
	assert.Equal(t, "admin", loginResp.User.Username)
	assert.Equal(t, "admin", loginResp.User.Role)
	assert.NotContains(t, rr.Body.String(), "admin123")

	// The issued token verifies.
	rr = request(t, srv, http.MethodGet, "/api/auth", loginResp.Token, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var verifyResp struct {
		User struct {
			Username string `json:"username"`
		} `json:"user"`
		Expires string `json:"expires"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &verifyResp))
	assert.Equal(t, "admin", verifyResp.User.Username)
	assert.NotEmpty(t, verifyResp.Expires)

	// Logout revokes the session.
	rr = request(t, srv, http.MethodDelete, "/api/auth", loginResp.Token, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Logged out successfully")

	// The revoked token no longer verifies.
	rr = request(t, srv, http.MethodGet, "/api/auth", loginResp.Token, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid token")

	// A second logout reports the same.
	rr = request(t, srv, http.MethodDelete, "/api/auth", loginResp.Token, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLoginRejections(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		rr := request(t, srv, http.MethodPost, "/api/auth", "",
			`{"username":"admin","password":"wrong"}`)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid credentials")
	})

	t.Run("unknown username", func(t *testing.T) {
		t.Parallel()
		rr := request(t, srv, http.MethodPost, "/api/auth", "",
			`{"username":"ghost","password":"admin123"}`)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid credentials")
	})

	t.Run("missing password", func(t *testing.T) {
		t.Parallel()
		rr := request(t, srv, http.MethodPost, "/api/auth", "",
			`{"username":"admin"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Username and password are required")
	})
}

func TestRouteProtection(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	t.Run("protected routes reject anonymous requests", func(t *testing.T) {
		t.Parallel()
		for _, target := range []string{
			"/api/users", "/api/products", "/api/upload", "/api/validate",
		} {
			rr := request(t, srv, http.MethodGet, target, "", "")
			assert.Equal(t, http.StatusUnauthorized, rr.Code, target)
			assert.Contains(t, rr.Body.String(), "Authorization header missing or invalid")
		}
	})

	t.Run("protected routes reject unknown tokens", func(t *testing.T) {
		t.Parallel()
		rr := request(t, srv, http.MethodGet, "/api/users", "made-up-token", "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid token")
	})

	t.Run("public routes work without a session", func(t *testing.T) {
		t.Parallel()
		rr := request(t, srv, http.MethodGet, "/api/cors-example", "", "")
		assert.Equal(t, http.StatusOK, rr.Code)

		rr = request(t, srv, http.MethodGet, "/", "", "")
		assert.Equal(t, http.StatusOK, rr.Code)

		rr = request(t, srv, http.MethodGet, "/health", "", "")
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("a session opens the protected routes", func(t *testing.T) {
		t.Parallel()
		token := login(t, srv, "user", "user123")

		rr := request(t, srv, http.MethodGet, "/api/users", token, "")
		assert.Equal(t, http.StatusOK, rr.Code)

		rr = request(t, srv, http.MethodGet, "/api/products", token, "")
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestCORSOnAllResponses(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	t.Run("headers on regular responses", func(t *testing.T) {
		t.Parallel()
		rr := request(t, srv, http.MethodGet, "/api/cors-example", "", "")
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "86400", rr.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("preflight gets 204 without auth", func(t *testing.T) {
		t.Parallel()
		rr := request(t, srv, http.MethodOptions, "/api/users", "", "")
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS",
			rr.Header().Get("Access-Control-Allow-Methods"))
	})
}

func TestConcurrentSessions(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	adminToken := login(t, srv, "admin", "admin123")
	userToken := login(t, srv, "user", "user123")
	assert.NotEqual(t, adminToken, userToken)

	// Revoking one account's session leaves the other intact.
	rr := request(t, srv, http.MethodDelete, "/api/auth", adminToken, "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = request(t, srv, http.MethodGet, "/api/auth", userToken, "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

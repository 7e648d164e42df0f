package middleware

import (
	"net/http"
	"strconv"

	"github.com/ChenReuven/next-api/internal/config"
)

// CORSMiddleware applies cross-origin headers to every response and answers
// preflight OPTIONS requests with 204 before they reach a handler.
type CORSMiddleware struct {
	allowedOrigin string
	maxAge        string
}

// NewCORSMiddleware creates a CORSMiddleware from configuration.
func NewCORSMiddleware(cfg config.CORSConfig) *CORSMiddleware {
	return &CORSMiddleware{
		allowedOrigin: cfg.AllowedOrigin,
		maxAge:        strconv.Itoa(cfg.MaxAgeSeconds),
	}
}

// Handler wraps next with CORS header application and preflight handling.
func (m *CORSMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.setHeaders(w)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *CORSMiddleware) setHeaders(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", m.allowedOrigin)
	h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
	h.Set("Access-Control-Max-Age", m.maxAge)
}

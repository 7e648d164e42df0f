package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ChenReuven/next-api/internal/api"
	apiMiddleware "github.com/ChenReuven/next-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Route protection mirrors the session contract: everything
// under /api requires a verified bearer session except the auth endpoints
// themselves and the CORS example.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.NewCORSMiddleware(app.config.CORS).Handler)

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(app.sessions)
	userHandler := api.NewUserHandler(app.userStore)
	productHandler := api.NewProductHandler(app.productStore)
	uploadHandler := api.NewUploadHandler(app.config.Upload)
	validateHandler := api.NewValidateHandler()
	rootHandler := api.NewRootHandler()

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.sessions)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Session endpoints (public)
		r.Post("/auth", authHandler.Login)
		r.Get("/auth", authHandler.Verify)
		r.Delete("/auth", authHandler.Logout)

		// CORS demo endpoint (public)
		r.Get("/cors-example", rootHandler.CORSExample)
		r.Post("/cors-example", rootHandler.CORSExample)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Users resource
			r.Get("/users", userHandler.List)
			r.Post("/users", userHandler.Create)
			r.Put("/users", userHandler.Update)
			r.Delete("/users", userHandler.Delete)
			r.Get("/users/{id}", userHandler.Get)
			r.Put("/users/{id}", userHandler.Update)
			r.Delete("/users/{id}", userHandler.Delete)

			// Products resource
			r.Get("/products", productHandler.List)
			r.Post("/products", productHandler.Create)
			r.Put("/products", productHandler.Update)
			r.Delete("/products", productHandler.Delete)

			// Upload stub
			r.Get("/upload", uploadHandler.Info)
			r.Post("/upload", uploadHandler.Upload)

			// Validation demo
			r.Get("/validate", validateHandler.Schema)
			r.Post("/validate", validateHandler.Validate)
		})
	})

	// Root demo routes
	r.Get("/", rootHandler.Hello)
	r.Post("/", rootHandler.Echo)
	r.Put("/", rootHandler.Update)
	r.Delete("/", rootHandler.Delete)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}

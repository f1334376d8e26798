package http

import (
	"net/http"

	"github.com/atinyakov/StorePortal/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs the portal API handler.
//
// Routes:
//
//	POST /api/auth/login            → authHandler.Login
//	GET  /api/stores/user/{userID}  → storeHandler.ByUser (bearer token)
//	GET  /api/stores/{storeID}      → storeHandler.ByID   (bearer token)
//
// Middleware chain (applied in order):
//  1. RequestID
//  2. WithRequestLogging(logger)
//  3. Recoverer
//  4. AllowContentType("application/json") for bodies
//  5. BearerAuth on the stores group
func NewRouter(
	authHandler *AuthHandler,
	storeHandler *StoreHandler,
	verifier middleware.TokenVerifier,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.WithRequestLogging(logger))
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.AllowContentType("application/json"))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.BearerAuth(verifier))
			r.Get("/stores/user/{userID}", storeHandler.ByUser)
			r.Get("/stores/{storeID}", storeHandler.ByID)
		})
	})

	return r
}

package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/cims/inventory-management/internal/auth"
	"github.com/cims/inventory-management/internal/item"
	"github.com/cims/inventory-management/internal/transport/middleware"
	"github.com/cims/inventory-management/internal/transport/swagger"
	"github.com/cims/inventory-management/internal/user"
	"github.com/go-chi/chi"
)

// RegisterAllRoutes wires the HTTP surface: public auth endpoints, the
// token-gated profile and inventory endpoints, and the operational extras.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, authHandler *auth.Handler, userHandler *user.Handler, itemHandler *item.Handler, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Get("/health", healthHandler.healthCheckHandler)
	router.Get("/ping", healthHandler.pingHandler)

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	// every route below requires a valid bearer token
	router.Group(func(pr chi.Router) {
		pr.Use(authHandler.AuthMiddleware)

		pr.Get("/users/me", userHandler.GetCurrentUser)
		pr.Put("/users/me", userHandler.UpdateCurrentUser)

		pr.Route("/items", func(ir chi.Router) {
			ir.Post("/", itemHandler.CreateItem)
			ir.Get("/", itemHandler.ListItems)
			ir.Put("/{id}", itemHandler.UpdateItem)
			ir.Delete("/{id}", itemHandler.DeleteItem)
		})
	})
}

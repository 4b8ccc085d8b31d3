package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"seedco-api/internal/adaptor"
	"seedco-api/pkg/middleware"
)

// wireUser configures the admin user-management routes
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	log *zap.Logger,
) {
	r.With(middleware.RequireAdmin(log)).Route("/api/admin/users", func(r chi.Router) {
		r.Get("/", userHandler.GetAllUsers)
		r.Get("/{id}", userHandler.GetUser)
		r.Put("/{id}", userHandler.UpdateUser)
		r.Put("/{id}/deactivate", userHandler.DeactivateUser)
		r.Put("/{id}/activate", userHandler.ActivateUser)
	})
}

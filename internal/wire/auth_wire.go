package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"seedco-api/internal/adaptor"
	"seedco-api/pkg/middleware"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	log *zap.Logger,
) {
	r.Route("/api/auth", func(r chi.Router) {
		// Public routes
		r.Post("/register/customer", authHandler.RegisterCustomer)
		r.Post("/register/admin", authHandler.RegisterAdmin)
		r.Post("/login", authHandler.Login)

		// Protected routes
		r.With(middleware.RequireAuth(log)).Group(func(r chi.Router) {
			r.Get("/profile", authHandler.GetProfile)
			r.Put("/profile", authHandler.UpdateProfile)
			r.Put("/change-password", authHandler.ChangePassword)
		})

		// Role-scoped variants with identical semantics
		r.With(middleware.RequireAdmin(log)).Route("/admin", func(r chi.Router) {
			r.Get("/profile", authHandler.GetProfile)
			r.Put("/profile", authHandler.UpdateProfile)
			r.Put("/change-password", authHandler.ChangePassword)
		})

		r.With(middleware.RequireCustomer(log)).Route("/customer", func(r chi.Router) {
			r.Get("/profile", authHandler.GetProfile)
			r.Put("/profile", authHandler.UpdateProfile)
			r.Put("/change-password", authHandler.ChangePassword)
		})
	})
}

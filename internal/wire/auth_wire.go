package wire

import (
	"bite-reviews/internal/adaptor"
	"bite-reviews/internal/usecase"
	"bite-reviews/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	service *usecase.Service,
	log *zap.Logger,
) {
	// POST /api/admin/login - exchange the shared secret for a session token
	r.Post("/api/admin/login", authHandler.Login)

	// POST /api/admin/logout - clear the session flag
	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminAuth(service.Auth, log))
		r.Post("/api/admin/logout", authHandler.Logout)
	})
}

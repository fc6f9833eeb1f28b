package wire

import (
	"bite-reviews/internal/adaptor"
	"bite-reviews/internal/usecase"
	"bite-reviews/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	handler *adaptor.Handler,
	service *usecase.Service,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/reviews - submit a review (the public rating form)
	r.Post("/api/reviews", handler.Review.CreateReview)

	// ==================== ADMIN ROUTES (require session token) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminAuth(service.Auth, log))

		// GET /api/admin/reviews - filtered, paged review list
		r.Get("/api/admin/reviews", handler.Review.ListReviews)

		// GET /api/admin/reviews/export - download the full set as xlsx/csv
		r.Get("/api/admin/reviews/export", handler.Export.ExportReviews)

		// GET /api/admin/analytics - aggregate snapshot
		r.Get("/api/admin/analytics", handler.Review.GetAnalytics)

		// DELETE /api/admin/reviews/{id} - remove one review
		r.Delete("/api/admin/reviews/{id}", handler.Review.DeleteReview)
	})
}

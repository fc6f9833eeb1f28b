package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"bite-reviews/internal/dto/request"
	"bite-reviews/internal/usecase"
	"bite-reviews/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// CreateReview handles POST /api/reviews (public)
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	review, err := h.service.SubmitReview(r.Context(), &req)
	if err != nil {
		if ve, ok := usecase.AsValidationError(err); ok {
			utils.ResponseBadRequest(w, "Please fix the errors", ve.Fields)
			return
		}
		h.log.Error("Failed to submit review", zap.Error(err))
		utils.ResponseInternalError(w, "Error submitting review. Please try again later.")
		return
	}

	utils.ResponseCreated(w, "Review submitted successfully", review)
}

// ListReviews handles GET /api/admin/reviews (admin)
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := request.ReviewFilter{
		Search:  query.Get("search"),
		Rating:  query.Get("rating"),
		Time:    query.Get("time"),
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), request.DefaultPerPage),
	}

	reviews, err := h.service.ListReviews(r.Context(), filter)
	if err != nil {
		h.log.Error("Failed to list reviews", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to load reviews. Please try again.")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// GetAnalytics handles GET /api/admin/analytics (admin)
func (h *ReviewHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.service.GetAnalytics(r.Context())
	if err != nil {
		h.log.Error("Failed to compute analytics", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to load analytics")
		return
	}

	utils.ResponseSuccess(w, "success", analytics)
}

// DeleteReview handles DELETE /api/admin/reviews/{id} (admin)
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "id")
	if reviewID == "" {
		utils.ResponseBadRequest(w, "Review ID is required", nil)
		return
	}

	if err := h.service.DeleteReview(r.Context(), reviewID); err != nil {
		if errors.Is(err, usecase.ErrInvalidID) {
			utils.ResponseBadRequest(w, "Invalid review ID", nil)
			return
		}
		h.log.Error("Failed to delete review", zap.Error(err), zap.String("review_id", reviewID))
		utils.ResponseInternalError(w, "Failed to delete the review. Please try again.")
		return
	}

	utils.ResponseSuccess(w, "Review deleted successfully", nil)
}

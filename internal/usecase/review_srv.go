package usecase

import (
	"context"
	"fmt"
	"time"

	"bite-reviews/internal/data/entity"
	"bite-reviews/internal/data/repository"
	"bite-reviews/internal/dto/request"
	"bite-reviews/internal/dto/response"
	"bite-reviews/pkg/mailer"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const notifyTimeout = 15 * time.Second

type ReviewService interface {
	SubmitReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	ListReviews(ctx context.Context, filter request.ReviewFilter) (*response.PaginatedResponse[response.ReviewResponse], error)
	GetAnalytics(ctx context.Context) (*response.AnalyticsResponse, error)
	DeleteReview(ctx context.Context, reviewID string) error
	AllReviews(ctx context.Context) ([]*entity.Review, error)
}

type reviewService struct {
	repo     *repository.Repository
	notifier mailer.Notifier
	log      *zap.Logger
}

func NewReviewService(repo *repository.Repository, notifier mailer.Notifier, log *zap.Logger) ReviewService {
	return &reviewService{
		repo:     repo,
		notifier: notifier,
		log:      log.With(zap.String("service", "review")),
	}
}

// SubmitReview runs the submission pipeline: validate, persist, notify.
// The notification is best-effort; once the insert succeeded the review
// counts as submitted whatever the provider does.
func (s *reviewService) SubmitReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	req.Normalize()

	if errs := req.Validate(); len(errs) > 0 {
		s.log.Warn("Review submission validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	review := &entity.Review{
		ID:             uuid.New(),
		RestaurantName: req.RestaurantName,
		ReviewText:     req.ReviewText,
		Rating:         req.Rating,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to store review",
			zap.Error(err),
			zap.String("restaurant_name", review.RestaurantName),
		)
		return nil, fmt.Errorf("store review: %w", err)
	}

	s.log.Info("Review submitted",
		zap.String("review_id", review.ID.String()),
		zap.String("restaurant_name", review.RestaurantName),
		zap.Int("rating", review.Rating),
	)

	s.notifyAsync(review, req.PollAnswer)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

// notifyAsync dispatches the email in a supervised goroutine. The context
// is detached from the request so a client disconnect cannot abort the
// send; failure becomes a warn log, never a submission error.
func (s *reviewService) notifyAsync(review *entity.Review, pollAnswer *string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		err := s.notifier.Send(ctx, mailer.ReviewEmail{
			RestaurantName: review.RestaurantName,
			ReviewText:     review.ReviewText,
			Rating:         review.Rating,
			PollAnswer:     pollAnswer,
			CreatedAt:      review.CreatedAt,
		})
		if err != nil {
			s.log.Warn("Review notification failed",
				zap.Error(err),
				zap.String("review_id", review.ID.String()),
			)
		}
	}()
}

// ListReviews fetches the full set and derives the filtered page from it
func (s *reviewService) ListReviews(ctx context.Context, filter request.ReviewFilter) (*response.PaginatedResponse[response.ReviewResponse], error) {
	reviews, err := s.repo.Review.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load reviews", zap.Error(err))
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	filtered := FilterReviews(reviews, filter, time.Now())

	page := filter.CurrentPage()
	perPage := filter.Limit()
	paged := Paginate(filtered, page, perPage)

	s.log.Debug("Reviews listed",
		zap.Int("total", len(reviews)),
		zap.Int("filtered", len(filtered)),
		zap.Int("page", page),
		zap.Int("per_page", perPage),
	)

	return response.NewPaginatedResponse(
		response.ReviewsToResponse(paged), page, perPage, int64(len(filtered))), nil
}

// GetAnalytics recomputes the snapshot over the full set on every call
func (s *reviewService) GetAnalytics(ctx context.Context) (*response.AnalyticsResponse, error) {
	reviews, err := s.repo.Review.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load reviews for analytics", zap.Error(err))
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	return BuildAnalytics(reviews, time.Now()), nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID string) error {
	id, err := uuid.Parse(reviewID)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, reviewID)
	}

	if err := s.repo.Review.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	return nil
}

// AllReviews returns the full ordered set, used by the export endpoint
func (s *reviewService) AllReviews(ctx context.Context) ([]*entity.Review, error) {
	reviews, err := s.repo.Review.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load reviews for export", zap.Error(err))
		return nil, fmt.Errorf("load reviews: %w", err)
	}
	return reviews, nil
}

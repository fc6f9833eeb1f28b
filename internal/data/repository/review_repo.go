package repository

import (
	"context"
	"fmt"

	"bite-reviews/internal/data/entity"
	"bite-reviews/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindAll(ctx context.Context) ([]*entity.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, restaurant_name, review_text, rating, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.RestaurantName,
		review.ReviewText,
		review.Rating,
		review.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("restaurant_name", review.RestaurantName),
			zap.Int("rating", review.Rating),
		)
		return fmt.Errorf("create review for %s: %w", review.RestaurantName, err)
	}

	return nil
}

// FindAll returns every review, newest first. There is no store-level
// paging; filtering and pagination happen over the retrieved set.
func (r *reviewRepository) FindAll(ctx context.Context) ([]*entity.Review, error) {
	query := `
		SELECT id, restaurant_name, review_text, rating, created_at
		FROM reviews
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list reviews", zap.Error(err))
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.RestaurantName,
			&review.ReviewText,
			&review.Rating,
			&review.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}

// Delete removes one row by id. A missing id is not distinguished from
// success: the row is gone either way.
func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return fmt.Errorf("delete review %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		r.log.Debug("Delete matched no rows", zap.String("review_id", id.String()))
		return nil
	}

	r.log.Info("Review deleted", zap.String("review_id", id.String()))
	return nil
}

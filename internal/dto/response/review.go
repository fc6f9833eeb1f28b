package response

import (
	"time"

	"bite-reviews/internal/data/entity"
)

type ReviewResponse struct {
	ID             string    `json:"id"`
	RestaurantName string    `json:"restaurant_name"`
	ReviewText     string    `json:"review_text"`
	Rating         int       `json:"rating"`
	CreatedAt      time.Time `json:"created_at"`
}

// Helper converter
func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:             review.ID.String(),
		RestaurantName: review.RestaurantName,
		ReviewText:     review.ReviewText,
		Rating:         review.Rating,
		CreatedAt:      review.CreatedAt,
	}
}

func ReviewsToResponse(reviews []*entity.Review) []ReviewResponse {
	out := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		out[i] = ReviewToResponse(review)
	}
	return out
}

package usecase

import (
	"time"

	"bite-reviews/internal/data/entity"
	"bite-reviews/internal/dto/response"
)

const recentActivityCount = 3

// BuildAnalytics computes the aggregate snapshot over the full review set.
// It is independent of any list-filter state: the dashboard recomputes it
// whenever the underlying set changes. Restaurant grouping is exact and
// case-sensitive, so "Café A" and "cafe a" count separately.
func BuildAnalytics(reviews []*entity.Review, now time.Time) *response.AnalyticsResponse {
	ratingCounts := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	restaurants := make(map[string]struct{})
	ratingSum := 0
	recent := 0

	sevenDaysAgo := now.AddDate(0, 0, -7)

	for _, review := range reviews {
		ratingSum += review.Rating
		if review.Rating >= 1 && review.Rating <= 5 {
			ratingCounts[review.Rating]++
		}
		if !review.CreatedAt.Before(sevenDaysAgo) {
			recent++
		}
		restaurants[review.RestaurantName] = struct{}{}
	}

	average := 0.0
	if len(reviews) > 0 {
		average = float64(ratingSum) / float64(len(reviews))
	}

	activity := reviews
	if len(activity) > recentActivityCount {
		activity = activity[:recentActivityCount]
	}

	return &response.AnalyticsResponse{
		TotalReviews:      len(reviews),
		AverageRating:     average,
		RatingCounts:      ratingCounts,
		RecentReviews:     recent,
		UniqueRestaurants: len(restaurants),
		RecentActivity:    response.ReviewsToResponse(activity),
	}
}

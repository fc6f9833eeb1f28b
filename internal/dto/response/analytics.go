package response

// AnalyticsResponse is the aggregate snapshot the dashboard renders. It is
// recomputed from the full review set on every request, never stored.
type AnalyticsResponse struct {
	TotalReviews      int              `json:"total_reviews"`
	AverageRating     float64          `json:"average_rating"`
	RatingCounts      map[int]int      `json:"rating_counts"` // keys 1..5, always present
	RecentReviews     int              `json:"recent_reviews"` // trailing 7 days
	UniqueRestaurants int              `json:"unique_restaurants"`
	RecentActivity    []ReviewResponse `json:"recent_activity"` // three newest
}

type AdminLoginResponse struct {
	Token string `json:"token"`
}

package usecase

import (
	"strconv"
	"strings"
	"time"

	"bite-reviews/internal/data/entity"
	"bite-reviews/internal/dto/request"
	"bite-reviews/pkg/utils"
)

// FilterReviews derives the filtered view from the full in-memory set.
// The three filters are ANDed; each passes everything through when unset.
// The input slice is never mutated, so re-deriving after a delete or a
// parameter change is just a fresh call over the current snapshot.
func FilterReviews(reviews []*entity.Review, filter request.ReviewFilter, now time.Time) []*entity.Review {
	filtered := make([]*entity.Review, 0, len(reviews))

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	rating, byRating := parseRatingFilter(filter.Rating)
	cutoff, byTime := timeCutoff(filter.Time, now)

	for _, review := range reviews {
		if search != "" && !matchesSearch(review, search) {
			continue
		}
		if byRating && review.Rating != rating {
			continue
		}
		if byTime && review.CreatedAt.Before(cutoff) {
			continue
		}
		filtered = append(filtered, review)
	}

	return filtered
}

// Paginate slices out one page. A page past the end yields an empty slice,
// not an error.
func Paginate(reviews []*entity.Review, page, perPage int) []*entity.Review {
	if perPage < 1 {
		perPage = request.DefaultPerPage
	}
	if page < 1 {
		page = 1
	}

	start := utils.CalculateOffset(page, perPage)
	if start >= len(reviews) {
		return []*entity.Review{}
	}

	end := start + perPage
	if end > len(reviews) {
		end = len(reviews)
	}

	return reviews[start:end]
}

func matchesSearch(review *entity.Review, search string) bool {
	return strings.Contains(strings.ToLower(review.RestaurantName), search) ||
		strings.Contains(strings.ToLower(review.ReviewText), search)
}

// parseRatingFilter returns the rating to match and whether to match at
// all. "all", empty or garbage values pass everything through.
func parseRatingFilter(value string) (int, bool) {
	if value == "" || value == "all" {
		return 0, false
	}
	rating, err := strconv.Atoi(value)
	if err != nil || rating < 1 || rating > 5 {
		return 0, false
	}
	return rating, true
}

// timeCutoff maps the window name to its lower bound relative to now
func timeCutoff(window string, now time.Time) (time.Time, bool) {
	switch window {
	case request.TimeWindowWeek:
		return now.AddDate(0, 0, -7), true
	case request.TimeWindowMonth:
		return now.AddDate(0, -1, 0), true
	case request.TimeWindowThreeMonths:
		return now.AddDate(0, -3, 0), true
	default:
		return time.Time{}, false
	}
}

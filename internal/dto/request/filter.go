package request

// Time window values accepted by the reviews list filter. "all" (or empty)
// disables the window.
const (
	TimeWindowWeek        = "week"
	TimeWindowMonth       = "month"
	TimeWindowThreeMonths = "3months"
	TimeWindowAll         = "all"
)

// ReviewFilter is the derived-view parameter set: text search, rating
// equality and a relative time window, all ANDed, plus paging.
type ReviewFilter struct {
	Search  string `json:"search"`
	Rating  string `json:"rating"`  // "1".."5" or "all"
	Time    string `json:"time"`    // week | month | 3months | all
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
}

// DefaultPerPage matches the dashboard review list page size
const DefaultPerPage = 8

func (f ReviewFilter) Limit() int {
	if f.PerPage < 1 {
		return DefaultPerPage
	}
	return f.PerPage
}

func (f ReviewFilter) CurrentPage() int {
	if f.Page < 1 {
		return 1
	}
	return f.Page
}

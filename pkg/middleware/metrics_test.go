package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsLabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics())
	r.Delete("/api/admin/reviews/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	series := requestsTotal.WithLabelValues(http.MethodDelete, "/api/admin/reviews/{id}", "200")
	before := testutil.ToFloat64(series)

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodDelete, "/api/admin/reviews/"+uuid.NewString(), nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	if got := testutil.ToFloat64(series) - before; got != 5 {
		t.Errorf("route pattern series grew by %v, want 5", got)
	}
}

// Requests that match no route all land on one fixed label, so probing
// arbitrary paths cannot add series.
func TestMetricsUnmatchedPathsShareOneSeries(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics())
	// A chi mux with zero routes never builds its middleware chain, so at
	// least one route must exist for Metrics to run on 404s.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	series := requestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")
	before := testutil.ToFloat64(series)
	seriesBefore := testutil.CollectAndCount(requestsTotal)

	for i := 0; i < 50; i++ {
		req := httptest.NewRequest(http.MethodGet, "/junk/"+uuid.NewString(), nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	if got := testutil.ToFloat64(series) - before; got != 50 {
		t.Errorf("unmatched series grew by %v, want 50", got)
	}
	if got := testutil.CollectAndCount(requestsTotal); got != seriesBefore {
		t.Errorf("series count = %d after 50 distinct paths, want %d", got, seriesBefore)
	}
}

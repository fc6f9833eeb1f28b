package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bite-reviews/internal/data/entity"
	"bite-reviews/internal/dto/request"
	"bite-reviews/internal/dto/response"
	"bite-reviews/internal/usecase"
	"bite-reviews/pkg/utils"

	"go.uber.org/zap"
)

type stubReviewService struct {
	submitResp *response.ReviewResponse
	submitErr  error
	deleteErr  error
}

func (s *stubReviewService) SubmitReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if s.submitErr != nil {
		return nil, s.submitErr
	}
	return s.submitResp, nil
}

func (s *stubReviewService) ListReviews(ctx context.Context, filter request.ReviewFilter) (*response.PaginatedResponse[response.ReviewResponse], error) {
	return response.NewPaginatedResponse([]response.ReviewResponse{}, filter.CurrentPage(), filter.Limit(), 0), nil
}

func (s *stubReviewService) GetAnalytics(ctx context.Context) (*response.AnalyticsResponse, error) {
	return &response.AnalyticsResponse{RatingCounts: map[int]int{}}, nil
}

func (s *stubReviewService) DeleteReview(ctx context.Context, reviewID string) error {
	return s.deleteErr
}

func (s *stubReviewService) AllReviews(ctx context.Context) ([]*entity.Review, error) {
	return nil, nil
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var resp utils.Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestCreateReviewValidationResponse(t *testing.T) {
	handler := NewReviewHandler(&stubReviewService{
		submitErr: &usecase.ValidationError{Fields: map[string]string{
			"restaurant_name": "Restaurant name is required",
		}},
	}, zap.NewNop())

	body := `{"restaurant_name":"","review_text":"Great food and service!","rating":5}`
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.CreateReview(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	resp := decodeEnvelope(t, rec)
	if resp.Status {
		t.Error("status flag should be false")
	}
	fields, ok := resp.Errors.(map[string]any)
	if !ok {
		t.Fatalf("errors = %T, want field map", resp.Errors)
	}
	if fields["restaurant_name"] != "Restaurant name is required" {
		t.Errorf("restaurant_name message = %v", fields["restaurant_name"])
	}
}

func TestCreateReviewSuccess(t *testing.T) {
	handler := NewReviewHandler(&stubReviewService{
		submitResp: &response.ReviewResponse{
			ID:             "1b671a64-40d5-491e-99b0-da01ff1f3341",
			RestaurantName: "Joe's Diner",
			ReviewText:     "Great food and service!",
			Rating:         5,
		},
	}, zap.NewNop())

	body := `{"restaurant_name":"Joe's Diner","review_text":"Great food and service!","rating":5}`
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.CreateReview(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if !resp.Status {
		t.Error("status flag should be true")
	}
}

func TestCreateReviewMalformedBody(t *testing.T) {
	handler := NewReviewHandler(&stubReviewService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	handler.CreateReview(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCreateReviewStoreFailure(t *testing.T) {
	handler := NewReviewHandler(&stubReviewService{
		submitErr: errors.New("store review: connection refused"),
	}, zap.NewNop())

	body := `{"restaurant_name":"Joe's Diner","review_text":"Great food and service!","rating":5}`
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.CreateReview(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if strings.Contains(resp.Message, "connection refused") {
		t.Error("store error details must not leak to the client")
	}
}

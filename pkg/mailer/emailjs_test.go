package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bite-reviews/pkg/utils"

	"go.uber.org/zap"
)

func testConfig(baseURL string) utils.EmailConfig {
	return utils.EmailConfig{
		BaseURL:    baseURL,
		ServiceID:  "svc_123",
		TemplateID: "tpl_456",
		PublicKey:  "pub_789",
		ToEmail:    "owner@example.com",
	}
}

func TestStarString(t *testing.T) {
	tests := []struct {
		rating int
		want   string
	}{
		{0, "☆☆☆☆☆"},
		{1, "⭐☆☆☆☆"},
		{3, "⭐⭐⭐☆☆"},
		{5, "⭐⭐⭐⭐⭐"},
		{-2, "☆☆☆☆☆"},
		{9, "⭐⭐⭐⭐⭐"},
	}

	for _, tt := range tests {
		if got := StarString(tt.rating); got != tt.want {
			t.Errorf("StarString(%d) = %q, want %q", tt.rating, got, tt.want)
		}
	}
}

func TestSendBuildsProviderPayload(t *testing.T) {
	var got sendRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/api/v1.0/email/send" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := NewEmailJSNotifier(testConfig(server.URL), zap.NewNop())

	yes := "yes"
	createdAt := time.Date(2026, 8, 30, 18, 45, 0, 0, time.UTC)
	err := notifier.Send(context.Background(), ReviewEmail{
		RestaurantName: "Joe's Diner",
		ReviewText:     "Great food and service!",
		Rating:         5,
		PollAnswer:     &yes,
		CreatedAt:      createdAt,
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	if got.ServiceID != "svc_123" || got.TemplateID != "tpl_456" || got.UserID != "pub_789" {
		t.Errorf("provider identifiers = %+v", got)
	}

	params := got.TemplateParams
	if params["to_email"] != "owner@example.com" {
		t.Errorf("to_email = %v", params["to_email"])
	}
	if params["restaurant_name"] != "Joe's Diner" {
		t.Errorf("restaurant_name = %v", params["restaurant_name"])
	}
	if params["stars"] != "⭐⭐⭐⭐⭐" {
		t.Errorf("stars = %v", params["stars"])
	}
	if params["poll_answer"] != "yes" {
		t.Errorf("poll_answer = %v", params["poll_answer"])
	}
	if params["created_at"] != "2026-08-30T18:45:00Z" {
		t.Errorf("created_at = %v", params["created_at"])
	}
	if params["message"] != "New review received for Joe's Diner with 5 stars: Great food and service!" {
		t.Errorf("message = %v", params["message"])
	}
}

func TestSendNilPollAnswer(t *testing.T) {
	var got sendRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := NewEmailJSNotifier(testConfig(server.URL), zap.NewNop())

	err := notifier.Send(context.Background(), ReviewEmail{
		RestaurantName: "Joe's Diner",
		ReviewText:     "Great food and service!",
		Rating:         4,
		CreatedAt:      time.Now(),
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	if got.TemplateParams["poll_answer"] != nil {
		t.Errorf("poll_answer = %v, want null", got.TemplateParams["poll_answer"])
	}
}

func TestSendProviderFailureReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad template", http.StatusBadRequest)
	}))
	defer server.Close()

	notifier := NewEmailJSNotifier(testConfig(server.URL), zap.NewNop())

	err := notifier.Send(context.Background(), ReviewEmail{
		RestaurantName: "Joe's Diner",
		ReviewText:     "Great food and service!",
		Rating:         2,
		CreatedAt:      time.Now(),
	})
	if err == nil {
		t.Fatal("expected error from provider failure")
	}
}

func TestSendUnreachableProvider(t *testing.T) {
	notifier := NewEmailJSNotifier(testConfig("http://127.0.0.1:1"), zap.NewNop())

	err := notifier.Send(context.Background(), ReviewEmail{
		RestaurantName: "Joe's Diner",
		ReviewText:     "Great food and service!",
		Rating:         3,
		CreatedAt:      time.Now(),
	})
	if err == nil {
		t.Fatal("expected error when provider is unreachable")
	}
}

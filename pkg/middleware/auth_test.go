package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"bite-reviews/internal/usecase"
	"bite-reviews/pkg/utils"

	"go.uber.org/zap"
)

func TestAdminAuth(t *testing.T) {
	auth := usecase.NewAuthService(utils.AdminConfig{Password: "open-sesame"}, zap.NewNop())
	token, err := auth.Login(context.Background(), "open-sesame")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	guarded := AdminAuth(auth, zap.NewNop())(next)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", "Token abc", http.StatusUnauthorized},
		{"unknown token", "Bearer not-a-session", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/reviews", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			guarded.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}

	// logout revokes the session for subsequent requests
	auth.Logout(context.Background(), token)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/reviews", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status after logout = %d, want 401", rec.Code)
	}
}

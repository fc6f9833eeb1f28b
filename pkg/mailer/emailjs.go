package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"bite-reviews/pkg/utils"

	"go.uber.org/zap"
)

// ReviewEmail carries the values the notification template renders.
type ReviewEmail struct {
	RestaurantName string
	ReviewText     string
	Rating         int
	PollAnswer     *string
	CreatedAt      time.Time
}

// Notifier sends the review notification. Errors are returned as values;
// callers decide whether the send outcome matters (submission does not).
type Notifier interface {
	Send(ctx context.Context, email ReviewEmail) error
}

type emailJSNotifier struct {
	config utils.EmailConfig
	client *http.Client
	log    *zap.Logger
}

func NewEmailJSNotifier(config utils.EmailConfig, log *zap.Logger) Notifier {
	return &emailJSNotifier{
		config: config,
		client: &http.Client{Timeout: 10 * time.Second},
		log:    log.With(zap.String("notifier", "emailjs")),
	}
}

type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams map[string]any `json:"template_params"`
}

func (n *emailJSNotifier) Send(ctx context.Context, email ReviewEmail) error {
	body, err := json.Marshal(sendRequest{
		ServiceID:      n.config.ServiceID,
		TemplateID:     n.config.TemplateID,
		UserID:         n.config.PublicKey,
		TemplateParams: n.templateParams(email),
	})
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	url := n.config.BaseURL + "/api/v1.0/email/send"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send review email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("email provider returned %d: %s", resp.StatusCode, string(detail))
	}

	n.log.Info("Review notification sent",
		zap.String("restaurant_name", email.RestaurantName),
		zap.Int("rating", email.Rating),
	)

	return nil
}

// templateParams builds the fixed parameter set the email template expects
func (n *emailJSNotifier) templateParams(email ReviewEmail) map[string]any {
	var pollAnswer any
	if email.PollAnswer != nil {
		pollAnswer = *email.PollAnswer
	}

	return map[string]any{
		"to_email":        n.config.ToEmail,
		"restaurant_name": email.RestaurantName,
		"review_text":     email.ReviewText,
		"rating":          email.Rating,
		"poll_answer":     pollAnswer,
		"created_at":      email.CreatedAt.Format(time.RFC3339),
		"message": fmt.Sprintf("New review received for %s with %d stars: %s",
			email.RestaurantName, email.Rating, email.ReviewText),
		// HTML template variables
		"name":  email.RestaurantName,
		"time":  email.CreatedAt.Format("1/2/2006, 3:04:05 PM"),
		"stars": StarString(email.Rating),
	}
}

// StarString renders a rating as filled and empty star glyphs, e.g. 3 ->
// "⭐⭐⭐☆☆". Ratings outside 1..5 are clamped.
func StarString(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("⭐", rating) + strings.Repeat("☆", 5-rating)
}

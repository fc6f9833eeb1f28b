package request

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type CreateReviewRequest struct {
	RestaurantName string  `json:"restaurant_name" validate:"required,min=2,max=100"`
	ReviewText     string  `json:"review_text" validate:"required,min=10,max=500"`
	Rating         int     `json:"rating" validate:"required,min=1,max=5"`
	PollAnswer     *string `json:"poll_answer,omitempty" validate:"omitempty,oneof=yes no"`
}

// Normalize trims whitespace so length rules apply to the trimmed values,
// which are also what gets persisted.
func (r *CreateReviewRequest) Normalize() {
	r.RestaurantName = strings.TrimSpace(r.RestaurantName)
	r.ReviewText = strings.TrimSpace(r.ReviewText)
}

// Validate checks every field independently and returns field -> message.
// An empty map means the request is valid. The rating zero value doubles as
// the "unset" sentinel, so required catches it.
func (r *CreateReviewRequest) Validate() map[string]string {
	err := validate.Struct(r)
	if err == nil {
		return map[string]string{}
	}

	errors := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldErr := range validationErrors {
			field, msg := reviewFieldMessage(fieldErr)
			errors[field] = msg
		}
	}

	return errors
}

// reviewFieldMessage maps a failed rule to the message the form shows inline
func reviewFieldMessage(err validator.FieldError) (string, string) {
	switch err.StructField() {
	case "RestaurantName":
		switch err.Tag() {
		case "required":
			return "restaurant_name", "Restaurant name is required"
		case "min":
			return "restaurant_name", "Restaurant name must be at least 2 characters"
		default:
			return "restaurant_name", "Restaurant name must be 100 characters or less"
		}
	case "ReviewText":
		switch err.Tag() {
		case "required":
			return "review_text", "Review text is required"
		case "min":
			return "review_text", "Review must be at least 10 characters"
		default:
			return "review_text", "Review must be 500 characters or less"
		}
	case "Rating":
		return "rating", "Please select a rating"
	case "PollAnswer":
		return "poll_answer", "Poll answer must be yes or no"
	default:
		return err.Field(), "Invalid value"
	}
}

package usecase

import (
	"errors"

	"bite-reviews/pkg/utils"
)

var (
	// ErrInvalidPassword is the admin gate mismatch. Not an exception
	// path: no lockout, no backoff, the caller just shows the message.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrInvalidID means the supplied review id is not a valid UUID
	ErrInvalidID = errors.New("invalid review id")
)

// ValidationError carries the per-field messages from a rejected
// submission. It never reaches the store: validation runs first.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

// AsValidationError unwraps err into a *ValidationError when it is one
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

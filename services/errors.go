// services/errors.go
package services

import (
	"errors"
	"fmt"
)

var (
	ErrServiceNotFound    = errors.New("service not found")
	ErrServiceUnavailable = errors.New("service is not available for booking")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrSlotTaken          = errors.New("time slot is already booked")
	ErrInvalidStatus      = errors.New("invalid booking status")
	ErrInvalidTransition  = errors.New("invalid status transition")
)

// ValidationError reports a malformed input field with a reason the caller
// can act on.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err is a field validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

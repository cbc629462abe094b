// Package errors defines the structured application error type and the
// taxonomy used by the intake pipeline: validation failures carry a
// caller-visible reason, infrastructure failures collapse to a generic
// server error.
package errors

import (
	"fmt"
	"net/http"

	"github.com/webfolio/contact-backend/logger"
)

type ErrorType string

const (
	ValidationError ErrorType = "VALIDATION_ERROR"
	DatabaseError   ErrorType = "DATABASE_ERROR"
	DeliveryError   ErrorType = "DELIVERY_ERROR"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Raw        error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *AppError) Unwrap() error {
	return e.Raw
}

// GetHTTPStatus returns the HTTP status code this error maps to.
func (e *AppError) GetHTTPStatus() int {
	if e.HTTPStatus == 0 {
		return getHTTPStatus(e.Type)
	}
	return e.HTTPStatus
}

// ValidationFailed builds a client-caused validation error. The detail is the
// exact reason string surfaced to the caller in the 400 response body.
func ValidationFailed(reason string) *AppError {
	return &AppError{
		Type:       ValidationError,
		Message:    "validation failed",
		Detail:     reason,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewDatabaseError wraps a store failure. The original error is logged but the
// message returned to callers is sanitized.
func NewDatabaseError(err error) *AppError {
	logger.GetLogger().Errorw("Database error", "error", err)
	return &AppError{
		Type:       DatabaseError,
		Message:    "Database operation failed",
		HTTPStatus: http.StatusInternalServerError,
		Raw:        err,
	}
}

// NewDeliveryError wraps an email transport failure. Like database errors it
// is never exposed to callers in detail.
func NewDeliveryError(err error) *AppError {
	logger.GetLogger().Errorw("Email delivery error", "error", err)
	return &AppError{
		Type:       DeliveryError,
		Message:    "Email delivery failed",
		HTTPStatus: http.StatusInternalServerError,
		Raw:        err,
	}
}

func getHTTPStatus(errType ErrorType) int {
	switch errType {
	case ValidationError:
		return http.StatusBadRequest
	case DatabaseError, DeliveryError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

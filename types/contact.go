package types

import (
	"regexp"
	"time"
	"unicode/utf8"

	apperrors "github.com/webfolio/contact-backend/errors"
)

// Caller-visible rejection reasons. These are part of the public API
// contract and must not be reworded.
const (
	ReasonFieldsRequired = "All fields are required"
	ReasonInvalidEmail   = "Invalid email format"
	ReasonMessageTooLong = "Message must be less than 1000 characters"
)

// MaxMessageLength is the maximum accepted message size in characters.
const MaxMessageLength = 1000

// emailPattern is a deliberately loose syntactic check: local part, '@',
// domain with at least one dot, no whitespace anywhere. Stricter RFC
// validation would reject addresses this service has always accepted.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactSubmission is the client-provided contact-form payload before
// validation.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Validate checks the submission shape and content, short-circuiting on the
// first failure. It is pure: no side effects, and safe on zero values --
// a missing field is a validation failure, not an error.
func (s ContactSubmission) Validate() *apperrors.AppError {
	if s.Name == "" || s.Email == "" || s.Subject == "" || s.Message == "" {
		return apperrors.ValidationFailed(ReasonFieldsRequired)
	}
	if !emailPattern.MatchString(s.Email) {
		return apperrors.ValidationFailed(ReasonInvalidEmail)
	}
	if utf8.RuneCountInString(s.Message) > MaxMessageLength {
		return apperrors.ValidationFailed(ReasonMessageTooLong)
	}
	return nil
}

// Message is the durably stored, server-timestamped form of an accepted
// submission. ID is assigned by the store on insert; Date is assigned by the
// pipeline at record construction, never client-supplied.
type Message struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
	Email   string    `json:"email"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}

// NewMessage builds the persisted record for a validated submission with a
// server-assigned timestamp.
func NewMessage(s ContactSubmission, now time.Time) *Message {
	return &Message{
		Name:    s.Name,
		Subject: s.Subject,
		Email:   s.Email,
		Message: s.Message,
		Date:    now.UTC(),
	}
}

package types

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() ContactSubmission {
	return ContactSubmission{
		Name:    "Ann",
		Email:   "ann@example.com",
		Subject: "Hi",
		Message: "Hello",
	}
}

func TestContactSubmissionValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*ContactSubmission)
		wantReason string
	}{
		{
			name:   "valid submission",
			mutate: func(s *ContactSubmission) {},
		},
		{
			name:       "missing name",
			mutate:     func(s *ContactSubmission) { s.Name = "" },
			wantReason: ReasonFieldsRequired,
		},
		{
			name:       "missing email",
			mutate:     func(s *ContactSubmission) { s.Email = "" },
			wantReason: ReasonFieldsRequired,
		},
		{
			name:       "missing subject",
			mutate:     func(s *ContactSubmission) { s.Subject = "" },
			wantReason: ReasonFieldsRequired,
		},
		{
			name:       "missing message",
			mutate:     func(s *ContactSubmission) { s.Message = "" },
			wantReason: ReasonFieldsRequired,
		},
		{
			name:       "email without at sign",
			mutate:     func(s *ContactSubmission) { s.Email = "not-an-email" },
			wantReason: ReasonInvalidEmail,
		},
		{
			name:       "email without dot in domain",
			mutate:     func(s *ContactSubmission) { s.Email = "ann@example" },
			wantReason: ReasonInvalidEmail,
		},
		{
			name:       "email with whitespace",
			mutate:     func(s *ContactSubmission) { s.Email = "ann smith@example.com" },
			wantReason: ReasonInvalidEmail,
		},
		{
			name:   "unusual but accepted email",
			mutate: func(s *ContactSubmission) { s.Email = "a!!@b#.c" },
			// The pattern is deliberately loose; only whitespace, a missing
			// '@' or a dotless domain are rejected.
		},
		{
			name:       "message over the limit",
			mutate:     func(s *ContactSubmission) { s.Message = strings.Repeat("x", MaxMessageLength+1) },
			wantReason: ReasonMessageTooLong,
		},
		{
			name:   "message exactly at the limit",
			mutate: func(s *ContactSubmission) { s.Message = strings.Repeat("x", MaxMessageLength) },
		},
		{
			name: "multibyte message counted in characters not bytes",
			// 1000 three-byte runes: 3000 bytes but exactly 1000 characters.
			mutate: func(s *ContactSubmission) { s.Message = strings.Repeat("日", MaxMessageLength) },
		},
		{
			name: "empty fields win over email format",
			mutate: func(s *ContactSubmission) {
				s.Name = ""
				s.Email = "not-an-email"
			},
			wantReason: ReasonFieldsRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubmission()
			tt.mutate(&sub)

			err := sub.Validate()
			if tt.wantReason == "" {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, tt.wantReason, err.Detail)
			assert.Equal(t, 400, err.GetHTTPStatus())
		})
	}
}

func TestValidateZeroValue(t *testing.T) {
	var sub ContactSubmission
	err := sub.Validate()
	require.NotNil(t, err)
	assert.Equal(t, ReasonFieldsRequired, err.Detail)
}

func TestNewMessage(t *testing.T) {
	sub := validSubmission()
	now := time.Date(2026, 3, 1, 12, 30, 0, 0, time.FixedZone("CET", 3600))

	msg := NewMessage(sub, now)

	assert.Empty(t, msg.ID, "ID is assigned by the store, not at construction")
	assert.Equal(t, sub.Name, msg.Name)
	assert.Equal(t, sub.Subject, msg.Subject)
	assert.Equal(t, sub.Email, msg.Email)
	assert.Equal(t, sub.Message, msg.Message)
	assert.Equal(t, now.UTC(), msg.Date)
	assert.Equal(t, time.UTC, msg.Date.Location())
}

func TestNewNotification(t *testing.T) {
	sub := validSubmission()

	n := NewNotification(sub, "noreply@webfolio.dev", "inbox@webfolio.dev")

	assert.Equal(t, "noreply@webfolio.dev", n.From)
	assert.Equal(t, "inbox@webfolio.dev", n.To)
	assert.Equal(t, "New : Hi", n.Subject)
	assert.Equal(t, "Subject: Hi\nName: Ann\nEmail: ann@example.com\nMessage: Hello", n.Text)
}

package types

import "fmt"

// Notification is the transient email composed from a validated submission.
// It exists only for the duration of one send attempt and is never persisted.
type Notification struct {
	From    string
	To      string
	Subject string
	Text    string
}

// NewNotification derives the outbound email from a validated submission.
// The sender and recipient addresses are fixed by configuration.
func NewNotification(s ContactSubmission, from, to string) Notification {
	return Notification{
		From:    from,
		To:      to,
		Subject: "New : " + s.Subject,
		Text: fmt.Sprintf("Subject: %s\nName: %s\nEmail: %s\nMessage: %s",
			s.Subject, s.Name, s.Email, s.Message),
	}
}

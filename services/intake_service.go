package services

import (
	"context"
	"time"

	apperrors "github.com/webfolio/contact-backend/errors"
	"github.com/webfolio/contact-backend/logger"
	"github.com/webfolio/contact-backend/store"
	"github.com/webfolio/contact-backend/types"
)

// Outcome is the three-way result of one intake run.
type Outcome int

const (
	// OutcomeAccepted means the record was durably stored and a notification
	// send was attempted.
	OutcomeAccepted Outcome = iota
	// OutcomeRejected means validation failed; no side effects occurred.
	OutcomeRejected
	// OutcomeFailed means the store write failed; no record exists and no
	// send was attempted.
	OutcomeFailed
)

// IntakeResult carries the outcome of one pipeline run. Reason is set only
// for OutcomeRejected; MessageID only for OutcomeAccepted. Err holds the
// structured error for the step that failed, if any: a validation error on
// rejection, a database error on failure, a delivery error when the record
// was stored but the notification could not be sent.
type IntakeResult struct {
	Outcome   Outcome
	Reason    string
	MessageID string
	Err       *apperrors.AppError
}

// IntakeService orchestrates one submission through
// validate -> store -> notify. Each step returns an explicit result, so the
// accepted/failed branch point is a decision here rather than an artifact of
// a shared error path.
//
// The Accepted outcome is tied to the durable write, not to delivery: a
// notifier failure after a successful insert is logged and counted but the
// caller still sees success. The only delivery guarantee this system makes
// is that a send is attempted after the record is stored, and failing the
// request at that point would invite resubmission of an already-stored
// message.
type IntakeService struct {
	messageStore store.MessageStore
	sender       NotificationSender
	fromAddress  string
	toAddress    string
	now          func() time.Time
}

// NewIntakeService wires the pipeline to its collaborators. The sender and
// recipient addresses are fixed at construction from configuration.
func NewIntakeService(messageStore store.MessageStore, sender NotificationSender, fromAddress, toAddress string) *IntakeService {
	return &IntakeService{
		messageStore: messageStore,
		sender:       sender,
		fromAddress:  fromAddress,
		toAddress:    toAddress,
		now:          time.Now,
	}
}

// Submit runs one submission through the pipeline. Stateless per call:
// concurrent runs share only the store and the mail transport.
func (s *IntakeService) Submit(ctx context.Context, sub types.ContactSubmission) IntakeResult {
	if err := sub.Validate(); err != nil {
		return IntakeResult{Outcome: OutcomeRejected, Reason: err.Detail, Err: err}
	}

	msg := types.NewMessage(sub, s.now())
	id, err := s.messageStore.Insert(ctx, msg)
	if err != nil {
		return IntakeResult{Outcome: OutcomeFailed, Err: apperrors.NewDatabaseError(err)}
	}

	// The record is durable from here on. The send is attempted exactly once;
	// its failure does not change the outcome.
	notification := types.NewNotification(sub, s.fromAddress, s.toAddress)
	if err := s.sender.SendContactNotification(ctx, notification); err != nil {
		deliveryErr := apperrors.NewDeliveryError(err)
		logger.GetLogger().Warnw("Contact message stored but notification failed",
			"message_id", id)
		return IntakeResult{Outcome: OutcomeAccepted, MessageID: id, Err: deliveryErr}
	}

	return IntakeResult{Outcome: OutcomeAccepted, MessageID: id}
}

// Package postgres implements the store contracts on PostgreSQL via pgx.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/webfolio/contact-backend/store"
	"github.com/webfolio/contact-backend/types"
)

// DB is the subset of pgxpool.Pool the message store uses. pgxmock satisfies
// it in tests.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Ensure MessageStore implements store.MessageStore
var _ store.MessageStore = (*MessageStore)(nil)

// MessageStore persists contact messages in the append-only messages table.
type MessageStore struct {
	db DB
}

// NewMessageStore creates a message store backed by the given pool.
func NewMessageStore(db DB) *MessageStore {
	return &MessageStore{db: db}
}

// Insert writes one message row and returns the generated ID. The write is
// atomic: on error no row exists.
func (s *MessageStore) Insert(ctx context.Context, msg *types.Message) (string, error) {
	var id string
	err := s.db.QueryRow(ctx,
		`INSERT INTO messages (name, subject, email, message, date) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		msg.Name, msg.Subject, msg.Email, msg.Message, msg.Date,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to insert message: %w", err)
	}
	msg.ID = id
	return id, nil
}

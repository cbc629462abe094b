package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webfolio/contact-backend/types"
)

func testMessage() *types.Message {
	return &types.Message{
		Name:    "Ann",
		Subject: "Hi",
		Email:   "ann@example.com",
		Message: "Hello",
		Date:    time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC),
	}
}

func TestMessageStoreInsert(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	msg := testMessage()

	mockPool.ExpectQuery(`INSERT INTO messages`).
		WithArgs(msg.Name, msg.Subject, msg.Email, msg.Message, msg.Date).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).
			AddRow("3f0e8a8e-7a2e-4b8f-9f0a-000000000001"))

	store := NewMessageStore(mockPool)
	id, err := store.Insert(context.Background(), msg)

	require.NoError(t, err)
	assert.Equal(t, "3f0e8a8e-7a2e-4b8f-9f0a-000000000001", id)
	assert.Equal(t, id, msg.ID, "store-assigned ID is copied back onto the record")
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestMessageStoreInsertFailure(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	msg := testMessage()

	mockPool.ExpectQuery(`INSERT INTO messages`).
		WithArgs(msg.Name, msg.Subject, msg.Email, msg.Message, msg.Date).
		WillReturnError(errors.New("connection refused"))

	store := NewMessageStore(mockPool)
	id, err := store.Insert(context.Background(), msg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert message")
	assert.Empty(t, id)
	assert.Empty(t, msg.ID)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

// Package store defines the persistence contracts consumed by the intake
// pipeline. Implementations live in subpackages.
package store

import (
	"context"

	"github.com/webfolio/contact-backend/types"
)

// MessageStore is the durable, append-only record keeper for accepted
// submissions. Insert is a single atomic write: either the record exists
// afterwards with a store-assigned ID, or the call fails and no record
// exists. Implementations must be safe for concurrent use.
type MessageStore interface {
	// Insert persists the record and returns the store-generated ID.
	Insert(ctx context.Context, msg *types.Message) (string, error)
}

package store

import (
	"context"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// TokenSlotKey is the well-known slot holding the session access token.
const TokenSlotKey = "token"

// SessionSlotRepository is the durable key/value slot the client keeps its
// session token in across restarts.
type SessionSlotRepository interface {
	// Get returns the value stored under key or [ErrSlotNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Set creates or overwrites the value stored under key.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

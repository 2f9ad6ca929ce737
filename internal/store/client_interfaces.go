package store

import (
	"context"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/session_store_mock.go -package=mock

// ActiveUserIDKey is the session key under which the logged-in user id is kept.
const ActiveUserIDKey = "userId"

// SessionStore is a small durable key-value store for client session state.
//
// Get reports ok=false for a missing key. Set overwrites any previous value.
// Removing a missing key is not an error. Implementations are safe for
// concurrent use.
type SessionStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}

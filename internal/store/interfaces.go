package store

import "context"

// Keys of the values kept in durable client-side storage.
const (
	// TokenKey holds the session bearer token.
	TokenKey = "token"
	// UserKey holds the JSON-encoded profile of the logged-in administrator.
	UserKey = "user"
	// RoleKey holds the role of the logged-in administrator.
	RoleKey = "role"
)

// KeyValueStore is a small durable string store used to keep session state
// between runs of the console.
//
//go:generate mockgen -source=interfaces.go -destination=../mock/store.go -package=mock
type KeyValueStore interface {
	// Get returns the value stored under key, or [ErrKeyNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

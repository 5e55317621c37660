package domain

import (
	"context"
	"time"
)

// StoreError represents an error originating from the key-value store.
type StoreError string

func (e StoreError) Error() string {
	return string(e)
}

// ErrKeyNotFound is returned when a key is not present in the store.
const ErrKeyNotFound = StoreError("store: key not found")

// Store defines the interface (port) for the persisted key-value collaborator
// holding the profile record and the per-topic theory cache. Implementations
// are adapters (e.g. RedisStoreAdapter).
type Store interface {
	// Get retrieves a value. It returns ErrKeyNotFound if the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set writes a value, overwriting any existing one. An expiration of 0
	// keeps the value indefinitely.
	Set(ctx context.Context, key string, value string, expiration time.Duration) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Ping checks the health of the backing store.
	Ping(ctx context.Context) error
}

// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"time"
)

// Store defines the key-value operations the cache manager relies on.
// Implementations can be Redis, SQLite, in-memory, or any other backend.
//
// Example usage:
//
//	// Store a value
//	err := store.Set(ctx, "news:list", payload, time.Hour)
//
//	// Retrieve a value
//	data, err := store.Get(ctx, "news:list")
//	if errors.IsCacheMiss(err) {
//		// recompute
//	}
//
//	// List and drop every detail entry
//	keys, err := store.Keys(ctx, "news:detail:")
type Store interface {
	// Get retrieves a value by key.
	// Returns errors.ErrCacheMiss when the key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error

	// Keys lists the live keys that start with prefix.
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// Package storage defines the durable key-value contract the task store
// persists through. Backends live in subpackages.
package storage

import "context"

// Storage is an asynchronous-style get/set/remove-by-key service.
// Implementations must be safe for use from multiple goroutines.
type Storage interface {
	// Get returns the value stored at key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set overwrites the value stored at key.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// Close releases the backend.
	Close() error
}

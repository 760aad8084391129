package store

import "context"

// Store defines the operations preference store backends must implement to
// store and retrieve data. Keys and values are plain strings; namespacing
// and value encoding are layered on top by consumers.
type Store interface {
	Close() error

	// Get returns the value stored under key. ok is false if the key
	// doesn't exist.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores the value under key, overwriting any existing value.
	Set(ctx context.Context, key, value string) error

	// ContainsKey reports whether key exists, without reading its value.
	ContainsKey(ctx context.Context, key string) (bool, error)

	// Remove deletes the key. Removing a key that doesn't exist is not an
	// error.
	Remove(ctx context.Context, key string) error

	// Keys returns all keys that start with prefix, in backend-defined
	// order. An empty prefix matches all keys.
	Keys(ctx context.Context, prefix string) ([]string, error)

	// Clear deletes all keys, across all namespaces.
	Clear(ctx context.Context) error
}

package kv

import (
	"context"
	"fmt"
	"io"

	"go.hackfix.me/prefs/store"
)

// The functions below are a minimal alternative to Namespace for callers
// that only save and load individual values. They use the same key
// prefixing and JSON encoding, but no per-namespace enumeration: ListKeys
// reports every physical key in the store, and ClearAll wipes the store
// across all namespaces.

// Save encodes value to JSON and stores it in s under the key
// '<namespace><Separator><name>'.
func Save(ctx context.Context, s store.Store, namespace, name string, value any) error {
	payload, err := encode(value)
	if err != nil {
		return fmt.Errorf("failed encoding value for key '%s': %w", name, err)
	}

	return s.Set(ctx, namespace+Separator+name, payload)
}

// Load retrieves and decodes the value stored in s under the key
// '<namespace><Separator><name>'.
func Load(ctx context.Context, s store.Store, namespace, name string) (any, error) {
	payload, ok, err := s.Get(ctx, namespace+Separator+name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrKeyNotFound{Namespace: namespace, Key: name}
	}

	value, err := decode(payload)
	if err != nil {
		return nil, ErrBadPayload{Key: name, Cause: err}
	}

	return value, nil
}

// ClearAll removes every key in the store, regardless of namespace.
func ClearAll(ctx context.Context, s store.Store) error {
	return s.Clear(ctx)
}

// ListKeys writes all physical keys in the store to w, one per line.
func ListKeys(ctx context.Context, s store.Store, w io.Writer) error {
	keys, err := s.Keys(ctx, "")
	if err != nil {
		return err
	}

	for _, key := range keys {
		fmt.Fprintf(w, "%s\n", key)
	}

	return nil
}

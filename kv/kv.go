// Package kv provides namespaced, JSON-encoded access to a raw preference
// store. Every key is prefixed with an application namespace, which
// prevents collisions between applications sharing one store, and values
// are transparently serialized to JSON and back, including set-like
// collections (see Set).
package kv

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"go.hackfix.me/prefs/store"
)

// Separator joins the namespace and the logical key into the physical key
// used against the backend store.
const Separator = "."

// Namespace provides access to the keys of a single application namespace
// in a raw preference store. The physical key of every operation is the
// logical key prefixed with '<namespace><Separator>'. A Namespace holds no
// mutable state, so it is safe for concurrent use, subject to the
// backend's own guarantees.
type Namespace struct {
	name  string
	store store.Store
}

// NewNamespace returns a Namespace with the given name, backed by s. The
// name must be non-empty and must not contain the separator character,
// since that would allow physical keys to collide across namespaces.
// Logical keys are not validated.
func NewNamespace(name string, s store.Store) (*Namespace, error) {
	if name == "" {
		return nil, errors.New("namespace name must not be empty")
	}
	if strings.Contains(name, Separator) {
		return nil, fmt.Errorf("namespace name must not contain '%s'", Separator)
	}

	return &Namespace{name: name, store: s}, nil
}

// Name returns the namespace name.
func (ns *Namespace) Name() string {
	return ns.name
}

// Set encodes value to JSON and stores it under key, overwriting any
// existing value.
func (ns *Namespace) Set(ctx context.Context, key string, value any) error {
	payload, err := encode(value)
	if err != nil {
		return fmt.Errorf("failed encoding value for key '%s': %w", key, err)
	}

	return ns.store.Set(ctx, ns.physicalKey(key), payload)
}

// Get retrieves and decodes the value stored under key. It returns
// ErrKeyNotFound if the key doesn't exist in the namespace, and
// ErrBadPayload if the stored payload is not valid JSON.
func (ns *Namespace) Get(ctx context.Context, key string) (any, error) {
	payload, ok, err := ns.store.Get(ctx, ns.physicalKey(key))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrKeyNotFound{Namespace: ns.name, Key: key}
	}

	value, err := decode(payload)
	if err != nil {
		return nil, ErrBadPayload{Key: key, Cause: err}
	}

	return value, nil
}

// GetOrDefault retrieves the value stored under key, returning def if the
// key doesn't exist. Decoding failures are still returned as errors.
func (ns *Namespace) GetOrDefault(ctx context.Context, key string, def any) (any, error) {
	value, err := ns.Get(ctx, key)
	if err != nil {
		var notFound ErrKeyNotFound
		if errors.As(err, &notFound) {
			return def, nil
		}
		return nil, err
	}

	return value, nil
}

// ContainsKey reports whether key exists in the namespace. The stored
// payload is not read or decoded.
func (ns *Namespace) ContainsKey(ctx context.Context, key string) (bool, error) {
	return ns.store.ContainsKey(ctx, ns.physicalKey(key))
}

// Remove deletes key from the namespace. Removing a key that doesn't
// exist is not an error.
func (ns *Namespace) Remove(ctx context.Context, key string) error {
	return ns.store.Remove(ctx, ns.physicalKey(key))
}

// Keys returns all logical keys in the namespace, with the namespace
// prefix stripped, in backend-defined order.
func (ns *Namespace) Keys(ctx context.Context) ([]string, error) {
	prefix := ns.name + Separator
	physKeys, err := ns.store.Keys(ctx, prefix)
	if err != nil {
		return nil, err
	}

	keys := make([]string, len(physKeys))
	for i, pk := range physKeys {
		keys[i] = strings.TrimPrefix(pk, prefix)
	}

	return keys, nil
}

// Clear removes all keys in the namespace. Keys of other namespaces in the
// same store are untouched. Removals are issued concurrently, and a
// failure of one doesn't stop the others, so the namespace may end up
// partially cleared. The first failure is returned once all removals have
// settled.
func (ns *Namespace) Clear(ctx context.Context) error {
	keys, err := ns.Keys(ctx)
	if err != nil {
		return err
	}

	var g errgroup.Group
	for _, key := range keys {
		key := key
		g.Go(func() error {
			return ns.Remove(ctx, key)
		})
	}

	return g.Wait()
}

func (ns *Namespace) physicalKey(key string) string {
	return ns.name + Separator + key
}

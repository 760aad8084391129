package kv

import "fmt"

// ErrKeyNotFound is returned by Get and Load when the key has no stored
// value in the namespace.
type ErrKeyNotFound struct {
	Namespace string
	Key       string
}

func (e ErrKeyNotFound) Error() string {
	return fmt.Sprintf("key '%s' doesn't exist in the '%s' namespace", e.Key, e.Namespace)
}

// ErrBadPayload is returned by Get and Load when the stored payload is not
// valid JSON.
type ErrBadPayload struct {
	Key   string
	Cause error
}

func (e ErrBadPayload) Error() string {
	return fmt.Sprintf("invalid payload for key '%s': %v", e.Key, e.Cause)
}

func (e ErrBadPayload) Unwrap() error {
	return e.Cause
}

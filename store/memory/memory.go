package memory

import (
	"context"
	"strings"
	"sync"

	"go.hackfix.me/prefs/store"
)

// Memory is a thread-safe in-memory preference store. It is mainly useful
// in tests, as a stand-in for an on-disk store.
type Memory struct {
	mx   sync.RWMutex
	data map[string]string
}

var _ store.Store = &Memory{}

// New returns a new empty in-memory store.
func New() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (s *Memory) Close() error {
	return nil
}

func (s *Memory) Get(_ context.Context, key string) (string, bool, error) {
	s.mx.RLock()
	defer s.mx.RUnlock()

	value, ok := s.data[key]

	return value, ok, nil
}

func (s *Memory) Set(_ context.Context, key, value string) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	s.data[key] = value

	return nil
}

func (s *Memory) ContainsKey(_ context.Context, key string) (bool, error) {
	s.mx.RLock()
	defer s.mx.RUnlock()

	_, ok := s.data[key]

	return ok, nil
}

func (s *Memory) Remove(_ context.Context, key string) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	delete(s.data, key)

	return nil
}

func (s *Memory) Keys(_ context.Context, prefix string) ([]string, error) {
	s.mx.RLock()
	defer s.mx.RUnlock()

	keys := []string{}
	for key := range s.data {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}

	return keys, nil
}

func (s *Memory) Clear(_ context.Context) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	s.data = make(map[string]string)

	return nil
}

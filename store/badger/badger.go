package badger

import (
	"context"
	"errors"

	badger "github.com/dgraph-io/badger/v4"

	"go.hackfix.me/prefs/store"
)

// Badger is a preference store backed by an on-disk Badger database.
type Badger struct {
	db *badger.DB
}

var _ store.Store = &Badger{}

// Open creates or opens a Badger database at path. If path is empty, the
// database is kept in memory.
func Open(path string) (*Badger, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	if path == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Badger{db: db}, nil
}

func (s *Badger) Close() error {
	return s.db.Close()
}

func (s *Badger) Get(_ context.Context, key string) (string, bool, error) {
	txn := s.db.NewTransaction(false)
	defer txn.Discard()

	item, err := txn.Get([]byte(key))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return "", false, nil
		}
		return "", false, err
	}

	val, err := item.ValueCopy(nil)
	if err != nil {
		return "", false, err
	}

	return string(val), true, nil
}

func (s *Badger) Set(_ context.Context, key, value string) error {
	txn := s.db.NewTransaction(true)
	defer txn.Discard()

	err := txn.Set([]byte(key), []byte(value))
	if err != nil {
		return err
	}

	return txn.Commit()
}

func (s *Badger) ContainsKey(_ context.Context, key string) (bool, error) {
	txn := s.db.NewTransaction(false)
	defer txn.Discard()

	_, err := txn.Get([]byte(key))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (s *Badger) Remove(_ context.Context, key string) error {
	txn := s.db.NewTransaction(true)
	defer txn.Discard()

	// Badger doesn't consider deleting a missing key an error, which
	// matches the store contract.
	err := txn.Delete([]byte(key))
	if err != nil {
		return err
	}

	return txn.Commit()
}

func (s *Badger) Keys(_ context.Context, prefix string) ([]string, error) {
	txn := s.db.NewTransaction(false)
	defer txn.Discard()

	opts := badger.DefaultIteratorOptions
	// Enable key-only iteration, which is more efficient.
	opts.PrefetchValues = false

	it := txn.NewIterator(opts)
	defer it.Close()

	pfx := []byte(prefix)
	keys := []string{}
	for it.Seek(pfx); it.ValidForPrefix(pfx); it.Next() {
		keys = append(keys, string(it.Item().KeyCopy(nil)))
	}

	return keys, nil
}

func (s *Badger) Clear(_ context.Context) error {
	return s.db.DropAll()
}

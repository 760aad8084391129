package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"
	"unicode/utf8"

	// Register the pure-Go SQLite driver.
	_ "github.com/glebarez/go-sqlite"

	"go.hackfix.me/prefs/store"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store is a preference store backed by a single SQLite table. This is the
// shape most platform preference stores persist as, so it's a natural fit
// for sharing data with them.
type Store struct {
	db  *sql.DB
	ctx context.Context
}

var _ store.Store = &Store{}

// Open creates or opens a SQLite database at path, and applies any pending
// schema migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db, ctx: ctx}

	migrationsDir, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return nil, err
	}
	migrations, err := loadMigrations(migrationsDir)
	if err != nil {
		return nil, err
	}
	if err := runMigrations(ctx, db, migrations); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM prefs WHERE key = $1;`, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, err
	}

	return value, true, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO prefs (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;
		`, key, value)
	return err
}

func (s *Store) ContainsKey(ctx context.Context, key string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM prefs WHERE key = $1;`, key).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM prefs WHERE key = $1;`, key)
	return err
}

func (s *Store) Keys(ctx context.Context, prefix string) ([]string, error) {
	// substr is used instead of LIKE to avoid escaping '%' and '_' in the
	// prefix.
	rows, err := s.db.QueryContext(ctx, `
		SELECT key FROM prefs WHERE substr(key, 1, $1) = $2 ORDER BY key;`,
		utf8.RuneCountInString(prefix), prefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	keys := []string{}
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}

	return keys, rows.Err()
}

func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM prefs;`)
	return err
}

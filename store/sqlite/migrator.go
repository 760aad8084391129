package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"regexp"
	"sort"
	"time"
)

// migration is a single schema migration, loaded from the embedded
// migrations directory.
type migration struct {
	Name string
	SQL  string
}

// loadMigrations reads SQL files from dir, and returns a slice of
// migration sorted by name.
func loadMigrations(dir fs.FS) ([]migration, error) {
	fnameRx := regexp.MustCompile(`^(?P<name>\d{1,}-[a-z0-9-_]+)\.sql$`)

	migrations := []migration{}
	err := fs.WalkDir(dir, ".", func(path string, d fs.DirEntry, e error) error {
		if e != nil {
			return e
		}
		if !d.Type().IsRegular() || filepath.Ext(d.Name()) != ".sql" {
			return nil
		}

		matched := fnameRx.FindStringSubmatch(d.Name())
		if len(matched) == 0 {
			return fmt.Errorf("invalid migration filename: '%s'", d.Name())
		}
		data, err := fs.ReadFile(dir, d.Name())
		if err != nil {
			return err
		}

		migrations = append(migrations, migration{
			Name: matched[fnameRx.SubexpIndex("name")],
			SQL:  string(data),
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Name < migrations[j].Name
	})

	return migrations, nil
}

// runMigrations applies all migrations that haven't been applied yet, in
// order, and records each one in the migration history table.
func runMigrations(ctx context.Context, db *sql.DB, migrations []migration) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS _migration_history (
			name   VARCHAR(128) NOT NULL,
			time   TIMESTAMP NOT NULL
		);`)
	if err != nil {
		return fmt.Errorf("failed creating migrations schema: %w", err)
	}

	applied, err := loadHistory(ctx, db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Name] {
			continue
		}

		if _, err := db.ExecContext(ctx, m.SQL); err != nil {
			return fmt.Errorf("failed applying migration '%s': %w", m.Name, err)
		}
		_, err = db.ExecContext(ctx, `
			INSERT INTO _migration_history (name, time) VALUES ($1, $2);
			`, m.Name, time.Now().UTC())
		if err != nil {
			return err
		}
		slog.Debug("applied DB migration", "name", m.Name)
	}

	return nil
}

func loadHistory(ctx context.Context, db *sql.DB) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT name FROM _migration_history ORDER BY name, time;`)
	if err != nil {
		return nil, fmt.Errorf("failed retrieving migration history: %w", err)
	}
	defer rows.Close()

	applied := map[string]bool{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed reading from database: %w", err)
		}
		applied[name] = true
	}

	return applied, rows.Err()
}

package database

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"
)

const migrationsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version    TEXT PRIMARY KEY,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Migrate applies every *.sql file at the root of migrations that is not yet
// recorded in schema_migrations, in file name order. Each file runs in its own
// transaction. It returns the versions it applied.
func (db *DB) Migrate(ctx context.Context, migrations fs.FS) ([]string, error) {
	if _, err := db.Exec(ctx, migrationsTable); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}

	rows, err := db.Query(ctx, "SELECT version FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("list applied migrations: %w", err)
	}
	applied := make(map[string]bool)
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan applied migration: %w", err)
		}
		applied[version] = true
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list applied migrations: %w", err)
	}

	pending, err := PendingMigrations(migrations, applied)
	if err != nil {
		return nil, err
	}

	for _, version := range pending {
		script, err := fs.ReadFile(migrations, version)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", version, err)
		}

		err = db.WithinTransaction(ctx, func(ctx context.Context) error {
			tx, _ := TxFromContext(ctx)
			// No arguments, so pgx sends the script over the simple protocol.
			if _, err := tx.Exec(ctx, string(script)); err != nil {
				return err
			}
			_, err := tx.Exec(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", version)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("apply migration %s: %w", version, err)
		}
		slog.Info("Migration applied", "version", version)
	}

	return pending, nil
}

// PendingMigrations lists the *.sql files of migrations absent from applied, sorted by name.
func PendingMigrations(migrations fs.FS, applied map[string]bool) ([]string, error) {
	entries, err := fs.ReadDir(migrations, ".")
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}

	var pending []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.EqualFold(path.Ext(name), ".sql") || applied[name] {
			continue
		}
		pending = append(pending, name)
	}
	sort.Strings(pending)
	return pending, nil
}

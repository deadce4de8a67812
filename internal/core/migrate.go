// AngelaMos | 2026
// migrate.go

package core

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/portfolio-backend/internal/config"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

var migrationFileRe = regexp.MustCompile(`^([0-9]{4})_(.+)\.up\.sql$`)

type migration struct {
	version int
	name    string
	file    string
}

// Migrate applies every embedded up migration for the connection's dialect
// that is not yet recorded in schema_migrations. Each migration runs in its
// own transaction.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	dir, err := migrationsDir(db.DriverName())
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		name TEXT NOT NULL
	)`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	migrations, err := loadMigrations(dir)
	if err != nil {
		return err
	}

	var applied []int
	if err := db.SelectContext(
		ctx,
		&applied,
		`SELECT version FROM schema_migrations`,
	); err != nil {
		return fmt.Errorf("read schema_migrations: %w", err)
	}
	done := make(map[int]bool, len(applied))
	for _, v := range applied {
		done[v] = true
	}

	for _, m := range migrations {
		if done[m.version] {
			continue
		}

		body, err := migrationsFS.ReadFile(m.file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", m.file, err)
		}

		err = InTx(ctx, db, func(tx *sqlx.Tx) error {
			if _, err := tx.ExecContext(ctx, string(body)); err != nil {
				return err
			}
			_, err := tx.ExecContext(
				ctx,
				tx.Rebind(`INSERT INTO schema_migrations (version, name) VALUES (?, ?)`),
				m.version,
				m.name,
			)
			return err
		})
		if err != nil {
			return fmt.Errorf("apply migration %04d_%s: %w", m.version, m.name, err)
		}
	}

	return nil
}

func migrationsDir(driver string) (string, error) {
	switch driver {
	case config.DriverPostgres:
		return "migrations/postgres", nil
	case config.DriverSQLite:
		return "migrations/sqlite", nil
	default:
		return "", fmt.Errorf("no migrations for driver %q", driver)
	}
}

func loadMigrations(dir string) ([]migration, error) {
	entries, err := fs.ReadDir(migrationsFS, dir)
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	var out []migration
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		match := migrationFileRe.FindStringSubmatch(e.Name())
		if match == nil {
			continue
		}
		version, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		out = append(out, migration{
			version: version,
			name:    match[2],
			file:    path.Join(dir, e.Name()),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].version < out[j].version
	})
	return out, nil
}

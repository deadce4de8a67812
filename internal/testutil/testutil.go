// AngelaMos | 2026
// testutil.go

package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/portfolio-backend/internal/config"
	"github.com/carterperez-dev/portfolio-backend/internal/core"
)

// OpenDB opens a fresh SQLite database in the test's temp dir with every
// migration applied. It is closed when the test ends.
func OpenDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "portfolio.db") +
		"?_foreign_keys=on&_busy_timeout=5000"

	db, err := sqlx.Open(config.DriverSQLite, dsn)
	require.NoError(t, err, "open test db")
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, core.Migrate(context.Background(), db), "migrate test db")
	return db
}

// Database wraps OpenDB for code that takes a *core.Database.
func Database(t *testing.T) *core.Database {
	t.Helper()
	return &core.Database{DB: OpenDB(t)}
}

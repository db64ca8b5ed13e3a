// Package testhelper opens migrated SQLite databases for tests.
package testhelper

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/heartmarshall/tourcrew-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/tourcrew-backend/internal/config"
)

// SetupTestDB opens a fresh database file under t.TempDir and applies all
// migrations. The database is closed via t.Cleanup.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := sqlite.Open(ctx, config.SQLiteConfig{
		Path:        filepath.Join(t.TempDir(), "test.db"),
		BusyTimeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("testhelper: open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := sqlite.Migrate(ctx, db); err != nil {
		t.Fatalf("testhelper: migrate sqlite: %v", err)
	}

	return db
}

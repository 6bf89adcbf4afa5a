package testutil

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/Dianagomez24/FrontFilLife/internal/db"
)

// NewTestDatabase returns a migrated SQLite database in a temp dir, closed on cleanup.
func NewTestDatabase(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := db.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	t.Cleanup(func() {
		conn.Close()
	})

	return conn
}

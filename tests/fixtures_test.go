package tests

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// writeSnapshot creates a single-record SQLite snapshot in the test's
// temp dir, matching the layout the upstream crawler writes.
func writeSnapshot(t *testing.T, id, record string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	_, err = db.Exec(`CREATE TABLE datasets (id TEXT PRIMARY KEY, record TEXT NOT NULL)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO datasets (id, record) VALUES (?, ?)`, id, record)
	require.NoError(t, err)
	return path
}

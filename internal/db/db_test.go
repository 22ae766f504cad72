package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSQLiteConnection_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "docs.db")

	conn, err := NewSQLiteConnection(context.Background(), path)
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Exec(`CREATE TABLE t (id INTEGER PRIMARY KEY)`)
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestNewSQLiteConnection_UnwritableDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := NewSQLiteConnection(context.Background(), filepath.Join(blocker, "docs.db"))
	assert.Error(t, err)
}

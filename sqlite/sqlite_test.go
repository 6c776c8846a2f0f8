package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zjregee/knowlix/sqlite"
)

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates schema on first open", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(":memory:")
		err := db.Open()
		require.NoError(t, err)
		defer db.Close()

		// Verify tables exist by querying them
		ctx := context.Background()

		var repoCount int
		err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM repos").Scan(&repoCount)
		require.NoError(t, err)

		var chunkCount int
		err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM chunks").Scan(&chunkCount)
		require.NoError(t, err)
	})

	t.Run("returns error for invalid path", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/db.sqlite")
		err := db.Open()
		require.Error(t, err)
	})

	t.Run("enables WAL mode for file-based databases", func(t *testing.T) {
		t.Parallel()

		dbPath := t.TempDir() + "/test.db"
		db := sqlite.NewDB(dbPath)
		err := db.Open()
		require.NoError(t, err)
		defer db.Close()

		ctx := context.Background()
		var journalMode string
		err = db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&journalMode)
		require.NoError(t, err)
		require.Equal(t, "wal", journalMode)
	})

	t.Run("enforces foreign keys", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(":memory:")
		require.NoError(t, db.Open())
		defer db.Close()

		ctx := context.Background()
		_, err := db.ExecContext(ctx, `
			INSERT INTO chunks (id, repo_id, package, kind, name, content, content_hash, position, created_at)
			VALUES ('c1', 'missing-repo', 'p', 'function', 'F', 'x', 'h', 0, '2026-01-01T00:00:00Z')
		`)
		require.Error(t, err)
	})
}

package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zjregee/knowlix"
	"github.com/zjregee/knowlix/sqlite"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRepoService_CreateRepo(t *testing.T) {
	t.Parallel()

	t.Run("creates repo with generated ID and timestamps", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRepoService(db)
		ctx := context.Background()

		repo := &knowlix.Repo{
			Name:    "uuid",
			Source:  "google/uuid",
			Version: "v1.6.0-abc1234",
		}

		err := svc.CreateRepo(ctx, repo)
		require.NoError(t, err)

		assert.NotEmpty(t, repo.ID, "ID should be generated")
		assert.False(t, repo.CreatedAt.IsZero(), "CreatedAt should be set")
		assert.False(t, repo.UpdatedAt.IsZero(), "UpdatedAt should be set")
	})

	t.Run("returns error for invalid repo", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRepoService(db)
		ctx := context.Background()

		repo := &knowlix.Repo{} // missing required fields

		err := svc.CreateRepo(ctx, repo)
		require.Error(t, err)
		assert.Equal(t, knowlix.EINVALID, knowlix.ErrorCode(err))
	})
}

func TestRepoService_FindRepoByID(t *testing.T) {
	t.Parallel()

	t.Run("returns repo when found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRepoService(db)
		ctx := context.Background()

		repo := &knowlix.Repo{Name: "uuid", Source: "google/uuid", Version: "v1.6.0-abc1234"}
		require.NoError(t, svc.CreateRepo(ctx, repo))

		found, err := svc.FindRepoByID(ctx, repo.ID)
		require.NoError(t, err)
		assert.Equal(t, repo.ID, found.ID)
		assert.Equal(t, repo.Name, found.Name)
		assert.Equal(t, repo.Source, found.Source)
		assert.Equal(t, repo.Version, found.Version)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRepoService(db)
		ctx := context.Background()

		_, err := svc.FindRepoByID(ctx, "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, knowlix.ENOTFOUND, knowlix.ErrorCode(err))
	})
}

func TestRepoService_FindRepos(t *testing.T) {
	t.Parallel()

	t.Run("returns all repos with empty filter", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRepoService(db)
		ctx := context.Background()

		for _, name := range []string{"one", "two", "three"} {
			repo := &knowlix.Repo{Name: name, Source: "owner/" + name}
			require.NoError(t, svc.CreateRepo(ctx, repo))
		}

		repos, err := svc.FindRepos(ctx, knowlix.RepoFilter{})
		require.NoError(t, err)
		assert.Len(t, repos, 3)
	})

	t.Run("filters by name", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRepoService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateRepo(ctx, &knowlix.Repo{Name: "uuid", Source: "google/uuid"}))
		require.NoError(t, svc.CreateRepo(ctx, &knowlix.Repo{Name: "kong", Source: "alecthomas/kong"}))

		name := "kong"
		repos, err := svc.FindRepos(ctx, knowlix.RepoFilter{Name: &name})
		require.NoError(t, err)
		require.Len(t, repos, 1)
		assert.Equal(t, "kong", repos[0].Name)
	})

	t.Run("returns empty slice when nothing matches", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRepoService(db)
		ctx := context.Background()

		name := "missing"
		repos, err := svc.FindRepos(ctx, knowlix.RepoFilter{Name: &name})
		require.NoError(t, err)
		assert.Empty(t, repos)
	})
}

func TestRepoService_UpdateRepo(t *testing.T) {
	t.Parallel()

	t.Run("updates version", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRepoService(db)
		ctx := context.Background()

		repo := &knowlix.Repo{Name: "uuid", Source: "google/uuid", Version: "v1.5.0-aaa1111"}
		require.NoError(t, svc.CreateRepo(ctx, repo))

		version := "v1.6.0-bbb2222"
		updated, err := svc.UpdateRepo(ctx, repo.ID, knowlix.RepoUpdate{Version: &version})
		require.NoError(t, err)
		assert.Equal(t, version, updated.Version)
		assert.Equal(t, repo.Source, updated.Source)

		found, err := svc.FindRepoByID(ctx, repo.ID)
		require.NoError(t, err)
		assert.Equal(t, version, found.Version)
	})

	t.Run("returns ENOTFOUND for missing repo", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRepoService(db)
		ctx := context.Background()

		version := "v1.0.0-ccc3333"
		_, err := svc.UpdateRepo(ctx, "nonexistent-id", knowlix.RepoUpdate{Version: &version})
		require.Error(t, err)
		assert.Equal(t, knowlix.ENOTFOUND, knowlix.ErrorCode(err))
	})
}

func TestRepoService_DeleteRepo(t *testing.T) {
	t.Parallel()

	t.Run("deletes repo", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRepoService(db)
		ctx := context.Background()

		repo := &knowlix.Repo{Name: "uuid", Source: "google/uuid"}
		require.NoError(t, svc.CreateRepo(ctx, repo))
		require.NoError(t, svc.DeleteRepo(ctx, repo.ID))

		_, err := svc.FindRepoByID(ctx, repo.ID)
		require.Error(t, err)
		assert.Equal(t, knowlix.ENOTFOUND, knowlix.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for missing repo", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRepoService(db)
		ctx := context.Background()

		err := svc.DeleteRepo(ctx, "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, knowlix.ENOTFOUND, knowlix.ErrorCode(err))
	})
}

package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zjregee/knowlix"
	main "github.com/zjregee/knowlix/cmd/knowlix"
	"github.com/zjregee/knowlix/mock"
)

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires --force", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		cmd := &main.DeleteCmd{Name: "uuid"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, knowlix.EINVALID, knowlix.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("deletes repo by name", func(t *testing.T) {
		t.Parallel()

		var deletedID string
		repos := &mock.RepoService{
			FindReposFn: func(_ context.Context, filter knowlix.RepoFilter) ([]*knowlix.Repo, error) {
				return []*knowlix.Repo{{ID: "repo-123", Name: *filter.Name, Source: "google/uuid"}}, nil
			},
			DeleteRepoFn: func(_ context.Context, id string) error {
				deletedID = id
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Repos:  repos,
		}

		cmd := &main.DeleteCmd{Name: "uuid", Force: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "repo-123", deletedID)
		assert.Contains(t, stdout.String(), "Deleted repo \"uuid\"")
	})

	t.Run("returns ENOTFOUND for unknown repo", func(t *testing.T) {
		t.Parallel()

		repos := &mock.RepoService{
			FindReposFn: func(_ context.Context, _ knowlix.RepoFilter) ([]*knowlix.Repo, error) {
				return []*knowlix.Repo{}, nil
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Repos:  repos,
		}

		cmd := &main.DeleteCmd{Name: "missing", Force: true}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, knowlix.ENOTFOUND, knowlix.ErrorCode(err))
		assert.Contains(t, stderr.String(), "not found")
	})
}

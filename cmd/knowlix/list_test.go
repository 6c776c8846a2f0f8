package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zjregee/knowlix"
	main "github.com/zjregee/knowlix/cmd/knowlix"
	"github.com/zjregee/knowlix/mock"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists repos with ID, name, source, and version", func(t *testing.T) {
		t.Parallel()

		repos := &mock.RepoService{
			FindReposFn: func(_ context.Context, _ knowlix.RepoFilter) ([]*knowlix.Repo, error) {
				return []*knowlix.Repo{
					{
						ID:        "repo-123",
						Name:      "uuid",
						Source:    "google/uuid",
						Version:   "v1.6.0-abc1234",
						CreatedAt: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
					},
					{
						ID:        "repo-456",
						Name:      "kong",
						Source:    "alecthomas/kong",
						Version:   "v1.13.0-def5678",
						CreatedAt: time.Date(2026, 1, 16, 11, 0, 0, 0, time.UTC),
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Repos:  repos,
		}

		cmd := &main.ListCmd{}
		err := cmd.Run(deps)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "repo-123")
		assert.Contains(t, output, "repo-456")
		assert.Contains(t, output, "uuid")
		assert.Contains(t, output, "kong")
		assert.Contains(t, output, "google/uuid")
		assert.Contains(t, output, "v1.6.0-abc1234")
	})

	t.Run("shows helpful message when no repos exist", func(t *testing.T) {
		t.Parallel()

		repos := &mock.RepoService{
			FindReposFn: func(_ context.Context, _ knowlix.RepoFilter) ([]*knowlix.Repo, error) {
				return []*knowlix.Repo{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Repos:  repos,
		}

		err := (&main.ListCmd{}).Run(deps)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No repos found")
	})

	t.Run("surfaces service errors on stderr", func(t *testing.T) {
		t.Parallel()

		repos := &mock.RepoService{
			FindReposFn: func(_ context.Context, _ knowlix.RepoFilter) ([]*knowlix.Repo, error) {
				return nil, errors.New("database locked")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Repos:  repos,
		}

		err := (&main.ListCmd{}).Run(deps)
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}

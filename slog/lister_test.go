package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zjregee/knowlix"
	"github.com/zjregee/knowlix/mock"
	knowlixslog "github.com/zjregee/knowlix/slog"
)

func TestLoggingLister_ListPackages(t *testing.T) {
	t.Parallel()

	t.Run("logs enumeration with count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PackageLister{
			ListPackagesFn: func(ctx context.Context, dir string) ([]knowlix.PackageMeta, error) {
				return []knowlix.PackageMeta{{Name: "cache"}, {Name: "store"}}, nil
			},
		}

		lister := knowlixslog.NewLoggingLister(inner, logger)
		metas, err := lister.ListPackages(context.Background(), "/tmp/repo")

		require.NoError(t, err)
		assert.Len(t, metas, 2)
		output := buf.String()
		assert.Contains(t, output, "packages listed")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "dir=/tmp/repo")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PackageLister{
			ListPackagesFn: func(ctx context.Context, dir string) ([]knowlix.PackageMeta, error) {
				return nil, knowlix.Errorf(knowlix.EUNAVAILABLE, "go list failed")
			},
		}

		lister := knowlixslog.NewLoggingLister(inner, logger)
		_, err := lister.ListPackages(context.Background(), "/tmp/repo")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "package listing failed")
	})
}

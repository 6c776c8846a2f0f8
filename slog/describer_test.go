package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zjregee/knowlix"
	"github.com/zjregee/knowlix/mock"
	knowlixslog "github.com/zjregee/knowlix/slog"
)

func TestLoggingDescriber_Describe(t *testing.T) {
	t.Parallel()

	item := knowlix.Item{ID: "example.com/mod:func Get()", Kind: knowlix.KindFunction, Name: "Get"}

	t.Run("logs generation with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Describer{
			DescribeFn: func(ctx context.Context, item knowlix.Item) (string, error) {
				return "## Summary", nil
			},
		}

		describer := knowlixslog.NewLoggingDescriber(inner, logger)
		content, err := describer.Describe(context.Background(), item)

		require.NoError(t, err)
		assert.Equal(t, "## Summary", content)
		output := buf.String()
		assert.Contains(t, output, "doc generated")
		assert.Contains(t, output, "kind=function")
		assert.Contains(t, output, "bytes=10")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Describer{
			DescribeFn: func(ctx context.Context, item knowlix.Item) (string, error) {
				return "", errors.New("model overloaded")
			},
		}

		describer := knowlixslog.NewLoggingDescriber(inner, logger)
		_, err := describer.Describe(context.Background(), item)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "doc generation failed")
		assert.Contains(t, output, "error=\"model overloaded\"")
	})
}

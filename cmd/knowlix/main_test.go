package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	main "github.com/zjregee/knowlix/cmd/knowlix"
)

func testMain(t *testing.T) *main.Main {
	t.Helper()
	dir := t.TempDir()
	m := main.NewMain()
	m.DBPath = filepath.Join(dir, "knowlix.db")
	m.ConfigPath = filepath.Join(dir, "config.yaml")
	t.Cleanup(func() { m.Close() })
	return m
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints help and errors with no arguments", func(t *testing.T) {
		t.Parallel()

		m := testMain(t)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), nil, stdout, stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
		assert.Contains(t, stdout.String(), "Usage:")
	})

	t.Run("prints help for the help command", func(t *testing.T) {
		t.Parallel()

		m := testMain(t)
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"help"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Usage:")
		assert.Contains(t, stdout.String(), "add")
		assert.Contains(t, stdout.String(), "gen")
	})

	t.Run("returns an error for an unknown command", func(t *testing.T) {
		t.Parallel()

		m := testMain(t)

		err := m.Run(context.Background(), []string{"bogus"}, &bytes.Buffer{}, &bytes.Buffer{})
		require.Error(t, err)
	})

	t.Run("list runs against a fresh database", func(t *testing.T) {
		t.Parallel()

		m := testMain(t)
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"list"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No repos found")
	})
}

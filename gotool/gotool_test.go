package gotool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zjregee/knowlix/gotool"
)

func TestDecodePackages(t *testing.T) {
	t.Parallel()

	t.Run("decodes a concatenated JSON stream", func(t *testing.T) {
		t.Parallel()

		payload := []byte(`{
	"Name": "cache",
	"ImportPath": "example.com/mod/cache",
	"Dir": "/src/mod/cache",
	"Doc": "Package cache provides an in-memory store."
}
{
	"Name": "store",
	"ImportPath": "example.com/mod/store",
	"Dir": "/src/mod/store"
}`)

		metas, err := gotool.DecodePackages(payload)
		require.NoError(t, err)
		require.Len(t, metas, 2)

		assert.Equal(t, "cache", metas[0].Name)
		assert.Equal(t, "example.com/mod/cache", metas[0].ImportPath)
		assert.Equal(t, "/src/mod/cache", metas[0].Dir)
		assert.Equal(t, "Package cache provides an in-memory store.", metas[0].Doc)

		assert.Equal(t, "store", metas[1].Name)
		assert.Empty(t, metas[1].Doc)
	})

	t.Run("returns an empty slice for empty input", func(t *testing.T) {
		t.Parallel()

		metas, err := gotool.DecodePackages(nil)
		require.NoError(t, err)
		assert.NotNil(t, metas)
		assert.Empty(t, metas)
	})

	t.Run("returns an error for malformed output", func(t *testing.T) {
		t.Parallel()

		_, err := gotool.DecodePackages([]byte(`{"Name": "cache"` + "\n" + `not json`))
		require.Error(t, err)
	})
}

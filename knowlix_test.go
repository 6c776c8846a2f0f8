package knowlix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zjregee/knowlix"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := knowlix.Errorf(knowlix.ENOTFOUND, "repo %q not found", "test")

	assert.Equal(t, knowlix.ENOTFOUND, knowlix.ErrorCode(err))
	assert.Equal(t, "repo \"test\" not found", knowlix.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, knowlix.ErrorCode(nil))
}

func TestErrorCode_NonAppError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, knowlix.EINTERNAL, knowlix.ErrorCode(assert.AnError))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, knowlix.ErrorMessage(nil))
}

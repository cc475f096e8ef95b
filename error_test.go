package shuku_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/shuku"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := shuku.Errorf(shuku.EUNAVAILABLE, "page %d could not be fetched", 3)

	assert.Equal(t, shuku.EUNAVAILABLE, shuku.ErrorCode(err))
	assert.Equal(t, "page 3 could not be fetched", shuku.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("listing: %w", shuku.Errorf(shuku.EINVALID, "bad page"))

	assert.Equal(t, shuku.EINVALID, shuku.ErrorCode(err))
	assert.Equal(t, "bad page", shuku.ErrorMessage(err))
}

func TestErrorCode_PlainError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, shuku.EINTERNAL, shuku.ErrorCode(err))
	assert.Equal(t, "Internal error.", shuku.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, shuku.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, shuku.ErrorMessage(nil))
}

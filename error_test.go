package ogpeek_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/ogpeek"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := ogpeek.Errorf(ogpeek.ENOTFOUND, "preview %q not found", "https://example.com")

	assert.Equal(t, ogpeek.ENOTFOUND, ogpeek.ErrorCode(err))
	assert.Equal(t, "preview \"https://example.com\" not found", ogpeek.ErrorMessage(err))
}

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns empty code for nil error", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, ogpeek.ErrorCode(nil))
	})

	t.Run("unwraps wrapped application errors", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("loading: %w", ogpeek.Errorf(ogpeek.EINVALID, "bad"))

		assert.Equal(t, ogpeek.EINVALID, ogpeek.ErrorCode(err))
		assert.Equal(t, "bad", ogpeek.ErrorMessage(err))
	})

	t.Run("reports other errors as internal", func(t *testing.T) {
		t.Parallel()

		err := errors.New("connection reset")

		assert.Equal(t, ogpeek.EINTERNAL, ogpeek.ErrorCode(err))
		assert.Equal(t, "Internal error.", ogpeek.ErrorMessage(err))
	})
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ogpeek.ErrorMessage(nil))
}

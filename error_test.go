package shopgrep_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/shopgrep"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns code for application error", func(t *testing.T) {
		t.Parallel()

		err := shopgrep.Errorf(shopgrep.EINVALID, "bad query")

		assert.Equal(t, shopgrep.EINVALID, shopgrep.ErrorCode(err))
	})

	t.Run("returns code for wrapped application error", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("outer: %w", shopgrep.Errorf(shopgrep.ENOTFOUND, "missing"))

		assert.Equal(t, shopgrep.ENOTFOUND, shopgrep.ErrorCode(err))
	})

	t.Run("maps unknown errors to internal", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, shopgrep.EINTERNAL, shopgrep.ErrorCode(errors.New("boom")))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", shopgrep.ErrorCode(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("returns message for application error", func(t *testing.T) {
		t.Parallel()

		err := shopgrep.Errorf(shopgrep.EINVALID, "price range %d-%d invalid", 5, 1)

		assert.Equal(t, "price range 5-1 invalid", shopgrep.ErrorMessage(err))
	})

	t.Run("hides internal details for unknown errors", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Internal error.", shopgrep.ErrorMessage(errors.New("sql: connection refused")))
	})
}

package extract_test

import (
	"testing"

	"github.com/fwojciec/shopgrep/extract"
	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	t.Parallel()

	t.Run("drops navigation lines", func(t *testing.T) {
		t.Parallel()

		doc := "Skip to main content\nHello, sign in\nWidget Pro 128GB\nCart\nRs. 12,999"

		got := extract.Clean(doc)

		assert.Equal(t, "Widget Pro 128GB\nRs. 12,999", got)
	})

	t.Run("drops footer boilerplate", func(t *testing.T) {
		t.Parallel()

		doc := "Widget Pro 128GB\n© 2025 Example Corp\nAll Rights Reserved\nPrivacy Policy"

		got := extract.Clean(doc)

		assert.Equal(t, "Widget Pro 128GB", got)
	})

	t.Run("collapses three or more blank lines to one", func(t *testing.T) {
		t.Parallel()

		doc := "first block\n\n\n\n\nsecond block"

		got := extract.Clean(doc)

		assert.Equal(t, "first block\n\nsecond block", got)
	})

	t.Run("preserves single and double blank lines", func(t *testing.T) {
		t.Parallel()

		doc := "a\n\nb\n\n\nc"

		got := extract.Clean(doc)

		assert.Equal(t, "a\n\nb\n\n\nc", got)
	})

	t.Run("keeps product text mentioning nav words mid-sentence", func(t *testing.T) {
		t.Parallel()

		doc := "Widget Pro with cart-friendly carry case and travel sort bag"

		got := extract.Clean(doc)

		assert.Equal(t, doc, got)
	})

	t.Run("drops result count banners", func(t *testing.T) {
		t.Parallel()

		doc := "1-24 of over 2,000 results\nWidget Pro 128GB"

		assert.Equal(t, "Widget Pro 128GB", extract.Clean(doc))
	})

	t.Run("empty document stays empty", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", extract.Clean(""))
	})
}

package goquery_test

import (
	"testing"

	"github.com/fwojciec/shopgrep"
	"github.com/fwojciec/shopgrep/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPaginationLinks(t *testing.T) {
	t.Parallel()

	t.Run("finds rel next and numbered pages", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="pagination">
  <a href="/s?k=widget&page=2">2</a>
  <a href="/s?k=widget&page=3">3</a>
  <a rel="next" href="/s?k=widget&page=2">Next</a>
</div>
</body></html>`

		links, err := goquery.ExtractPaginationLinks(html, "https://www.amazon.in/s?k=widget")

		require.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, "https://www.amazon.in/s?k=widget&page=2", links[0].URL)
		assert.Equal(t, shopgrep.PriorityPagination, links[0].Priority)
		assert.Equal(t, "pagination", links[0].Source)
	})

	t.Run("filters external hosts", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="pagination">
  <a href="https://tracker.example.net/?page=2">2</a>
  <a href="/s?k=widget&page=2">2</a>
</div>
</body></html>`

		links, err := goquery.ExtractPaginationLinks(html, "https://www.amazon.in/s?k=widget")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://www.amazon.in/s?k=widget&page=2", links[0].URL)
	})

	t.Run("strips fragments and skips self links", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="pagination">
  <a href="/s?k=widget#top">1</a>
  <a href="/s?k=widget&page=2#results">2</a>
</div>
</body></html>`

		links, err := goquery.ExtractPaginationLinks(html, "https://www.amazon.in/s?k=widget")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://www.amazon.in/s?k=widget&page=2", links[0].URL)
	})

	t.Run("rejects invalid base URLs", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.ExtractPaginationLinks("<html></html>", "://bad")

		require.Error(t, err)
		assert.Equal(t, shopgrep.EINVALID, shopgrep.ErrorCode(err))
	})
}

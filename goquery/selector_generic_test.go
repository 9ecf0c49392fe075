package goquery_test

import (
	"testing"

	"github.com/fwojciec/shopgrep"
	"github.com/fwojciec/shopgrep/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenericSelector_SelectProducts(t *testing.T) {
	t.Parallel()

	t.Run("pairs anchors with nearby prices", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="x1">
  <a href="/p/widget-pro">Widget Pro 128GB with fast charging</a>
  <span>₹12,999</span>
</div>
<div class="x1">
  <a href="/p/widget-air">Widget Air 64GB lightweight edition</a>
  <span>Rs. 8,499</span>
</div>
</body></html>`

		s := goquery.NewGenericSelector()
		products, err := s.SelectProducts(html, shopgrep.Query{Keywords: []string{"widget"}, MaxPrice: 50000})

		require.NoError(t, err)
		require.Len(t, products, 2)
		require.NotNil(t, products[0].Price)
		assert.Equal(t, 12999, *products[0].Price)
		assert.Equal(t, "/p/widget-pro", products[0].Link)
		require.NotNil(t, products[1].Price)
		assert.Equal(t, 8499, *products[1].Price)
	})

	t.Run("skips short link text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<nav><a href="/deals">Deals</a><a href="/cart">View Cart</a></nav>
<div><a href="/p/widget-pro">Widget Pro 128GB with fast charging</a><span>₹12,999</span></div>
</body></html>`

		s := goquery.NewGenericSelector()
		products, err := s.SelectProducts(html, shopgrep.Query{MaxPrice: 50000})

		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Widget Pro 128GB with fast charging", products[0].Title)
	})

	t.Run("numbers without currency markers are not prices", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div>
  <a href="/p/widget-pro">Widget Pro 128GB with fast charging</a>
  <span>1,234 reviews</span>
</div>
</body></html>`

		s := goquery.NewGenericSelector()
		products, err := s.SelectProducts(html, shopgrep.Query{MaxPrice: 50000})

		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Nil(t, products[0].Price)
	})

	t.Run("missing price fails a positive minimum", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div><a href="/p/widget-pro">Widget Pro 128GB with fast charging</a></div>
</body></html>`

		s := goquery.NewGenericSelector()
		products, err := s.SelectProducts(html, shopgrep.Query{MinPrice: 100, MaxPrice: 50000})

		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("skips javascript links", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div><a href="javascript:void(0)">Widget Pro 128GB with fast charging</a><span>₹12,999</span></div>
</body></html>`

		s := goquery.NewGenericSelector()
		products, err := s.SelectProducts(html, shopgrep.Query{MaxPrice: 50000})

		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("deduplicates repeated cards", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div><a href="/p/widget-pro">Widget Pro 128GB with fast charging</a><span>₹12,999</span></div>
<div><a href="/p/widget-pro?ref=grid">Widget Pro 128GB with fast charging</a><span>₹12,999</span></div>
</body></html>`

		s := goquery.NewGenericSelector()
		products, err := s.SelectProducts(html, shopgrep.Query{MaxPrice: 50000})

		require.NoError(t, err)
		require.Len(t, products, 1)
	})
}

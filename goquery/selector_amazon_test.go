package goquery_test

import (
	"testing"

	"github.com/fwojciec/shopgrep"
	"github.com/fwojciec/shopgrep/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const amazonListingHTML = `<html><body>
<div class="s-main-slot">
<div data-component-type="s-search-result">
  <img class="s-image" src="https://m.media-amazon.com/images/I/widget-pro.jpg">
  <h2><a href="/dp/B0WIDGETPRO"><span>Widget Pro 128GB with fast charging</span></a></h2>
  <span class="a-icon-alt">4.3 out of 5 stars</span>
  <span class="a-price"><span class="a-offscreen">₹12,999</span></span>
</div>
<div data-component-type="s-search-result">
  <h2><a href="/dp/B0WIDGETAIR"><span>Widget Air 64GB lightweight edition</span></a></h2>
  <span class="a-icon-alt">4.1 out of 5 stars</span>
  <span class="a-price"><span class="a-offscreen">₹8,499</span></span>
</div>
<div data-component-type="s-search-result">
  <h2><a href="/dp/B0SPONSORED"><span>Unrelated Gadget 16GB budget pick</span></a></h2>
  <span class="a-price"><span class="a-offscreen">₹2,999</span></span>
</div>
</div>
</body></html>`

func TestAmazonSelector_SelectProducts(t *testing.T) {
	t.Parallel()

	t.Run("extracts cards with all fields", func(t *testing.T) {
		t.Parallel()

		s := goquery.NewAmazonSelector()
		products, err := s.SelectProducts(amazonListingHTML, shopgrep.Query{Keywords: []string{"widget"}, MaxPrice: 50000})

		require.NoError(t, err)
		require.Len(t, products, 2)

		pro := products[0]
		assert.Equal(t, "Widget Pro 128GB with fast charging", pro.Title)
		require.NotNil(t, pro.Price)
		assert.Equal(t, 12999, *pro.Price)
		assert.Equal(t, "4.3 out of 5 stars", pro.Rating)
		assert.Equal(t, "/dp/B0WIDGETPRO", pro.Link)
		assert.Equal(t, "https://m.media-amazon.com/images/I/widget-pro.jpg", pro.Image)
	})

	t.Run("query keywords drop unrelated cards", func(t *testing.T) {
		t.Parallel()

		s := goquery.NewAmazonSelector()
		products, err := s.SelectProducts(amazonListingHTML, shopgrep.Query{Keywords: []string{"widget"}, MaxPrice: 50000})

		require.NoError(t, err)
		for _, p := range products {
			assert.NotContains(t, p.Title, "Unrelated Gadget")
		}
	})

	t.Run("price range gates results", func(t *testing.T) {
		t.Parallel()

		s := goquery.NewAmazonSelector()
		products, err := s.SelectProducts(amazonListingHTML, shopgrep.Query{Keywords: []string{"widget"}, MinPrice: 10000, MaxPrice: 50000})

		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Widget Pro 128GB with fast charging", products[0].Title)
	})

	t.Run("rejects invalid queries", func(t *testing.T) {
		t.Parallel()

		s := goquery.NewAmazonSelector()
		_, err := s.SelectProducts(amazonListingHTML, shopgrep.Query{MinPrice: 10, MaxPrice: 5})

		require.Error(t, err)
		assert.Equal(t, shopgrep.EINVALID, shopgrep.ErrorCode(err))
	})

	t.Run("empty page yields no products", func(t *testing.T) {
		t.Parallel()

		s := goquery.NewAmazonSelector()
		products, err := s.SelectProducts("<html><body></body></html>", shopgrep.Query{MaxPrice: 50000})

		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("duplicate cards collapse first seen", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div data-component-type="s-search-result">
  <h2><span>Widget Pro 128GB with fast charging</span></h2>
  <span class="a-price"><span class="a-offscreen">₹12,999</span></span>
</div>
<div data-component-type="s-search-result">
  <h2><span>Widget Pro 128GB with fast charging</span></h2>
  <span class="a-price"><span class="a-offscreen">₹12,999</span></span>
</div>
</body></html>`

		s := goquery.NewAmazonSelector()
		products, err := s.SelectProducts(html, shopgrep.Query{MaxPrice: 50000})

		require.NoError(t, err)
		require.Len(t, products, 1)
	})
}

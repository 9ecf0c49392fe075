package goquery_test

import (
	"testing"

	"github.com/fwojciec/shopgrep"
	"github.com/fwojciec/shopgrep/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCromaSelector_SelectProducts(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<li class="cp-product">
  <a class="product-img" href="/widget-pro/p/123456"><img src="https://media.croma.com/widget-pro.png"></a>
  <h3 class="product-title"><a href="/widget-pro/p/123456">Widget Pro 128GB with fast charging</a></h3>
  <span class="new-price">₹12,999</span>
  <span class="discount">19% Off</span>
  <span class="rating-text">4.3</span>
</li>
</body></html>`

	s := goquery.NewCromaSelector()
	products, err := s.SelectProducts(html, shopgrep.Query{Keywords: []string{"widget"}, MaxPrice: 50000})

	require.NoError(t, err)
	require.Len(t, products, 1)

	p := products[0]
	assert.Equal(t, "Widget Pro 128GB with fast charging", p.Title)
	require.NotNil(t, p.Price)
	assert.Equal(t, 12999, *p.Price)
	assert.Equal(t, "19% Off", p.Discount)
	assert.Equal(t, "4.3", p.Rating)
	assert.Equal(t, "/widget-pro/p/123456", p.Link)
	assert.Equal(t, "https://media.croma.com/widget-pro.png", p.Image)
}

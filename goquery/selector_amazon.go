package goquery

import (
	"github.com/fwojciec/shopgrep"
)

var _ shopgrep.ProductSelector = (*AmazonSelector)(nil)

// AmazonSelector extracts products from Amazon search-result pages.
//
// It targets Amazon-specific result markup:
// - [data-component-type='s-search-result'] for result cards
// - .a-price .a-offscreen for the accessible price text
// - .a-icon-alt for the star-rating label
type AmazonSelector struct{}

// NewAmazonSelector creates a new AmazonSelector.
func NewAmazonSelector() *AmazonSelector {
	return &AmazonSelector{}
}

// Name returns the selector's identifier.
func (s *AmazonSelector) Name() string {
	return "amazon"
}

// SelectProducts parses listing HTML and returns products passing the
// query gate, deduplicated first-seen.
func (s *AmazonSelector) SelectProducts(html string, query shopgrep.Query) ([]*shopgrep.Product, error) {
	return SelectProductsWithConfig(html, query, CardConfig{
		Card:   "[data-component-type='s-search-result']",
		Title:  "h2 span",
		Price:  ".a-price .a-offscreen",
		Rating: ".a-icon-alt",
		Link:   "h2 a",
		Image:  "img.s-image",
	})
}

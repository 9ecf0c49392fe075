package goquery

import (
	"github.com/fwojciec/shopgrep"
)

var _ shopgrep.ProductSelector = (*CromaSelector)(nil)

// CromaSelector extracts products from Croma search-result pages.
//
// It targets the .cp-product card markup used by Croma's product grid.
type CromaSelector struct{}

// NewCromaSelector creates a new CromaSelector.
func NewCromaSelector() *CromaSelector {
	return &CromaSelector{}
}

// Name returns the selector's identifier.
func (s *CromaSelector) Name() string {
	return "croma"
}

// SelectProducts parses listing HTML and returns products passing the
// query gate, deduplicated first-seen.
func (s *CromaSelector) SelectProducts(html string, query shopgrep.Query) ([]*shopgrep.Product, error) {
	return SelectProductsWithConfig(html, query, CardConfig{
		Card:     ".cp-product",
		Title:    ".product-title",
		Price:    ".new-price, .amount",
		Rating:   ".rating-text",
		Discount: ".discount",
		Link:     ".product-title a, a.product-img",
		Image:    ".product-img img",
	})
}

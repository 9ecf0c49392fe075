package goquery

import (
	"github.com/fwojciec/shopgrep"
)

var _ shopgrep.ProductSelector = (*TataCliqSelector)(nil)

// TataCliqSelector extracts products from Tata CLiQ search-result pages.
//
// Tata CLiQ uses CSS-module class names with stable component prefixes
// (ProductModule, ProductDescription), matched with substring selectors.
type TataCliqSelector struct{}

// NewTataCliqSelector creates a new TataCliqSelector.
func NewTataCliqSelector() *TataCliqSelector {
	return &TataCliqSelector{}
}

// Name returns the selector's identifier.
func (s *TataCliqSelector) Name() string {
	return "tatacliq"
}

// SelectProducts parses listing HTML and returns products passing the
// query gate, deduplicated first-seen.
func (s *TataCliqSelector) SelectProducts(html string, query shopgrep.Query) ([]*shopgrep.Product, error) {
	return SelectProductsWithConfig(html, query, CardConfig{
		Card:     "[class*='ProductModule__base']",
		Title:    "[class*='ProductDescription__description']",
		Price:    "[class*='ProductDescription__price']",
		Discount: "[class*='ProductDescription__discount']",
		Link:     "a[href*='/p-']",
		Image:    "img",
	})
}

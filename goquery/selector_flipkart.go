package goquery

import (
	"github.com/fwojciec/shopgrep"
)

var _ shopgrep.ProductSelector = (*FlipkartSelector)(nil)

// FlipkartSelector extracts products from Flipkart search-result pages.
//
// Flipkart's class names are build-obfuscated and churn between deploys.
// The selectors below match the class names observed on current grid and
// list layouts; when they rot the generic selector still covers the site.
type FlipkartSelector struct{}

// NewFlipkartSelector creates a new FlipkartSelector.
func NewFlipkartSelector() *FlipkartSelector {
	return &FlipkartSelector{}
}

// Name returns the selector's identifier.
func (s *FlipkartSelector) Name() string {
	return "flipkart"
}

// SelectProducts parses listing HTML and returns products passing the
// query gate, deduplicated first-seen.
func (s *FlipkartSelector) SelectProducts(html string, query shopgrep.Query) ([]*shopgrep.Product, error) {
	return SelectProductsWithConfig(html, query, CardConfig{
		Card:   "div._1AtVbE div._13oc-S, div._1AtVbE div._4ddWXP",
		Title:  "div._4rR01T, a.s1Q9rs, a.IRpwTa",
		Price:  "div._30jeq3",
		Rating: "div._3LWZlK",
		Link:   "a._1fQZEK, a.s1Q9rs, a._2rpwqI",
		Image:  "img._396cs4, img._2r_T1I",
	})
}

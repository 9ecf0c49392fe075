package mock

import "github.com/fwojciec/shopgrep"

var _ shopgrep.SiteDetector = (*SiteDetector)(nil)

// SiteDetector is a mock implementation of shopgrep.SiteDetector.
type SiteDetector struct {
	DetectFn func(html string) shopgrep.Site
}

func (d *SiteDetector) Detect(html string) shopgrep.Site {
	return d.DetectFn(html)
}

var _ shopgrep.ProductSelector = (*ProductSelector)(nil)

// ProductSelector is a mock implementation of shopgrep.ProductSelector.
type ProductSelector struct {
	SelectProductsFn func(html string, query shopgrep.Query) ([]*shopgrep.Product, error)
}

func (s *ProductSelector) SelectProducts(html string, query shopgrep.Query) ([]*shopgrep.Product, error) {
	return s.SelectProductsFn(html, query)
}

var _ shopgrep.ProductSelectorRegistry = (*ProductSelectorRegistry)(nil)

// ProductSelectorRegistry is a mock implementation of
// shopgrep.ProductSelectorRegistry.
type ProductSelectorRegistry struct {
	GetFn        func(site shopgrep.Site) shopgrep.ProductSelector
	GetForHTMLFn func(html string) shopgrep.ProductSelector
	RegisterFn   func(site shopgrep.Site, selector shopgrep.ProductSelector)
	ListFn       func() []shopgrep.Site
}

func (r *ProductSelectorRegistry) Get(site shopgrep.Site) shopgrep.ProductSelector {
	return r.GetFn(site)
}

func (r *ProductSelectorRegistry) GetForHTML(html string) shopgrep.ProductSelector {
	return r.GetForHTMLFn(html)
}

func (r *ProductSelectorRegistry) Register(site shopgrep.Site, selector shopgrep.ProductSelector) {
	r.RegisterFn(site, selector)
}

func (r *ProductSelectorRegistry) List() []shopgrep.Site {
	return r.ListFn()
}

package goquery

import "github.com/fwojciec/shopgrep"

var _ shopgrep.ProductSelectorRegistry = (*Registry)(nil)

// Registry manages storefront-specific product selectors and auto-detects
// storefronts from HTML content. It uses a SiteDetector to identify the
// storefront and returns the appropriate selector, falling back to the
// generic selector when the storefront is unknown or no specific selector
// is registered.
type Registry struct {
	detector  shopgrep.SiteDetector
	fallback  shopgrep.ProductSelector
	selectors map[shopgrep.Site]shopgrep.ProductSelector
}

// NewRegistry creates a new Registry with the given detector and fallback selector.
// The fallback selector is used when no specific selector is registered for
// the requested or detected storefront.
func NewRegistry(detector shopgrep.SiteDetector, fallback shopgrep.ProductSelector) *Registry {
	return &Registry{
		detector:  detector,
		fallback:  fallback,
		selectors: make(map[shopgrep.Site]shopgrep.ProductSelector),
	}
}

// NewDefaultRegistry creates a Registry with all supported storefronts
// registered and a generic fallback.
func NewDefaultRegistry() *Registry {
	r := NewRegistry(NewDetector(), NewGenericSelector())
	r.Register(shopgrep.SiteAmazon, NewAmazonSelector())
	r.Register(shopgrep.SiteFlipkart, NewFlipkartSelector())
	r.Register(shopgrep.SiteCroma, NewCromaSelector())
	r.Register(shopgrep.SiteTataCliq, NewTataCliqSelector())
	return r
}

// Get returns the selector for a storefront.
// Falls back to the fallback selector if none is registered.
func (r *Registry) Get(site shopgrep.Site) shopgrep.ProductSelector {
	if selector, ok := r.selectors[site]; ok {
		return selector
	}
	return r.fallback
}

// GetForHTML detects the storefront from HTML and returns the appropriate
// selector. Falls back to the fallback selector if the storefront is
// unknown or no selector is registered for the detected storefront.
func (r *Registry) GetForHTML(html string) shopgrep.ProductSelector {
	site := r.detector.Detect(html)
	if selector, ok := r.selectors[site]; ok {
		return selector
	}
	return r.fallback
}

// Register adds a selector for a storefront.
// If a selector is already registered for the storefront, it is replaced.
func (r *Registry) Register(site shopgrep.Site, selector shopgrep.ProductSelector) {
	r.selectors[site] = selector
}

// List returns all registered storefronts.
func (r *Registry) List() []shopgrep.Site {
	sites := make([]shopgrep.Site, 0, len(r.selectors))
	for s := range r.selectors {
		sites = append(sites, s)
	}
	return sites
}

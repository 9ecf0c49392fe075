package shopgrep

// Site identifies a supported storefront.
type Site string

// Supported storefronts. SiteUnknown selects the generic selector.
const (
	SiteUnknown  Site = ""
	SiteAmazon   Site = "amazon"
	SiteFlipkart Site = "flipkart"
	SiteCroma    Site = "croma"
	SiteTataCliq Site = "tatacliq"
)

// SiteDetector identifies the storefront that produced an HTML page.
type SiteDetector interface {
	// Detect returns the storefront, or SiteUnknown if none matches.
	Detect(html string) Site
}

// ProductSelector extracts product candidates straight from listing-page
// HTML using storefront-specific DOM selectors. It is a pre-markdown
// alternative to the text pipeline for pages whose structure is known.
type ProductSelector interface {
	SelectProducts(html string, query Query) ([]*Product, error)
}

// ProductSelectorRegistry maps storefronts to selectors.
type ProductSelectorRegistry interface {
	// Get returns the selector for a storefront, falling back to the
	// generic selector for unregistered storefronts.
	Get(site Site) ProductSelector

	// GetForHTML detects the storefront and returns its selector.
	GetForHTML(html string) ProductSelector

	// Register adds or replaces the selector for a storefront.
	Register(site Site, selector ProductSelector)

	// List returns the registered storefronts.
	List() []Site
}

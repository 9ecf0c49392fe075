// Package goquery provides DOM-based storefront detection and product
// selection for listing pages whose structure is known. It is the
// structured alternative to the markdown text pipeline.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shopgrep"
)

// Detector identifies storefronts from HTML content. It checks meta tags
// and canonical links first, then falls back to storefront-specific CSS
// classes and structural markers.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the identified storefront.
// Returns SiteUnknown if the storefront cannot be determined.
func (d *Detector) Detect(html string) shopgrep.Site {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return shopgrep.SiteUnknown
	}

	// Check meta tags and canonical links first - most reliable when present
	if site := d.detectFromMeta(doc); site != shopgrep.SiteUnknown {
		return site
	}

	// Amazon markers
	// data-component-type='s-search-result' is unique to Amazon result pages
	if d.hasSelector(doc, "[data-component-type='s-search-result']") ||
		d.hasSelector(doc, "#nav-logo-sprites") ||
		d.hasSelector(doc, "#navFooter") {
		return shopgrep.SiteAmazon
	}

	// Flipkart markers. Class names are build-obfuscated and churn, so
	// rely on the asset CDN and self-referencing links instead.
	if d.hasSelector(doc, "img[src*='flixcart.com']") ||
		d.hasSelector(doc, "link[href*='flipkart.com']") ||
		d.hasSelector(doc, "a[href*='flipkart.com']") {
		return shopgrep.SiteFlipkart
	}

	// Croma markers
	if d.hasSelector(doc, ".cp-product") ||
		d.hasSelector(doc, "link[href*='croma.com']") ||
		d.hasSelector(doc, "img[src*='croma.com']") {
		return shopgrep.SiteCroma
	}

	// Tata CLiQ markers
	if d.hasSelector(doc, "[class*='ProductModule']") ||
		d.hasSelector(doc, "link[href*='tatacliq.com']") {
		return shopgrep.SiteTataCliq
	}

	return shopgrep.SiteUnknown
}

// detectFromMeta checks og:site_name and the canonical link for
// storefront identification.
func (d *Detector) detectFromMeta(doc *goquery.Document) shopgrep.Site {
	siteName := ""
	doc.Find("meta[property='og:site_name']").Each(func(_ int, s *goquery.Selection) {
		if content, exists := s.Attr("content"); exists {
			siteName = strings.ToLower(content)
		}
	})

	canonical := ""
	doc.Find("link[rel='canonical']").Each(func(_ int, s *goquery.Selection) {
		if href, exists := s.Attr("href"); exists {
			canonical = strings.ToLower(href)
		}
	})

	switch {
	case strings.Contains(siteName, "amazon"), strings.Contains(canonical, "amazon."):
		return shopgrep.SiteAmazon
	case strings.Contains(siteName, "flipkart"), strings.Contains(canonical, "flipkart.com"):
		return shopgrep.SiteFlipkart
	case strings.Contains(siteName, "croma"), strings.Contains(canonical, "croma.com"):
		return shopgrep.SiteCroma
	case strings.Contains(siteName, "tata cliq"), strings.Contains(siteName, "tatacliq"),
		strings.Contains(canonical, "tatacliq.com"):
		return shopgrep.SiteTataCliq
	}

	return shopgrep.SiteUnknown
}

// hasSelector checks if the document contains at least one element matching the selector.
func (d *Detector) hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}

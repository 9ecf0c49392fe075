package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shopgrep"
)

// currencyPriceRe matches a displayed price with an explicit currency
// marker. The first submatch is the numeric part.
var currencyPriceRe = regexp.MustCompile(`(?i)(?:₹|\$|€|£|Rs\.?\s*|INR\s*)([\d,]+\d)`)

// paginationSelectors identify next-page and numbered-page links across
// the supported storefronts plus the common rel=next convention.
var paginationSelectors = []string{
	"a[rel='next']",
	".s-pagination-container a[href]",
	"nav[aria-label='pagination'] a[href]",
	".pagination a[href]",
	"a[href*='page=']",
	"a[href*='currentPage=']",
}

// ExtractPaginationLinks finds continuation links on a listing page.
// Links are resolved against baseURL, restricted to the same host,
// stripped of fragments, and deduplicated in document order.
func ExtractPaginationLinks(html string, baseURL string) ([]shopgrep.DiscoveredLink, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, shopgrep.Errorf(shopgrep.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, shopgrep.Errorf(shopgrep.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []shopgrep.DiscoveredLink

	for _, selector := range paginationSelectors {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			href, exists := sel.Attr("href")
			if !exists || href == "" {
				return
			}

			if isNonHTTPLink(href) {
				return
			}

			resolved := resolveURL(base, href)
			if resolved == "" {
				return
			}

			// Filter external links (exact host match)
			if !isSameHost(base, resolved) {
				return
			}

			if seen[resolved] {
				return
			}
			seen[resolved] = true

			links = append(links, shopgrep.DiscoveredLink{
				URL:      resolved,
				Priority: shopgrep.PriorityPagination,
				Source:   "pagination",
			})
		})
	}

	return links, nil
}

// resolveURL resolves a relative URL against a base URL.
// Returns empty string if the href cannot be parsed or if the resolved URL
// is self-referential (same as base URL after stripping fragment).
// Fragments are stripped from the resolved URL for deduplication purposes.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	result := resolved.String()
	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if result == baseNoFragment.String() {
		return ""
	}
	return result
}

// isSameHost checks if the resolved URL has the same host as the base URL.
// This uses exact host matching - subdomains are considered different hosts.
func isSameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return u.Host == base.Host
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}

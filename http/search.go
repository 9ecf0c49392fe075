package http

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/shopgrep"
)

// SearchURL builds the listing-page URL for a query on a storefront.
// Page numbers start at 1. Unknown storefronts fall back to a DuckDuckGo
// HTML search, which needs no API key and renders server-side.
func SearchURL(site shopgrep.Site, query shopgrep.Query, page int) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}
	if len(query.Keywords) == 0 {
		return "", shopgrep.Errorf(shopgrep.EINVALID, "search keywords required")
	}
	if page < 1 {
		page = 1
	}

	terms := url.QueryEscape(strings.Join(query.Keywords, " "))

	switch site {
	case shopgrep.SiteAmazon:
		u := "https://www.amazon.in/s?k=" + terms
		if page > 1 {
			u += fmt.Sprintf("&page=%d", page)
		}
		return u, nil
	case shopgrep.SiteFlipkart:
		u := "https://www.flipkart.com/search?q=" + terms
		if page > 1 {
			u += fmt.Sprintf("&page=%d", page)
		}
		return u, nil
	case shopgrep.SiteCroma:
		u := "https://www.croma.com/searchB?q=" + terms + "%3Arelevance&text=" + terms
		if page > 1 {
			u += fmt.Sprintf("&currentPage=%d", page-1)
		}
		return u, nil
	case shopgrep.SiteTataCliq:
		u := "https://www.tatacliq.com/search/?searchCategory=all&text=" + terms
		if page > 1 {
			u += fmt.Sprintf("&page=%d", page)
		}
		return u, nil
	default:
		return "https://html.duckduckgo.com/html/?q=" + terms + "+price", nil
	}
}

// SearchLinks builds frontier links for the first n result pages of a
// query. Page one carries search priority; continuations carry pagination
// priority so the crawler prefers fresh results over deep pages.
//
// Unknown storefronts get a single link: the DuckDuckGo fallback has no
// stable pagination scheme.
func SearchLinks(site shopgrep.Site, query shopgrep.Query, pages int) ([]shopgrep.DiscoveredLink, error) {
	if pages < 1 {
		pages = 1
	}
	if site == shopgrep.SiteUnknown {
		pages = 1
	}

	links := make([]shopgrep.DiscoveredLink, 0, pages)
	for page := 1; page <= pages; page++ {
		u, err := SearchURL(site, query, page)
		if err != nil {
			return nil, err
		}
		link := shopgrep.DiscoveredLink{URL: u, Priority: shopgrep.PrioritySearch, Source: "search"}
		if page > 1 {
			link.Priority = shopgrep.PriorityPagination
			link.Source = "pagination"
		}
		links = append(links, link)
	}
	return links, nil
}

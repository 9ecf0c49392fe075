package crawl

import (
	"context"

	"github.com/fwojciec/shopgrep"
)

// jsRequired records which storefronts serve usable listing HTML to a
// plain HTTP client. Flipkart and Tata CLiQ render result grids
// client-side; Amazon and Croma ship them in the initial response.
var jsRequired = map[shopgrep.Site]bool{
	shopgrep.SiteAmazon:   false,
	shopgrep.SiteCroma:    false,
	shopgrep.SiteFlipkart: true,
	shopgrep.SiteTataCliq: true,
}

// PickFetcher probes the URL to determine the cheapest fetcher that still
// sees the product cards.
//
// Logic:
//  1. HTTP fetch the probe URL
//  2. Detect the storefront
//  3. If known storefront, choose HTTP or browser based on whether it
//     renders listings client-side
//  4. If unknown, browser-fetch and compare content, choose based on
//     differences
//  5. If HTTP fails, fall back to the browser
func PickFetcher(
	ctx context.Context,
	probeURL string,
	httpFetcher, browserFetcher shopgrep.Fetcher,
	detector shopgrep.SiteDetector,
	extractor shopgrep.Extractor,
) shopgrep.Fetcher {
	httpHTML, httpErr := httpFetcher.Fetch(ctx, probeURL)
	if httpErr != nil {
		return browserFetcher
	}

	site := detector.Detect(httpHTML)
	if needsJS, known := jsRequired[site]; known && site != shopgrep.SiteUnknown {
		if needsJS {
			return browserFetcher
		}
		return httpFetcher
	}

	// Unknown storefront: compare static vs rendered content
	renderedHTML, renderErr := browserFetcher.Fetch(ctx, probeURL)
	if renderErr != nil {
		return httpFetcher
	}

	if ContentDiffers(httpHTML, renderedHTML, extractor) {
		return browserFetcher
	}
	return httpFetcher
}

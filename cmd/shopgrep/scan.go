package main

import (
	"fmt"
	"regexp"

	"github.com/fwojciec/shopgrep"
	"github.com/fwojciec/shopgrep/crawl"
	shophttp "github.com/fwojciec/shopgrep/http"
)

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	site := shopgrep.Site(c.Site)
	query := shopgrep.Query{
		Keywords: c.Keywords,
		MinPrice: c.MinPrice,
		MaxPrice: c.MaxPrice,
	}

	seeds, err := shophttp.SearchLinks(site, query, c.Pages)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shopgrep.ErrorMessage(err))
		return err
	}

	if c.Sitemap != "" {
		extra, err := c.sitemapSeeds(deps)
		if err != nil {
			return err
		}
		seeds = append(seeds, extra...)
	}

	fetcher, err := c.pickFetcher(deps, seeds[0].URL)
	if err != nil {
		return err
	}
	deps.Scanner.Fetcher = fetcher

	scan := &shopgrep.Scan{Site: c.Site, Query: query}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Scanning %s for %v\n", c.Site, c.Keywords)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", crawl.TruncateURL(event.URL, 60), event.Error)
		case crawl.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  fetched %s\n", crawl.TruncateURL(event.URL, 60))
		}
	}

	result, err := deps.Scanner.Scan(deps.Ctx, scan, seeds, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shopgrep.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Scan %s: %d products from %d pages (%d failed, %s, %s)\n",
		scan.ID, result.Products, result.Pages, result.Failed,
		crawl.FormatBytes(result.Bytes), crawl.FormatTokens(result.Tokens))

	products, err := deps.Products.FindProducts(deps.Ctx, shopgrep.ProductFilter{ScanID: &scan.ID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shopgrep.ErrorMessage(err))
		return err
	}
	printProducts(deps.Stdout, products)

	return nil
}

// sitemapSeeds discovers additional page URLs from the site's sitemap.
// Discovery failures are reported but do not abort the scan; the search
// seeds alone are still worth fetching.
func (c *ScanCmd) sitemapSeeds(deps *Dependencies) ([]shopgrep.DiscoveredLink, error) {
	var filter *shopgrep.URLFilter
	if c.SitemapFilter != "" {
		re, err := regexp.Compile(c.SitemapFilter)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: invalid --sitemap-filter: %v\n", err)
			return nil, shopgrep.Errorf(shopgrep.EINVALID, "invalid --sitemap-filter %q", c.SitemapFilter)
		}
		filter = &shopgrep.URLFilter{Include: []*regexp.Regexp{re}}
	}

	urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.Sitemap, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "  sitemap discovery failed: %v\n", err)
		return nil, nil
	}

	links := make([]shopgrep.DiscoveredLink, 0, len(urls))
	for _, u := range urls {
		links = append(links, shopgrep.DiscoveredLink{
			URL:      u,
			Priority: shopgrep.PriorityDiscovered,
			Source:   "sitemap",
		})
	}
	return links, nil
}

// pickFetcher resolves the --static/--browser flags, probing the first
// seed URL when neither forces a choice.
func (c *ScanCmd) pickFetcher(deps *Dependencies, probeURL string) (shopgrep.Fetcher, error) {
	if c.Browser {
		if deps.BrowserFetcher == nil {
			return nil, shopgrep.Errorf(shopgrep.EINVALID, "--browser conflicts with --static")
		}
		return deps.BrowserFetcher, nil
	}
	if c.Static || deps.BrowserFetcher == nil {
		return deps.HTTPFetcher, nil
	}
	return crawl.PickFetcher(deps.Ctx, probeURL, deps.HTTPFetcher, deps.BrowserFetcher, deps.Detector, deps.Extractor), nil
}

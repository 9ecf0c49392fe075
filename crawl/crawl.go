// Package crawl provides scan orchestration. It coordinates fetching of
// search-result pages, pagination discovery, product extraction, and
// storage of scan results.
package crawl

import (
	"context"
	"net/url"
	"time"

	"github.com/fwojciec/shopgrep"
	"github.com/fwojciec/shopgrep/goquery"
)

// DefaultMaxScanPages caps fetched pages per scan to keep runaway
// pagination chains in check.
const DefaultMaxScanPages = 25

// Scanner orchestrates one scan: it drains a frontier of result-page
// URLs, extracts products from each page, and stores the outcome.
//
// Two extraction paths are tried per page. When Selectors is set and the
// storefront's DOM selector yields products, those are used directly.
// Otherwise the page is reduced to markdown and handed to the text
// pipeline.
type Scanner struct {
	Fetcher      shopgrep.Fetcher
	Extractor    shopgrep.Extractor
	Converter    shopgrep.Converter
	Pipeline     shopgrep.ProductExtractor
	Selectors    shopgrep.ProductSelectorRegistry
	Scans        shopgrep.ScanService
	Products     shopgrep.ProductService
	TokenCounter shopgrep.TokenCounter
	RateLimiter  shopgrep.DomainLimiter
	Concurrency  int
	RetryDelays  []time.Duration
	MaxPages     int

	// FollowPagination enables pushing continuation links found on
	// fetched pages onto the frontier.
	FollowPagination bool
}

// Result holds the outcome of a scan operation.
type Result struct {
	Pages    int
	Failed   int
	Products int
	Bytes    int
	Tokens   int
}

// ProgressEvent reports progress during a scan operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting scan progress.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of processing a single result page.
type pageResult struct {
	url        string
	hash       string
	discovered []shopgrep.DiscoveredLink
	products   []*shopgrep.Product
	bytes      int
	tokens     int
	err        error
}

// Scan fetches result pages starting from the seeds, extracts products
// matching the scan's query, and stores everything under the scan. The
// progress callback, if provided, receives events as scanning proceeds.
func (s *Scanner) Scan(ctx context.Context, scan *shopgrep.Scan, seeds []shopgrep.DiscoveredLink, progress ProgressFunc) (*Result, error) {
	if err := scan.Validate(); err != nil {
		return nil, err
	}
	if len(seeds) == 0 {
		return nil, shopgrep.Errorf(shopgrep.EINVALID, "at least one seed URL required")
	}

	if s.Scans != nil {
		if err := s.Scans.CreateScan(ctx, scan); err != nil {
			return nil, err
		}
	}

	maxPages := s.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxScanPages
	}

	// Scope discovered links to the seed host
	seedURL, err := url.Parse(seeds[0].URL)
	if err != nil {
		return nil, shopgrep.Errorf(shopgrep.EINVALID, "invalid seed URL: %v", err)
	}
	host := seedURL.Host

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(seeds)})
	}

	var result Result
	var products []*shopgrep.Product
	seenKeys := make(map[string]bool)
	seenContent := make(map[string]bool)
	completed := 0

	handleResult := func(res *pageResult, frontier *Frontier) {
		if s.FollowPagination {
			for _, link := range res.discovered {
				linkURL, err := url.Parse(link.URL)
				if err != nil || linkURL.Host != host {
					continue
				}
				frontier.Push(link)
			}
		}

		completed++

		if res.err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: completed,
					Total:     len(seeds),
					URL:       res.url,
					Error:     res.err,
				})
			}
			return
		}

		result.Pages++
		result.Bytes += res.bytes
		result.Tokens += res.tokens

		// Different URLs can serve byte-identical pages; count them but
		// take their products only once.
		if res.hash != "" && seenContent[res.hash] {
			return
		}
		seenContent[res.hash] = true

		for _, p := range res.products {
			key := p.Key()
			if seenKeys[key] {
				continue
			}
			seenKeys[key] = true
			products = append(products, p)
		}

		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: completed,
				Total:     len(seeds),
				URL:       res.url,
			})
		}
	}

	if err := s.walkFrontier(ctx, seeds, maxPages, scan.Query, handleResult); err != nil {
		return nil, err
	}

	// Renumber across pages so stored order is scan order
	for i, p := range products {
		p.Position = i
	}

	if s.Products != nil && len(products) > 0 {
		if err := s.Products.CreateProducts(ctx, scan.ID, products); err != nil {
			return nil, err
		}
	}
	result.Products = len(products)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: completed, Total: len(seeds)})
	}

	return &result, nil
}

// processLink fetches and processes a single result page.
func (s *Scanner) processLink(ctx context.Context, link shopgrep.DiscoveredLink, query shopgrep.Query) pageResult {
	result := pageResult{url: link.URL}

	linkURL, err := url.Parse(link.URL)
	if err != nil {
		result.err = err
		return result
	}

	if s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(ctx, linkURL.Host); err != nil {
			result.err = err
			return result
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	fetchFn := func(ctx context.Context, url string) (string, error) {
		return s.Fetcher.Fetch(ctx, url)
	}
	html, err := FetchWithRetryDelays(ctx, link.URL, fetchFn, nil, delays)
	if err != nil {
		result.err = err
		return result
	}
	result.hash = ComputeHash(html)

	if s.FollowPagination {
		if links, err := goquery.ExtractPaginationLinks(html, link.URL); err == nil {
			result.discovered = links
		}
	}

	products, bytes, err := s.extractFromPage(ctx, link.URL, html, query)
	if err != nil {
		result.err = err
		return result
	}
	result.products = products
	result.bytes = bytes

	if s.TokenCounter != nil && bytes > 0 {
		if tokens, err := s.TokenCounter.CountTokens(ctx, html); err == nil {
			result.tokens = tokens
		}
	}

	return result
}

// extractFromPage extracts products from one page's HTML. The DOM fast
// path wins when it produces anything; an empty DOM result falls through
// to the text pipeline rather than being trusted, since rotted selectors
// and empty pages look the same.
func (s *Scanner) extractFromPage(ctx context.Context, pageURL, html string, query shopgrep.Query) ([]*shopgrep.Product, int, error) {
	if s.Selectors != nil {
		selector := s.Selectors.GetForHTML(html)
		if selector != nil {
			if products, err := selector.SelectProducts(html, query); err == nil && len(products) > 0 {
				return products, len(html), nil
			}
		}
	}

	extracted, err := s.Extractor.Extract(html)
	if err != nil {
		return nil, 0, err
	}

	markdown, err := s.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, 0, err
	}

	doc := &shopgrep.Document{
		SourceURL: pageURL,
		Content:   markdown,
		FetchedAt: time.Now(),
	}

	products, err := s.Pipeline.ExtractProducts(ctx, doc, query)
	if err != nil {
		return nil, 0, err
	}
	return products, len(markdown), nil
}

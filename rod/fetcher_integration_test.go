//go:build integration

package rod_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/shopgrep/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Integration_BooksToScrape(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)
	defer fetcher.Close()

	// books.toscrape.com is a stable public scraping sandbox with a
	// product-listing layout (titles, prices, availability).
	html, err := fetcher.Fetch(ctx, "https://books.toscrape.com/")
	require.NoError(t, err)
	assert.NotEmpty(t, html, "expected non-empty HTML response")

	// Verify HTML document structure
	assert.True(t, strings.HasPrefix(strings.TrimSpace(strings.ToLower(html)), "<!doctype html>") ||
		strings.HasPrefix(strings.TrimSpace(strings.ToLower(html)), "<html"),
		"expected valid HTML document start")
	assert.Contains(t, html, "<body", "expected body tag")
	assert.Contains(t, html, "</html>", "expected closing html tag")

	// Verify listing content rendered: product cards carry prices and
	// stock labels
	assert.Contains(t, html, "price_color", "expected price elements")
	assert.Contains(t, html, "In stock", "expected availability labels")

	t.Logf("Fetched %d bytes from books.toscrape.com", len(html))
}

func TestFetcher_Integration_QuotesJSRendered(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)
	defer fetcher.Close()

	// quotes.toscrape.com/js renders its content entirely with
	// JavaScript, so a plain HTTP fetch would return empty containers.
	html, err := fetcher.Fetch(ctx, "https://quotes.toscrape.com/js/")
	require.NoError(t, err)
	assert.NotEmpty(t, html, "expected non-empty HTML response")

	// The quote text only exists after script execution
	assert.Contains(t, html, "class=\"text\"", "expected rendered quote elements")

	t.Logf("Fetched %d bytes from quotes.toscrape.com/js/", len(html))
}

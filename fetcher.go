package shopgrep

import "context"

// Fetcher retrieves rendered HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// listings; the pipeline itself never constructs or validates URLs.
type Fetcher interface {
	// Fetch navigates to the URL, waits for the page to render, and
	// returns the HTML. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases fetcher resources (browser processes, connections).
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

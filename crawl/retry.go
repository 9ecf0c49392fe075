package crawl

import (
	"context"
	"time"
)

// FetchFunc fetches the HTML of one result page.
type FetchFunc func(ctx context.Context, url string) (string, error)

// LogFunc receives retry diagnostics.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays between page fetch
// attempts: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetry fetches a result page with the default backoff delays.
// Storefronts throttle and reset connections routinely, so a page gets
// several attempts before it counts as failed.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, logger LogFunc) (string, error) {
	return FetchWithRetryDelays(ctx, url, fetch, logger, DefaultRetryDelays())
}

// FetchWithRetryDelays is FetchWithRetry with caller-supplied delays.
// One attempt is made per delay plus the initial attempt; an empty slice
// means a single attempt.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logger LogFunc, delays []time.Duration) (string, error) {
	for attempt := 0; ; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}

		if attempt >= len(delays) {
			return "", err
		}

		if logger != nil {
			logger("  retry %s (attempt %d): %v", url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}
}

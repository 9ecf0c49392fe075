package shopgrep

import "context"

// LinkPriority represents crawl priority (higher = more important).
type LinkPriority int

// Link priority levels for scan ordering. Direct search-result URLs beat
// pagination continuations, which beat anything discovered incidentally.
const (
	PriorityIgnore     LinkPriority = 0
	PriorityDiscovered LinkPriority = 10
	PriorityPagination LinkPriority = 50
	PrioritySearch     LinkPriority = 100
)

// DiscoveredLink represents a result-page URL with priority metadata.
type DiscoveredLink struct {
	URL      string
	Priority LinkPriority
	Source   string // "search", "pagination", "sitemap"
}

// URLFrontier manages a scan queue with deduplication.
type URLFrontier interface {
	// Push adds a link to the frontier.
	// Returns false if the URL has already been seen.
	Push(link DiscoveredLink) bool

	// Pop returns the next URL by priority.
	// Returns false if the frontier is empty.
	Pop() (DiscoveredLink, bool)

	// Len returns the number of URLs in the queue.
	Len() int

	// Seen returns true if the URL has been processed or queued.
	Seen(url string) bool
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

package crawl

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/shopgrep"
)

// Frontier configuration for scans.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.01
)

// walkResultHandler handles a completed pageResult. It is called
// sequentially from the coordinator, so it may mutate shared state and
// push newly discovered links onto the frontier without locking.
type walkResultHandler func(result *pageResult, frontier *Frontier)

// walkFrontier manages concurrent page processing over a frontier seeded
// with the given links. It handles:
//   - Frontier management with Bloom filter deduplication
//   - Concurrent worker pool
//   - Work dispatch and result collection
//
// Processing stops once maxPages pages have been dispatched.
func (s *Scanner) walkFrontier(
	ctx context.Context,
	seeds []shopgrep.DiscoveredLink,
	maxPages int,
	query shopgrep.Query,
	handleResult walkResultHandler,
) error {
	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	for _, seed := range seeds {
		frontier.Push(seed)
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	// Channels for worker coordination
	workCh := make(chan shopgrep.DiscoveredLink, concurrency)
	resultCh := make(chan pageResult)

	var wg sync.WaitGroup
	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for link := range workCh {
				result := s.processLink(ctx, link, query)
				select {
				case resultCh <- result:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	// Close result channel when all workers are done
	go func() {
		wg.Wait()
		close(resultCh)
	}()

	// Coordinator loop
	dispatched := 0
	pending := 0
	var nextLink *shopgrep.DiscoveredLink

	if link, ok := frontier.Pop(); ok {
		nextLink = &link
	}

coordinatorLoop:
	for {
		if nextLink == nil && pending == 0 {
			break coordinatorLoop
		}

		if ctx.Err() != nil {
			break coordinatorLoop
		}

		// Try to dispatch work or receive results
		if nextLink != nil && dispatched < maxPages {
			select {
			case <-ctx.Done():
				break coordinatorLoop
			case workCh <- *nextLink:
				dispatched++
				pending++
				nextLink = nil
			case res := <-resultCh:
				pending--
				handleResult(&res, frontier)
			}
		} else {
			// No more work to dispatch, just receive results
			select {
			case <-ctx.Done():
				break coordinatorLoop
			case res, ok := <-resultCh:
				if !ok {
					break coordinatorLoop
				}
				pending--
				handleResult(&res, frontier)
			}
		}

		if nextLink == nil && dispatched < maxPages {
			if link, ok := frontier.Pop(); ok {
				nextLink = &link
			}
		}
	}

	// Signal workers to stop and drain remaining results
	close(workCh)

	drainTimeout := time.After(5 * time.Second)
drainLoop:
	for {
		select {
		case res, ok := <-resultCh:
			if !ok {
				break drainLoop
			}
			handleResult(&res, frontier)
		case <-drainTimeout:
			break drainLoop
		}
	}

	return nil
}

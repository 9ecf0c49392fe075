// Package extract implements the product extraction pipeline: noise
// filtering, block segmentation, model-assisted batch extraction with a
// deterministic pattern-based fallback, and final filtering/deduplication.
//
// The pipeline consumes markdown-like page captures produced by a crawling
// collaborator and never fetches anything itself. A document yielding zero
// products is a valid outcome; the only errors it returns are invalid
// queries.
package extract

import (
	"context"
	"strings"

	"github.com/fwojciec/shopgrep"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Tunables with defaults applied when the corresponding Pipeline field is
// zero.
const (
	// DefaultMinBlockLen is the minimum character length of a segmented
	// block. Shorter spans are overwhelmingly navigation chrome.
	DefaultMinBlockLen = 90

	// DefaultBatchCharBudget bounds the joined block text of one model
	// request, separators included, so a batch fits the generator's
	// context window.
	DefaultBatchCharBudget = 7000

	// DefaultConcurrency bounds concurrent model requests and concurrent
	// document invocations.
	DefaultConcurrency = 4

	// DefaultTemperature keeps extraction prompts near-deterministic.
	DefaultTemperature = 0.1
)

// Ensure Pipeline implements shopgrep.ProductExtractor at compile time.
var _ shopgrep.ProductExtractor = (*Pipeline)(nil)

// Pipeline runs the two-strategy extraction over page captures.
//
// The model strategy runs first: blocks are packed into batches and sent
// concurrently to the Generator. Whenever that attempt errors or produces
// zero candidates, the deterministic field extractor runs over every
// surviving block instead. The fallback always executes in that case;
// "model not attempted" and "model silently failed" are never conflated.
type Pipeline struct {
	// Generator is the text-generation collaborator. Nil disables the
	// model strategy, leaving the deterministic extractor.
	Generator shopgrep.Generator

	// Limiter, when set, throttles generation requests. It is the only
	// resource shared between concurrent batches and must be used via
	// Wait (safe for concurrent use).
	Limiter *rate.Limiter

	// Prices selects which in-range price token wins within a block.
	Prices PriceStrategy

	// Stats, when set, receives per-document counters.
	Stats shopgrep.StatsFunc

	Concurrency     int
	MinBlockLen     int
	BatchCharBudget int
	Temperature     float32
}

// ExtractProducts extracts query-matching products from one document.
func (p *Pipeline) ExtractProducts(ctx context.Context, doc *shopgrep.Document, query shopgrep.Query) ([]*shopgrep.Product, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, shopgrep.Errorf(shopgrep.EINVALID, "document required")
	}

	var stats shopgrep.Stats

	cleaned := Clean(doc.Content)
	spans := splitBlocks(cleaned)
	stats.RawBlocks = len(spans)

	blocks := filterBlocks(spans, query, p.minBlockLen())
	stats.FilteredBlocks = len(blocks)

	candidates, attempted, failed := p.runBatches(ctx, blocks, query)
	stats.ModelBatches = attempted
	stats.FailedBatches = failed
	stats.ModelCandidates = len(candidates)

	if len(candidates) == 0 {
		// Deterministic fallback: the model was not configured, every
		// batch failed, or the response held nothing usable.
		for _, b := range blocks {
			if c := Fields(b, query, p.Prices); c != nil {
				candidates = append(candidates, c)
			}
		}
		stats.FallbackCandidates = len(candidates)
	}

	products := Finalize(candidates, query)
	for i, product := range products {
		product.Position = i
	}
	stats.FinalProducts = len(products)

	if p.Stats != nil {
		p.Stats(doc, stats)
	}

	return products, nil
}

// ExtractProductsMany processes documents concurrently, each as an
// independent pipeline invocation, and concatenates results in document
// order. A document that fails contributes nothing but does not abort its
// siblings.
func (p *Pipeline) ExtractProductsMany(ctx context.Context, docs []*shopgrep.Document, query shopgrep.Query) ([]*shopgrep.Product, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	results := make([][]*shopgrep.Product, len(docs))

	g := new(errgroup.Group)
	g.SetLimit(p.concurrency())
	for i, doc := range docs {
		g.Go(func() error {
			products, err := p.ExtractProducts(ctx, doc, query)
			if err != nil {
				return nil
			}
			results[i] = products
			return nil
		})
	}
	_ = g.Wait()

	var all []*shopgrep.Product
	for _, products := range results {
		all = append(all, products...)
	}
	return all, nil
}

func (p *Pipeline) concurrency() int {
	if p.Concurrency > 0 {
		return p.Concurrency
	}
	return DefaultConcurrency
}

func (p *Pipeline) minBlockLen() int {
	if p.MinBlockLen > 0 {
		return p.MinBlockLen
	}
	return DefaultMinBlockLen
}

func (p *Pipeline) batchCharBudget() int {
	if p.BatchCharBudget > 0 {
		return p.BatchCharBudget
	}
	return DefaultBatchCharBudget
}

func (p *Pipeline) temperature() float32 {
	if p.Temperature > 0 {
		return p.Temperature
	}
	return DefaultTemperature
}

// hasContent reports whether a span holds anything beyond whitespace.
func hasContent(s string) bool {
	return strings.TrimSpace(s) != ""
}

package shopgrep

import "context"

// Stats are the pipeline's per-document counters, emitted for diagnostics.
// How they are persisted is up to the caller; the slog decorator logs them.
type Stats struct {
	// RawBlocks is the number of spans produced by segmentation before
	// filtering.
	RawBlocks int `json:"raw_blocks"`

	// FilteredBlocks is the number of blocks that survived filtering and
	// reached an extraction strategy.
	FilteredBlocks int `json:"filtered_blocks"`

	// ModelBatches and FailedBatches count model extraction requests.
	ModelBatches  int `json:"model_batches"`
	FailedBatches int `json:"failed_batches"`

	// ModelCandidates and FallbackCandidates count candidates per
	// strategy. At most one of the two is non-zero for a given document.
	ModelCandidates    int `json:"model_candidates"`
	FallbackCandidates int `json:"fallback_candidates"`

	// FinalProducts is the number of products after the post-filter,
	// deduplication, and the query gate.
	FinalProducts int `json:"final_products"`
}

// StatsFunc receives the counters for one completed document.
type StatsFunc func(doc *Document, stats Stats)

// ProductExtractor runs the extraction pipeline over page captures.
type ProductExtractor interface {
	// ExtractProducts extracts query-matching products from one document.
	// A document yielding zero products is a valid outcome, not an error;
	// the only returned errors are invalid queries and context
	// cancellation.
	ExtractProducts(ctx context.Context, doc *Document, query Query) ([]*Product, error)

	// ExtractProductsMany processes documents concurrently, each as an
	// independent pipeline invocation, and concatenates results in
	// document order. One document's failure does not abort the others.
	ExtractProductsMany(ctx context.Context, docs []*Document, query Query) ([]*Product, error)
}

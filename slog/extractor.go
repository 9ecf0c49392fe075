package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/shopgrep"
)

// Ensure LoggingProductExtractor implements shopgrep.ProductExtractor.
var _ shopgrep.ProductExtractor = (*LoggingProductExtractor)(nil)

// LoggingProductExtractor wraps a ProductExtractor with per-document
// logging.
type LoggingProductExtractor struct {
	next   shopgrep.ProductExtractor
	logger *slog.Logger
}

// NewLoggingProductExtractor creates a new LoggingProductExtractor.
func NewLoggingProductExtractor(next shopgrep.ProductExtractor, logger *slog.Logger) *LoggingProductExtractor {
	return &LoggingProductExtractor{next: next, logger: logger}
}

// ExtractProducts delegates to the wrapped extractor and logs the
// operation.
func (e *LoggingProductExtractor) ExtractProducts(ctx context.Context, doc *shopgrep.Document, query shopgrep.Query) (products []*shopgrep.Product, err error) {
	defer func(begin time.Time) {
		url := ""
		if doc != nil {
			url = doc.SourceURL
		}
		e.logger.Info("extract products",
			"url", url,
			"products", len(products),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractProducts(ctx, doc, query)
}

// ExtractProductsMany delegates to the wrapped extractor and logs the
// operation.
func (e *LoggingProductExtractor) ExtractProductsMany(ctx context.Context, docs []*shopgrep.Document, query shopgrep.Query) (products []*shopgrep.Product, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract products many",
			"documents", len(docs),
			"products", len(products),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractProductsMany(ctx, docs, query)
}

// StatsLogger returns a shopgrep.StatsFunc that logs pipeline counters
// for each completed document.
func StatsLogger(logger *slog.Logger) shopgrep.StatsFunc {
	return func(doc *shopgrep.Document, stats shopgrep.Stats) {
		url := ""
		if doc != nil {
			url = doc.SourceURL
		}
		logger.Debug("pipeline stats",
			"url", url,
			"raw_blocks", stats.RawBlocks,
			"filtered_blocks", stats.FilteredBlocks,
			"model_batches", stats.ModelBatches,
			"failed_batches", stats.FailedBatches,
			"model_candidates", stats.ModelCandidates,
			"fallback_candidates", stats.FallbackCandidates,
			"final_products", stats.FinalProducts,
		)
	}
}

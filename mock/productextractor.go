package mock

import (
	"context"

	"github.com/fwojciec/shopgrep"
)

var _ shopgrep.ProductExtractor = (*ProductExtractor)(nil)

// ProductExtractor is a mock implementation of shopgrep.ProductExtractor.
type ProductExtractor struct {
	ExtractProductsFn     func(ctx context.Context, doc *shopgrep.Document, query shopgrep.Query) ([]*shopgrep.Product, error)
	ExtractProductsManyFn func(ctx context.Context, docs []*shopgrep.Document, query shopgrep.Query) ([]*shopgrep.Product, error)
}

func (e *ProductExtractor) ExtractProducts(ctx context.Context, doc *shopgrep.Document, query shopgrep.Query) ([]*shopgrep.Product, error) {
	return e.ExtractProductsFn(ctx, doc, query)
}

func (e *ProductExtractor) ExtractProductsMany(ctx context.Context, docs []*shopgrep.Document, query shopgrep.Query) ([]*shopgrep.Product, error) {
	return e.ExtractProductsManyFn(ctx, docs, query)
}

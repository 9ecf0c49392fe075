package mock

import (
	"io"

	"github.com/fwojciec/shopgrep"
)

var _ shopgrep.ProductWriter = (*ProductWriter)(nil)

// ProductWriter is a mock implementation of shopgrep.ProductWriter.
type ProductWriter struct {
	WriteProductsFn func(w io.Writer, products []*shopgrep.Product) error
}

func (p *ProductWriter) WriteProducts(w io.Writer, products []*shopgrep.Product) error {
	return p.WriteProductsFn(w, products)
}

package shopgrep

import "io"

// ProductWriter renders products to a stream in some export format.
// Implementations exist for CSV and XLSX.
type ProductWriter interface {
	WriteProducts(w io.Writer, products []*Product) error
}

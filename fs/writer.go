// Package fs provides file-based export for extracted products.
package fs

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/shopgrep"
)

// csvHeader is the column layout of exported CSV files.
var csvHeader = []string{
	"position", "title", "price", "rating", "discount", "offers",
	"availability", "quantity", "link", "image", "tags",
}

// Ensure CSVWriter implements shopgrep.ProductWriter at compile time.
var _ shopgrep.ProductWriter = (*CSVWriter)(nil)

// CSVWriter renders products as CSV, one row per product, header first.
type CSVWriter struct{}

// NewCSVWriter creates a new CSVWriter.
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{}
}

// WriteProducts writes all products to w in CSV format.
func (cw *CSVWriter) WriteProducts(w io.Writer, products []*shopgrep.Product) error {
	enc := csv.NewWriter(w)

	if err := enc.Write(csvHeader); err != nil {
		return err
	}

	for _, p := range products {
		price := ""
		if p.Price != nil {
			price = strconv.Itoa(*p.Price)
		}

		row := []string{
			strconv.Itoa(p.Position),
			p.Title,
			price,
			p.Rating,
			p.Discount,
			p.Offers,
			p.Availability,
			p.Quantity,
			p.Link,
			p.Image,
			strings.Join(p.Tags, ";"),
		}
		if err := enc.Write(row); err != nil {
			return err
		}
	}

	enc.Flush()
	return enc.Error()
}

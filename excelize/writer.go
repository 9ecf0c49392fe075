// Package excelize provides an XLSX implementation of shopgrep.ProductWriter.
package excelize

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/shopgrep"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Products"

var header = []string{
	"Position", "Title", "Price", "Rating", "Discount", "Offers",
	"Availability", "Quantity", "Link", "Image", "Tags",
}

// Ensure Writer implements shopgrep.ProductWriter at compile time.
var _ shopgrep.ProductWriter = (*Writer)(nil)

// Writer renders products as a single-sheet XLSX workbook.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteProducts writes all products to w as an XLSX workbook.
func (xw *Writer) WriteProducts(w io.Writer, products []*shopgrep.Product) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, p := range products {
		// Price stays numeric so spreadsheet sorting and formulas work.
		var price any
		if p.Price != nil {
			price = *p.Price
		}

		row := []any{
			p.Position,
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

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

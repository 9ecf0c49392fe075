package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/shopgrep"
	shopxlsx "github.com/fwojciec/shopgrep/excelize"
	"github.com/fwojciec/shopgrep/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	var writer shopgrep.ProductWriter
	switch filepath.Ext(c.Path) {
	case ".csv":
		writer = fs.NewCSVWriter()
	case ".xlsx":
		writer = shopxlsx.NewWriter()
	default:
		fmt.Fprintf(deps.Stderr, "error: unsupported export format %q (use .csv or .xlsx)\n", filepath.Ext(c.Path))
		return shopgrep.Errorf(shopgrep.EINVALID, "unsupported export format %q", filepath.Ext(c.Path))
	}

	scan, err := deps.Scans.FindScanByID(deps.Ctx, c.Scan)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: scan %q not found. Use 'shopgrep list' to see available scans.\n", c.Scan)
		return err
	}

	products, err := deps.Products.FindProducts(deps.Ctx, shopgrep.ProductFilter{ScanID: &scan.ID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shopgrep.ErrorMessage(err))
		return err
	}

	if err := fs.ExportFile(c.Path, writer, products); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d products to %s\n", len(products), c.Path)
	return nil
}

package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/shopgrep"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	if c.Scan != "" {
		return c.listProducts(deps)
	}

	scans, err := deps.Scans.FindScans(deps.Ctx, shopgrep.ScanFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shopgrep.ErrorMessage(err))
		return err
	}

	if len(scans) == 0 {
		fmt.Fprintln(deps.Stdout, "No scans found. Use 'shopgrep scan' to run one.")
		return nil
	}

	for _, s := range scans {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %q\n",
			s.ID, s.CreatedAt.Format("2006-01-02 15:04"), s.Site,
			strings.Join(s.Query.Keywords, " "))
	}

	return nil
}

func (c *ListCmd) listProducts(deps *Dependencies) error {
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

	fmt.Fprintf(deps.Stdout, "Products for scan %s (%s %q, %d total):\n\n",
		scan.ID, scan.Site, strings.Join(scan.Query.Keywords, " "), len(products))
	printProducts(deps.Stdout, products)

	return nil
}

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/shopgrep"
)

// printProducts writes a human-readable product listing.
func printProducts(w io.Writer, products []*shopgrep.Product) {
	if len(products) == 0 {
		fmt.Fprintln(w, "No products found.")
		return
	}

	for i, p := range products {
		fmt.Fprintf(w, "%3d. %s\n", i+1, p.Title)

		var details []string
		if p.Price != nil {
			details = append(details, fmt.Sprintf("₹%d", *p.Price))
		}
		if p.Rating != "" {
			details = append(details, p.Rating)
		}
		if p.Discount != "" {
			details = append(details, p.Discount)
		}
		if p.Availability != "" {
			details = append(details, p.Availability)
		}
		if len(details) > 0 {
			fmt.Fprintf(w, "     %s\n", strings.Join(details, "  "))
		}
		if p.Link != "" {
			fmt.Fprintf(w, "     %s\n", p.Link)
		}
	}
}

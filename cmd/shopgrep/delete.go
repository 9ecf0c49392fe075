package main

import (
	"fmt"

	"github.com/fwojciec/shopgrep"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return shopgrep.Errorf(shopgrep.EINVALID, "use --force to confirm deletion")
	}

	scan, err := deps.Scans.FindScanByID(deps.Ctx, c.Scan)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: scan %q not found. Use 'shopgrep list' to see available scans.\n", c.Scan)
		return err
	}

	if err := deps.Scans.DeleteScan(deps.Ctx, scan.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shopgrep.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted scan %s\n", scan.ID)
	return nil
}

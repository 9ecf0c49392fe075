package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fwojciec/shopgrep"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	query := shopgrep.Query{
		Keywords: c.Keywords,
		MinPrice: c.MinPrice,
		MaxPrice: c.MaxPrice,
	}

	content, source, err := c.readCapture()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	doc := &shopgrep.Document{
		SourceURL: source,
		Content:   content,
		FetchedAt: time.Now(),
	}

	products, err := deps.Pipeline.ExtractProducts(deps.Ctx, doc, query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shopgrep.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(products)
	}

	printProducts(deps.Stdout, products)
	return nil
}

func (c *ExtractCmd) readCapture() (content, source string, err error) {
	if c.File == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), "stdin", nil
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return "", "", fmt.Errorf("failed to read %q: %w", c.File, err)
	}
	return string(data), c.File, nil
}

// Package readability provides a go-readability implementation of
// shopgrep.Extractor. It is an alternative to the trafilatura extractor for
// pages where article-style heuristics work better.
package readability

import (
	"strings"

	"github.com/fwojciec/shopgrep"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements shopgrep.Extractor at compile time.
var _ shopgrep.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*shopgrep.ExtractResult, error) {
	if rawHTML == "" {
		return nil, shopgrep.Errorf(shopgrep.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &shopgrep.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}

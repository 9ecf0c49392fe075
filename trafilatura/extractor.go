// Package trafilatura provides a content-extraction implementation of
// shopgrep.Extractor built on go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/shopgrep"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// minContentLen is the smallest extraction considered usable. Listing
// pages are mostly repeated product cards, which boilerplate removal can
// mistake for navigation. Below this threshold Extract falls back to the
// full document body.
const minContentLen = 200

// Ensure Extractor implements shopgrep.Extractor at compile time.
var _ shopgrep.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content. If
// boilerplate removal leaves almost nothing, the full document body is
// returned instead so product cards are never lost.
func (e *Extractor) Extract(rawHTML string) (*shopgrep.ExtractResult, error) {
	if rawHTML == "" {
		return nil, shopgrep.Errorf(shopgrep.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	if len(contentHTML) < minContentLen {
		if body, ok := documentBody(rawHTML); ok && len(body) > len(contentHTML) {
			contentHTML = body
		}
	}

	return &shopgrep.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// documentBody renders the <body> element of the raw HTML.
func documentBody(rawHTML string) (string, bool) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return "", false
	}

	body := findElement(doc, "body")
	if body == nil {
		return "", false
	}

	rendered, err := renderNode(body)
	if err != nil {
		return "", false
	}
	return rendered, true
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

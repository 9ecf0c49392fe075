package crawl

import "github.com/fwojciec/shopgrep"

// ContentDiffers compares content extracted from statically fetched HTML
// vs browser-rendered HTML. Returns true if the rendered content is
// significantly longer (>50%), suggesting the storefront loads product
// cards with JavaScript. Also returns true on extraction errors (assumes
// rendering needed).
func ContentDiffers(staticHTML, renderedHTML string, extractor shopgrep.Extractor) bool {
	staticResult, err := extractor.Extract(staticHTML)
	if err != nil {
		return true
	}

	renderedResult, err := extractor.Extract(renderedHTML)
	if err != nil {
		return true
	}

	staticLen := len(staticResult.ContentHTML)
	renderedLen := len(renderedResult.ContentHTML)

	// Handle empty static content
	if staticLen == 0 && renderedLen > 0 {
		return true
	}

	// Check if rendered content is >50% longer
	threshold := float64(staticLen) * 1.5
	return float64(renderedLen) > threshold
}

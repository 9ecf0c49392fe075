package extract

import (
	"regexp"
	"strings"

	"github.com/fwojciec/shopgrep"
)

// uiArtifactPatterns reject candidate titles that are interface chrome
// rather than product names. Both strategies can produce these; the model
// occasionally transcribes a result-count banner as a "product".
var uiArtifactPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\d+\s*[-–]\s*\d+\s+of\b`),
	regexp.MustCompile(`(?i)^(?:show|see)\s+(?:more|all)\b`),
	regexp.MustCompile(`(?i)^(?:showing\s+)?results?\s+for\b`),
	regexp.MustCompile(`(?i)^(?:next|previous)\b.*\bpage\b`),
	regexp.MustCompile(`(?i)^page\s+\d+`),
	regexp.MustCompile(`(?i)^(?:sort|filter)\s+by\b`),
	regexp.MustCompile(`(?i)^(?:sign in|log ?in)\b`),
	regexp.MustCompile(`.+[›>].+[›>].+`),
}

// Finalize applies the shared last-stage filtering to candidates from
// either strategy: title plausibility, price bounds, first-seen
// deduplication, and the query gate. Input order is preserved, so the
// first occurrence of a duplicate wins and positions remain stable.
//
// Finalize is idempotent: running it over its own output returns the same
// products.
func Finalize(candidates []*shopgrep.Product, query shopgrep.Query) []*shopgrep.Product {
	seen := make(map[string]struct{}, len(candidates))
	products := make([]*shopgrep.Product, 0, len(candidates))

	for _, c := range candidates {
		if c == nil {
			continue
		}
		c.Title = strings.TrimSpace(c.Title)
		if isUIArtifact(c.Title) {
			continue
		}
		if len(strings.Fields(c.Title)) < shopgrep.MinTitleTokens {
			continue
		}
		if c.Price != nil && (*c.Price < shopgrep.PriceMin || *c.Price > shopgrep.PriceMax) {
			continue
		}

		key := c.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		if !query.AllowsPrice(c.Price) {
			continue
		}
		if !query.MatchesTitle(c.Title) {
			continue
		}
		products = append(products, c)
	}

	return products
}

func isUIArtifact(title string) bool {
	for _, re := range uiArtifactPatterns {
		if re.MatchString(title) {
			return true
		}
	}
	return false
}

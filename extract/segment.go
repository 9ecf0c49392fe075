package extract

import (
	"regexp"
	"strings"

	"github.com/fwojciec/shopgrep"
)

// Block is a candidate product region of a cleaned page capture. Pos is
// the zero-based index of the block within the document, before filtering,
// so positions reflect on-page order even after blocks are dropped.
type Block struct {
	Text string
	Pos  int
}

// Boundary markers that start a new block even without a preceding blank
// line: markdown headings, horizontal rules, and bold leads. Listing pages
// commonly render each product card as a heading or bold title.
var (
	headingRe  = regexp.MustCompile(`^#{1,6}\s`)
	hruleRe    = regexp.MustCompile(`^\s*(?:-{3,}|_{3,}|\*{3,})\s*$`)
	boldLeadRe = regexp.MustCompile(`^\*\*[^*]`)
)

// priceTokenRe recognizes a currency-bearing token anywhere in a block.
// It gates both segment retention and batch packing.
var priceTokenRe = regexp.MustCompile(`(?i)(?:₹|\$|€|£|Rs\.?\s|INR\s|USD\s|price\s*:?\s*₹?)\s*[\d,]+`)

// productVocabRe is a weaker retention signal for blocks that describe a
// product without quoting a price inline.
var productVocabRe = regexp.MustCompile(`(?i)\b(?:buy|price|offer|discount|deal|brand|stock|delivery|rating|review|warranty|emi)s?\b`)

// navBlockPatterns drop whole blocks that survived line-level cleaning but
// are still pure chrome.
var navBlockPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\s*home\s*[›>/]`),
	regexp.MustCompile(`(?i)^\s*sponsored\s*$`),
	regexp.MustCompile(`(?i)^\s*(?:see|show)\s+(?:more|all)\b.{0,60}$`),
	regexp.MustCompile(`(?i)^\s*(?:next|previous)\s+page\b`),
	regexp.MustCompile(`(?i)^\s*(?:related|frequently)\s+(?:searches|bought|asked)\b.{0,80}$`),
}

// Segment splits a cleaned document into candidate blocks and keeps those
// likely to describe a product, using the default minimum block length.
func Segment(doc string, query shopgrep.Query) []Block {
	return filterBlocks(splitBlocks(doc), query, DefaultMinBlockLen)
}

// splitBlocks cuts the document on blank lines and boundary markers. Every
// returned span is non-empty.
func splitBlocks(doc string) []string {
	var spans []string
	var cur []string

	flush := func() {
		if len(cur) == 0 {
			return
		}
		if span := strings.TrimSpace(strings.Join(cur, "\n")); span != "" {
			spans = append(spans, span)
		}
		cur = cur[:0]
	}

	for _, line := range strings.Split(doc, "\n") {
		switch {
		case strings.TrimSpace(line) == "":
			flush()
		case hruleRe.MatchString(line):
			flush()
		case headingRe.MatchString(line) || boldLeadRe.MatchString(line):
			flush()
			cur = append(cur, line)
		default:
			cur = append(cur, line)
		}
	}
	flush()

	return spans
}

// filterBlocks retains spans that are long enough, are not navigation
// chrome, and carry at least one product signal: a currency token, product
// vocabulary, or a query keyword. Spans that quote a price are exempt from
// the length floor; a terse card like a heading, a price, and a buy link
// is a complete product listing.
func filterBlocks(spans []string, query shopgrep.Query, minLen int) []Block {
	var blocks []Block
	for pos, span := range spans {
		if len(span) < minLen && !priceTokenRe.MatchString(span) {
			continue
		}
		if isNavBlock(span) {
			continue
		}
		if !hasProductSignal(span, query) {
			continue
		}
		blocks = append(blocks, Block{Text: span, Pos: pos})
	}
	return blocks
}

func isNavBlock(span string) bool {
	for _, re := range navBlockPatterns {
		if re.MatchString(span) {
			return true
		}
	}
	return false
}

func hasProductSignal(span string, query shopgrep.Query) bool {
	if priceTokenRe.MatchString(span) {
		return true
	}
	if productVocabRe.MatchString(span) {
		return true
	}
	lower := strings.ToLower(span)
	for _, kw := range query.Keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if len(kw) > 2 && strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

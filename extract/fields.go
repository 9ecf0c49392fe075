package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fwojciec/shopgrep"
)

// PriceStrategy selects which in-range price token wins when a block
// quotes several (sale price, struck-through list price, per-unit price).
type PriceStrategy int

const (
	// PriceHighest picks the largest in-range price. On listing pages
	// the struck-through list price usually exceeds the sale price, so
	// this strategy can overstate what the buyer pays.
	PriceHighest PriceStrategy = iota

	// PriceLowest picks the smallest in-range price, favoring the sale
	// price over the list price.
	PriceLowest
)

// pricePatterns are tried in order; the first pattern with any match
// supplies all candidate prices for the block. Rupee forms come first
// because "₹1,299" pages often also render "$" in unrelated script text.
var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`₹\s*([\d,]+(?:\.\d+)?)`),
	regexp.MustCompile(`(?i)\bRs\.?\s*([\d,]+(?:\.\d+)?)`),
	regexp.MustCompile(`(?i)\bINR\s*([\d,]+(?:\.\d+)?)`),
	regexp.MustCompile(`[$€£]\s*([\d,]+(?:\.\d+)?)`),
	regexp.MustCompile(`(?i)\bprice\s*:?\s*([\d,]+(?:\.\d+)?)`),
}

// titlePatterns locate title candidates in rough order of reliability:
// headings, bold spans, numbered and bulleted list leads, link texts, and
// finally any long capitalized line.
var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^#{1,6}\s+(.+)$`),
	regexp.MustCompile(`\*\*([^*\n]+)\*\*`),
	regexp.MustCompile(`(?m)^\s*\d+\.\s+(.+)$`),
	regexp.MustCompile(`(?m)^\s*[-*•]\s+(.+)$`),
	regexp.MustCompile(`\[([^\]\n]+)\]\([^)\n]*\)`),
	regexp.MustCompile(`(?m)^([A-Z][^\n]{20,})$`),
}

var (
	ratingPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d(?:\.\d+)?)\s*out of\s*5`),
		regexp.MustCompile(`(?i)(\d(?:\.\d+)?)\s*/\s*5\b`),
		regexp.MustCompile(`(?i)(\d(?:\.\d+)?)\s*stars?\b`),
	}
	discountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\d{1,2}%\s*off`),
		regexp.MustCompile(`(?i)save\s*(?:₹|\$|€|£|Rs\.?\s*)?[\d,]+`),
	}
	availabilityRe = regexp.MustCompile(`(?i)\b(in stock|out of stock|only \d+ left(?: in stock)?|currently unavailable)\b`)
	offerLineRe    = regexp.MustCompile(`(?i)\b(?:offer|deal|coupon|cashback|exchange|bank|no cost emi)s?\b`)
	productLinkRe  = regexp.MustCompile(`(?:^|[^!])\[[^\]\n]*\]\((https?://[^)\s]+)\)`)
	imageLinkRe    = regexp.MustCompile(`!\[[^\]\n]*\]\((https?://[^)\s]+)\)`)
)

// titleIndicatorTokens are model-name and spec vocabulary that raise a
// title candidate's score by one each, word-bounded and case-insensitive.
var titleIndicatorTokens = []string{
	"pro", "plus", "max", "ultra", "mini", "lite", "edition", "series", "gen",
	"gb", "tb", "ram", "ssd", "inch", "cm", "mm", "hz", "ghz", "mah", "mp",
	"wireless", "bluetooth", "smart", "hd", "uhd", "led", "oled",
}

// titleNavTokens are UI vocabulary that lower a candidate's score by
// three each.
var titleNavTokens = []string{
	"select", "department", "filter", "sort", "cart", "sign in", "login",
	"account", "wishlist", "checkout", "menu", "results", "see more",
	"show more", "breadcrumb", "subscribe",
}

const minTitleScore = 3

var (
	indicatorTokenRes = compileTokenPatterns(titleIndicatorTokens)
	navTokenRes       = compileTokenPatterns(titleNavTokens)
	parentheticalRe   = regexp.MustCompile(`\s*\([^)]*\)`)
	mdLinkRe          = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
)

func compileTokenPatterns(tokens []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(tokens))
	for i, tok := range tokens {
		res[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(tok) + `\b`)
	}
	return res
}

// Fields extracts a product candidate from one block using fixed patterns
// only. It returns nil when no title candidate scores high enough; a
// missing price never disqualifies a block on its own.
func Fields(block Block, query shopgrep.Query, strategy PriceStrategy) *shopgrep.Product {
	title, ok := extractTitle(block.Text, query)
	if !ok {
		return nil
	}

	p := &shopgrep.Product{Title: title, Position: block.Pos}
	p.Price = extractPrice(block.Text, strategy)
	p.Rating = extractRating(block.Text)
	p.Discount = extractDiscount(block.Text)
	p.Offers = extractOffers(block.Text)
	p.Availability = extractAvailability(block.Text)
	p.Link = extractLink(block.Text)
	p.Image = extractImage(block.Text)
	return p
}

// extractTitle collects candidates from every title pattern, normalizes
// them, scores each, and returns the best-scoring candidate at or above
// the minimum. Candidates under three tokens never enter scoring, so a
// short fragment cannot displace a qualifying full title. Ties keep the
// earliest candidate, which favors the more reliable patterns.
func extractTitle(text string, query shopgrep.Query) (string, bool) {
	best := ""
	bestScore := minTitleScore - 1
	for _, re := range titlePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			candidate := normalizeTitleCandidate(m[1])
			if candidate == "" || len(strings.Fields(candidate)) < shopgrep.MinTitleTokens {
				continue
			}
			if score := scoreTitle(candidate, query); score > bestScore {
				best = candidate
				bestScore = score
			}
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}

// normalizeTitleCandidate strips markdown syntax, parenthetical asides,
// and edge punctuation, and collapses internal whitespace.
func normalizeTitleCandidate(s string) string {
	s = mdLinkRe.ReplaceAllString(s, "$1")
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "`", "")
	s = parentheticalRe.ReplaceAllString(s, " ")
	s = strings.Join(strings.Fields(s), " ")
	s = strings.Trim(s, " \t*#|:;,.-–—")
	return s
}

func scoreTitle(candidate string, query shopgrep.Query) int {
	score := 0

	if n := len(candidate); n >= 25 && n <= 100 {
		score += 3
	}

	for _, re := range indicatorTokenRes {
		if re.MatchString(candidate) {
			score++
		}
	}
	for _, re := range navTokenRes {
		if re.MatchString(candidate) {
			score -= 3
		}
	}

	lower := strings.ToLower(candidate)
	for _, kw := range query.Keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" && strings.Contains(lower, kw) {
			score += 3
		}
	}

	return score
}

// extractPrice tries each currency pattern in order; the first pattern
// that matches supplies all candidates. Values outside the plausible
// bounds are ignored, and the strategy picks among the survivors.
func extractPrice(text string, strategy PriceStrategy) *int {
	for _, re := range pricePatterns {
		matches := re.FindAllStringSubmatch(text, -1)
		if len(matches) == 0 {
			continue
		}

		var picked *int
		for _, m := range matches {
			v, err := strconv.Atoi(strings.ReplaceAll(strings.SplitN(m[1], ".", 2)[0], ",", ""))
			if err != nil || v < shopgrep.PriceMin || v > shopgrep.PriceMax {
				continue
			}
			if picked == nil ||
				(strategy == PriceHighest && v > *picked) ||
				(strategy == PriceLowest && v < *picked) {
				picked = &v
			}
		}
		if picked != nil {
			return picked
		}
	}
	return nil
}

func extractRating(text string) string {
	for _, re := range ratingPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil || v < 0 || v > 5 {
			continue
		}
		return m[1] + " stars"
	}
	return ""
}

func extractDiscount(text string) string {
	for _, re := range discountPatterns {
		if m := re.FindString(text); m != "" {
			return strings.TrimSpace(m)
		}
	}
	return ""
}

// extractOffers returns the first line mentioning offer vocabulary,
// truncated so one runaway line cannot dominate the record.
func extractOffers(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if !offerLineRe.MatchString(line) {
			continue
		}
		line = strings.TrimSpace(strings.Trim(strings.TrimSpace(line), "-*•"))
		if len(line) > 120 {
			line = line[:120]
		}
		return line
	}
	return ""
}

func extractAvailability(text string) string {
	return availabilityRe.FindString(text)
}

func extractLink(text string) string {
	if m := productLinkRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

func extractImage(text string) string {
	if m := imageLinkRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

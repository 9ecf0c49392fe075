package extract

import (
	"regexp"
	"strings"
)

// noiseLinePatterns match whole lines of navigation and footer chrome that
// carry no product signal. Matching is line-anchored so that a product
// title mentioning "cart" or "sale" is never clipped mid-paragraph.
var noiseLinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\s*skip to (?:main )?(?:content|navigation|search)\b`),
	regexp.MustCompile(`(?i)^\s*(?:hello,? )?sign in\b`),
	regexp.MustCompile(`(?i)^\s*(?:log ?in|log ?out|create account|register)\s*$`),
	regexp.MustCompile(`(?i)^\s*your (?:account|orders|lists|wish ?list)\b`),
	regexp.MustCompile(`(?i)^\s*(?:returns?(?: & orders)?|cart|checkout|customer service|gift cards?|sell|track order)\s*$`),
	regexp.MustCompile(`(?i)^\s*sort by\b`),
	regexp.MustCompile(`(?i)^\s*filter(?:s| by)?\b.{0,40}$`),
	regexp.MustCompile(`(?i)^\s*select (?:your )?(?:department|address|language|category)\b`),
	regexp.MustCompile(`(?i)^\s*(?:©|copyright\b).*$`),
	regexp.MustCompile(`(?i)all rights reserved`),
	regexp.MustCompile(`(?i)^\s*\d+\s*[-–]\s*\d+\s+of\s+(?:over\s+)?[\d,]+\s+results\b`),
	regexp.MustCompile(`(?i)^\s*page\s+\d+\s+of\s+\d+\s*$`),
	regexp.MustCompile(`(?i)^\s*(?:next|previous)\s*(?:page)?\s*$`),
	regexp.MustCompile(`(?i)^\s*(?:conditions of use|privacy (?:notice|policy)|terms of (?:use|service)|cookie (?:policy|settings))\b`),
	regexp.MustCompile(`(?i)^\s*(?:download (?:the|our) app|follow us on)\b`),
}

// Clean removes navigation and footer noise from a page capture.
//
// It drops whole lines matching the noise denylist and collapses runs of
// three or more blank lines to a single blank line, preserving the blank
// line structure the segmenter splits on. Clean never rewrites surviving
// lines.
func Clean(doc string) string {
	lines := strings.Split(doc, "\n")

	out := make([]string, 0, len(lines))
	blanks := 0
	for _, line := range lines {
		if isNoiseLine(line) {
			continue
		}
		if strings.TrimSpace(line) == "" {
			blanks++
			continue
		}
		if blanks > 0 {
			if blanks >= 3 {
				blanks = 1
			}
			for range blanks {
				out = append(out, "")
			}
			blanks = 0
		}
		out = append(out, line)
	}

	return strings.Join(out, "\n")
}

func isNoiseLine(line string) bool {
	for _, re := range noiseLinePatterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

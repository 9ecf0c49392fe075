package shopgrep

import (
	"strconv"
	"strings"
)

// Plausibility bounds for extracted prices. Values outside this window are
// overwhelmingly artifacts: review counts, model numbers, pixel widths.
const (
	PriceMin = 10
	PriceMax = 10_000_000
)

// MinTitleTokens is the minimum number of whitespace-separated tokens a
// product title must have. Shorter "titles" are almost always UI chrome
// ("Add to Cart", "See more").
const MinTitleTokens = 3

// Product is a structured record extracted from a page capture. Both
// extraction strategies produce unvalidated Products (candidates); only
// records that pass the post-filter, deduplication, and the query gate are
// returned to callers.
type Product struct {
	ID     string `json:"id,omitempty"`
	ScanID string `json:"scanId,omitempty"`

	Title string `json:"title"`

	// Price in whole currency units. Nil when no plausible price was found.
	Price *int `json:"price"`

	Rating       string            `json:"rating,omitempty"`
	Discount     string            `json:"discount,omitempty"`
	Offers       string            `json:"offers,omitempty"`
	Link         string            `json:"link,omitempty"`
	Image        string            `json:"image,omitempty"`
	Availability string            `json:"availability,omitempty"`
	Quantity     string            `json:"quantity,omitempty"`
	Tags         []string          `json:"tags,omitempty"`
	Properties   map[string]string `json:"properties,omitempty"`

	// Position preserves discovery order within a single document.
	Position int `json:"position,omitempty"`
}

// Validate returns an error if the product contains invalid fields.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return Errorf(EINVALID, "product title required")
	}
	if len(strings.Fields(p.Title)) < MinTitleTokens {
		return Errorf(EINVALID, "product title %q has fewer than %d tokens", p.Title, MinTitleTokens)
	}
	if p.Price != nil && (*p.Price < PriceMin || *p.Price > PriceMax) {
		return Errorf(EINVALID, "product price %d outside plausible bounds", *p.Price)
	}
	return nil
}

// Key returns the deduplication identity: the normalized title joined with
// the price. Two products sharing a key collapse to one, first seen wins.
func (p *Product) Key() string {
	price := "-"
	if p.Price != nil {
		price = strconv.Itoa(*p.Price)
	}
	return NormalizeTitle(p.Title) + "|" + price
}

// NormalizeTitle lowercases a title and collapses internal whitespace so
// cosmetic formatting differences do not defeat deduplication.
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.Join(strings.Fields(title), " "))
}

// PriceOf is a convenience for building *int price literals in callers and
// tests.
func PriceOf(v int) *int {
	return &v
}

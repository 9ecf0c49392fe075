package shopgrep

import "strings"

// Query is the caller's keyword and price-range filter. It drives block
// filtering during segmentation and the final gate applied to extracted
// products. A Query is read-only once it enters the pipeline.
type Query struct {
	Keywords []string `json:"keywords"`
	MinPrice int      `json:"minPrice"`
	MaxPrice int      `json:"maxPrice"`
}

// Validate returns an error if the query contains invalid fields.
// An invalid query is the only failure that propagates out of the
// extraction pipeline, so callers should validate at construction time.
func (q Query) Validate() error {
	if q.MinPrice < 0 {
		return Errorf(EINVALID, "minimum price must not be negative")
	}
	if q.MaxPrice < q.MinPrice {
		return Errorf(EINVALID, "maximum price %d is below minimum price %d", q.MaxPrice, q.MinPrice)
	}
	return nil
}

// MatchesTitle reports whether the title contains at least one query
// keyword (case-insensitive substring match). A query without keywords
// matches every title.
func (q Query) MatchesTitle(title string) bool {
	if len(q.Keywords) == 0 {
		return true
	}
	lower := strings.ToLower(title)
	for _, kw := range q.Keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// AllowsPrice reports whether a price passes the query's range gate.
// A missing price (nil) passes only when the lower bound is not strictly
// positive, since an unknown price cannot satisfy a positive minimum.
func (q Query) AllowsPrice(price *int) bool {
	if price == nil {
		return q.MinPrice <= 0
	}
	return q.MinPrice <= *price && *price <= q.MaxPrice
}

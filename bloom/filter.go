// Package bloom provides probabilistic URL deduplication for scans.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter remembers which page URLs a scan has already queued. It trades
// a small false positive rate for constant memory, so a long paginated
// scan never grows an unbounded seen-set.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected page URLs with the
// given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a page URL.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Test returns true if the URL was probably added before. A false
// positive skips one result page at worst; false negatives do not occur,
// so no page is ever fetched twice.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}

// EstimatedCount returns the approximate number of URLs added.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}

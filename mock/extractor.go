package mock

import "github.com/fwojciec/shopgrep"

var _ shopgrep.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of shopgrep.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*shopgrep.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*shopgrep.ExtractResult, error) {
	return e.ExtractFn(html)
}

package mock

import "github.com/fwojciec/shopgrep"

var _ shopgrep.Converter = (*Converter)(nil)

// Converter is a mock implementation of shopgrep.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

package mock

import (
	"context"

	"github.com/fwojciec/shopgrep"
)

var _ shopgrep.Generator = (*Generator)(nil)

// Generator is a mock implementation of shopgrep.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, prompt string, opts shopgrep.GenerateOptions) (string, error)
}

func (g *Generator) Generate(ctx context.Context, prompt string, opts shopgrep.GenerateOptions) (string, error) {
	return g.GenerateFn(ctx, prompt, opts)
}

package shopgrep

import "context"

// GenerateOptions configures a single generation request.
type GenerateOptions struct {
	// Temperature controls sampling randomness. Extraction prompts want
	// values near zero.
	Temperature float32

	// ContextBudget is an advisory upper bound, in characters, on the
	// prompt the caller intends to send. Implementations may use it to
	// size the model context window.
	ContextBudget int
}

// Generator is the text-generation collaborator: one prompt in, one text
// response out. It must honor context cancellation and deadlines.
//
// Generators are explicitly unreliable: callers must assume any call can
// fail, time out, or return text that is not what was asked for.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}

package shopgrep

import "context"

// TokenCounter counts model tokens in text. Used to report how much of
// the generator's context window a prompt consumes.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}

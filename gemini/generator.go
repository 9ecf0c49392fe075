package gemini

import (
	"context"

	"github.com/fwojciec/shopgrep"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// Ensure Generator implements shopgrep.Generator at compile time.
var _ shopgrep.Generator = (*Generator)(nil)

// Generator implements shopgrep.Generator using Google Gemini.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a new Generator. An empty model selects the
// default.
func NewGenerator(client *genai.Client, model string) *Generator {
	if model == "" {
		model = defaultModel
	}
	return &Generator{client: client, model: model}
}

// Generate sends the prompt to Gemini and returns the response text.
func (g *Generator) Generate(ctx context.Context, prompt string, opts shopgrep.GenerateOptions) (string, error) {
	if prompt == "" {
		return "", shopgrep.Errorf(shopgrep.EINVALID, "prompt required")
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(opts),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", shopgrep.Errorf(shopgrep.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig(opts shopgrep.GenerateOptions) *genai.GenerateContentConfig {
	temp := opts.Temperature
	if temp <= 0 {
		temp = 0.1
	}
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a precise data extraction engine. You turn noisy e-commerce page text into structured JSON product records. Respond with only the requested JSON, never prose.",
			}},
		},
		Temperature: &temp,
	}
}

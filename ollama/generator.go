// Package ollama implements text generation against a local Ollama server.
// It is the offline alternative to the gemini package.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/shopgrep"
)

const (
	defaultBaseURL = "http://localhost:11434"
	defaultModel   = "llama3.2"
	defaultTimeout = 2 * time.Minute
)

// Ensure Generator implements shopgrep.Generator at compile time.
var _ shopgrep.Generator = (*Generator)(nil)

// Generator implements shopgrep.Generator using the Ollama generate API.
type Generator struct {
	client  *http.Client
	baseURL string
	model   string
}

// Option configures a Generator.
type Option func(*Generator)

// WithBaseURL overrides the Ollama server address.
func WithBaseURL(baseURL string) Option {
	return func(g *Generator) {
		g.baseURL = baseURL
	}
}

// WithModel overrides the model name.
func WithModel(model string) Option {
	return func(g *Generator) {
		g.model = model
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(g *Generator) {
		g.client = client
	}
}

// NewGenerator creates a new Generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		client:  &http.Client{Timeout: defaultTimeout},
		baseURL: defaultBaseURL,
		model:   defaultModel,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float32 `json:"temperature"`
	NumCtx      int     `json:"num_ctx,omitempty"`
}

type generateResponse struct {
	Response string `json:"response"`
	Error    string `json:"error"`
}

// Generate sends the prompt to Ollama and returns the response text.
func (g *Generator) Generate(ctx context.Context, prompt string, opts shopgrep.GenerateOptions) (string, error) {
	if prompt == "" {
		return "", shopgrep.Errorf(shopgrep.EINVALID, "prompt required")
	}

	body, err := json.Marshal(generateRequest{
		Model:  g.model,
		Prompt: prompt,
		Stream: false,
		Options: generateOptions{
			Temperature: opts.Temperature,
			NumCtx:      opts.ContextBudget,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshaling generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", shopgrep.Errorf(shopgrep.EUNAVAILABLE, "ollama request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", shopgrep.Errorf(shopgrep.EUNAVAILABLE, "ollama returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading generate response: %w", err)
	}

	var gr generateResponse
	if err := json.Unmarshal(data, &gr); err != nil {
		return "", fmt.Errorf("decoding generate response: %w", err)
	}
	if gr.Error != "" {
		return "", shopgrep.Errorf(shopgrep.EUNAVAILABLE, "ollama error: %s", gr.Error)
	}

	return gr.Response, nil
}

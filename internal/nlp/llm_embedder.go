package nlp

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-screener/internal/llm"
)

// LLMEmbedder embeds text with the client's embedding model
type LLMEmbedder struct {
	client llm.Client
}

// NewLLMEmbedder creates an embedder backed by client.
func NewLLMEmbedder(client llm.Client) *LLMEmbedder {
	return &LLMEmbedder{client: client}
}

// Embed returns the embedding of text widened to float64.
func (e *LLMEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	values, err := e.client.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embedding failed: %w", err)
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out, nil
}

package nlp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/llm"
	"github.com/jonathan/resume-screener/internal/logger"
)

// LLMEntityRecognizer tags entities by prompting a generation model for a JSON list of mentions
type LLMEntityRecognizer struct {
	client llm.Client
	tier   llm.ModelTier
	logger *zap.Logger
}

// NewLLMEntityRecognizer creates a recognizer backed by client's lite tier.
func NewLLMEntityRecognizer(client llm.Client, log *zap.Logger) *LLMEntityRecognizer {
	return &LLMEntityRecognizer{
		client: client,
		tier:   llm.TierLite,
		logger: logger.OrNop(log),
	}
}

// Analyze returns the entities found in text with byte offsets into text.
func (r *LLMEntityRecognizer) Analyze(ctx context.Context, text string) ([]Entity, error) {
	prompt := llm.BuildExtractionPrompt(llm.EntitySchema(), text)

	raw, err := r.client.GenerateJSON(ctx, prompt, r.tier)
	if err != nil {
		return nil, fmt.Errorf("entity recognition failed: %w", err)
	}

	mentions, err := decodeMentions(raw)
	if err != nil {
		r.logger.Debug("unparseable entity response",
			zap.String("model", r.client.GetModel(r.tier)),
			zap.String("response", logger.TruncateForLog(raw, 200)),
		)
		return nil, err
	}

	entities := LocateSpans(text, mentions)
	r.logger.Debug("entities recognized",
		zap.Int("mentions", len(mentions)),
		zap.Int("located", len(entities)),
	)
	return entities, nil
}

// decodeMentions accepts either a bare array or an object wrapping an "entities" array,
// tolerating numbers or other scalars where strings are expected.
func decodeMentions(raw string) ([]Mention, error) {
	var payload any
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &payload); err != nil {
		return nil, &ResponseError{Message: "entity response is not JSON", Cause: err}
	}

	if obj, ok := payload.(map[string]any); ok {
		payload = obj["entities"]
	}
	items, ok := payload.([]any)
	if !ok {
		if payload == nil {
			return []Mention{}, nil
		}
		return nil, &ResponseError{Message: fmt.Sprintf("expected entity list, got %T", payload)}
	}

	var mentions []Mention
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &mentions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(items); err != nil {
		return nil, &ResponseError{Message: "malformed entity list", Cause: err}
	}
	return mentions, nil
}

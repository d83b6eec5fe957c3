package llm

import (
	"context"
	"encoding/json"
)

// Provider turns a single prompt into schema-conforming JSON.
type Provider interface {
	// Generate sends req to the model. When req.Schema is set the returned
	// Content has already been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request is one single-turn generation.
type Request struct {
	System string
	Prompt string

	// Schema selects the provider's structured output mode. Nil means the
	// raw text comes back as Content.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the provider default in place.
	Temperature float64
}

// Schema is a named JSON Schema document.
type Schema struct {
	// Name is kebab-case, e.g. "prediction-insight". It doubles as the
	// compiled-schema cache key.
	Name        string
	Description string
	Definition  map[string]any
}

// Stop reasons, normalized across providers.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// Response holds the model output.
type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string // model that actually served the request
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// finish checks raw provider output against req and assembles the Response.
// Output cut off by the token limit is reported as ErrMaxTokensExceeded when
// structured output was asked for, since the JSON cannot be complete.
func finish(req Request, content json.RawMessage, usage Usage, model, stop string) (*Response, error) {
	if req.Schema != nil {
		if stop == StopMaxTokens {
			return nil, &ErrMaxTokensExceeded{Content: content}
		}
		if err := validateResponse(req.Schema, content); err != nil {
			return nil, err
		}
	}
	if usage.TotalTokens == 0 {
		usage.TotalTokens = usage.InputTokens + usage.OutputTokens
	}
	return &Response{
		Content:    content,
		Usage:      usage,
		Model:      model,
		StopReason: stop,
	}, nil
}

// resolveModel maps a friendly model name to a provider model ID. Unknown
// names pass through so full IDs can be configured directly.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}

package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/lipredict/internal/llm"
)

// Service explains predictions, through an LLM when one is configured.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an insight service. A nil provider makes every
// explanation a Fallback.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Enabled reports whether explanations come from an LLM.
func (s *Service) Enabled() bool {
	return s.provider != nil
}

type narrativeOutput struct {
	Headline string   `json:"headline"`
	Summary  string   `json:"summary"`
	Factors  []string `json:"factors"`
}

// Explain returns a narrative for the prediction in req. Provider errors are
// returned unchanged; callers decide whether to show Fallback instead.
func (s *Service) Explain(ctx context.Context, req Request) (*Narrative, error) {
	if s.provider == nil {
		return Fallback(req), nil
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeInsight)
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Prompt:      buildUserMessage(req),
		Schema:      NarrativeSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("insight generation: %w", err)
	}

	var out narrativeOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse insight response: %w", err)
	}
	if strings.TrimSpace(out.Headline) == "" {
		return nil, fmt.Errorf("parse insight response: empty headline")
	}

	return &Narrative{
		Headline: out.Headline,
		Summary:  out.Summary,
		Factors:  out.Factors,
		Source:   SourceLLM,
	}, nil
}

// ModelID names the model behind the narratives, or "" when disabled.
func (s *Service) ModelID() string {
	if s.provider == nil {
		return ""
	}
	return s.provider.ModelID()
}

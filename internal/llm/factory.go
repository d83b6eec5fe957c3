package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/lipredict/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped as
// caller → retry → logging → base. An empty Provider triggers key discovery;
// ErrNotConfigured is returned when nothing is found.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, logger *zap.Logger) (Provider, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Provider == "" && !cfg.Discover() {
		return nil, ErrNotConfigured
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		base = NewStubProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logger.Info("llm provider ready",
		zap.String("provider", cfg.Provider),
		zap.String("model", base.ModelID()))

	logged := WithLogging(base, cfg.Provider, eventRepo, logger)
	return WithRetry(logged, cfg.Retry, logger), nil
}

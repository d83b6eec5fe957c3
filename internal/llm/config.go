package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects the backend: "anthropic", "openai", "gemini",
	// "openrouter" or "mock". Empty means check the standard API key
	// variables (see Discover).
	Provider string `yaml:"provider"`

	Anthropic  AnthropicConfig  `yaml:"anthropic"`
	OpenAI     OpenAIConfig     `yaml:"openai"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	OpenRouter OpenRouterConfig `yaml:"openrouter"`
	Retry      RetryConfig      `yaml:"retry"`

	// Timeout bounds a single narrative request, retries included.
	Timeout time.Duration `yaml:"timeout"`
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"` // optional, for compatible APIs
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts"`
	InitialWait time.Duration `yaml:"initial_wait"`
	MaxWait     time.Duration `yaml:"max_wait"`
	Multiplier  float64       `yaml:"multiplier"`
}

// DefaultConfig returns a Config with default models and retry policy and
// no provider selected.
func DefaultConfig() Config {
	return Config{
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 20 * time.Second,
	}
}

// ApplyEnv overrides fields from LIPREDICT_* environment variables.
func (c *Config) ApplyEnv() {
	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	set(&c.Provider, "LIPREDICT_LLM_PROVIDER")
	set(&c.Anthropic.APIKey, "LIPREDICT_ANTHROPIC_API_KEY")
	set(&c.Anthropic.Model, "LIPREDICT_ANTHROPIC_MODEL")
	set(&c.OpenAI.APIKey, "LIPREDICT_OPENAI_API_KEY")
	set(&c.OpenAI.Model, "LIPREDICT_OPENAI_MODEL")
	set(&c.OpenAI.BaseURL, "LIPREDICT_OPENAI_BASE_URL")
	set(&c.Gemini.APIKey, "LIPREDICT_GEMINI_API_KEY")
	set(&c.Gemini.Model, "LIPREDICT_GEMINI_MODEL")
	set(&c.OpenRouter.APIKey, "LIPREDICT_OPENROUTER_API_KEY")
	set(&c.OpenRouter.Model, "LIPREDICT_OPENROUTER_MODEL")
}

// Discover fills in Provider from the first standard API key variable
// found (Gemini, OpenAI, Anthropic, OpenRouter). It reports false when
// none is set. Keys already configured are left alone.
func (c *Config) Discover() bool {
	candidates := []struct {
		env      string
		provider string
		key      *string
	}{
		{"GEMINI_API_KEY", "gemini", &c.Gemini.APIKey},
		{"OPENAI_API_KEY", "openai", &c.OpenAI.APIKey},
		{"ANTHROPIC_API_KEY", "anthropic", &c.Anthropic.APIKey},
		{"OPENROUTER_API_KEY", "openrouter", &c.OpenRouter.APIKey},
	}
	for _, p := range candidates {
		k := os.Getenv(p.env)
		if k == "" {
			continue
		}
		c.Provider = p.provider
		if *p.key == "" {
			*p.key = k
		}
		return true
	}
	return false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("LIPREDICT_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("LIPREDICT_OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("LIPREDICT_GEMINI_API_KEY is required for the gemini provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("LIPREDICT_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
	case "":
		return ErrNotConfigured
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

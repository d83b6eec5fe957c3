package llm

import (
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	openRouterAppTitle       = "lipredict"
)

// NewOpenRouterProvider creates a provider for the OpenRouter API. Model
// names are routed as-is ("vendor/model").
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	config := openaiClientConfig(cfg.APIKey, baseURL)
	config.HTTPClient = &titledDoer{inner: config.HTTPClient, title: openRouterAppTitle}
	return newOpenAICompatible(config, cfg.Model), nil
}

// titledDoer tags every request with the app name OpenRouter shows in its
// usage dashboard.
type titledDoer struct {
	inner openai.HTTPDoer
	title string
}

func (d *titledDoer) Do(req *http.Request) (*http.Response, error) {
	req.Header.Set("X-Title", d.title)
	return d.inner.Do(req)
}

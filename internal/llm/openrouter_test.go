package llm

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenRouterProvider(t *testing.T) {
	_, err := NewOpenRouterProvider(OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"})
	require.Error(t, err)

	for _, model := range []string{"google/gemini-2.0-flash-exp", "anthropic/claude-3-haiku", "gpt-4o"} {
		p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test", Model: model})
		require.NoError(t, err)
		assert.Equal(t, model, p.ModelID(), "openrouter models are routed unchanged")
	}
}

func TestOpenRouterProvider_Headers(t *testing.T) {
	var header http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"x","object":"chat.completion","model":"meta-llama/llama-3-8b",` +
			`"choices":[{"index":0,"message":{"role":"assistant","content":"Income leads."},"finish_reason":"stop"}],` +
			`"usage":{"prompt_tokens":3,"completion_tokens":2}}`))
	}))
	t.Cleanup(server.Close)

	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey:  "sk-or-test",
		Model:   "meta-llama/llama-3-8b",
		BaseURL: server.URL + "/v1",
	})
	require.NoError(t, err)

	resp, err := p.Generate(t.Context(), Request{Prompt: "Explain.", MaxTokens: 10})
	require.NoError(t, err)

	assert.Equal(t, "lipredict", header.Get("X-Title"))
	assert.Equal(t, "Bearer sk-or-test", header.Get("Authorization"))
	assert.Equal(t, 5, resp.Usage.TotalTokens)
}

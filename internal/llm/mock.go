package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider replays canned responses in FIFO order and records every
// request. Once the queue is drained it either fails with
// ErrProviderUnavailable or, in stub mode, answers with a placeholder
// document shaped by the request schema.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	stub      bool
	Calls     []Request
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// NewStubProvider creates a MockProvider that never runs dry. It backs the
// "mock" provider setting so the narrative path can be exercised offline.
func NewStubProvider() *MockProvider {
	return &MockProvider{stub: true}
}

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	var next MockResponse
	switch {
	case len(m.responses) > 0:
		next = m.responses[0]
		m.responses = m.responses[1:]
	case m.stub:
		content, err := stubContent(req)
		if err != nil {
			return nil, err
		}
		next = MockResponse{Content: content}
	default:
		return nil, &ErrProviderUnavailable{}
	}

	if next.Err != nil {
		return nil, next.Err
	}
	return &Response{
		Content:    next.Content,
		Usage:      next.Usage,
		Model:      "mock",
		StopReason: StopEnd,
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

func stubContent(req Request) (json.RawMessage, error) {
	if req.Schema == nil {
		return json.Marshal("mock response")
	}
	b, err := json.Marshal(stubValue("value", req.Schema.Definition))
	if err != nil {
		return nil, fmt.Errorf("build stub response: %w", err)
	}
	return b, nil
}

// stubValue builds the smallest value that satisfies def: first enum
// member, "mock <name>" for strings, one-element arrays, all properties
// filled in for objects.
func stubValue(name string, def map[string]any) any {
	if enum, ok := def["enum"].([]any); ok && len(enum) > 0 {
		return enum[0]
	}
	switch def["type"] {
	case "object":
		obj := map[string]any{}
		props, _ := def["properties"].(map[string]any)
		for k, v := range props {
			sub, _ := v.(map[string]any)
			obj[k] = stubValue(k, sub)
		}
		return obj
	case "array":
		items, _ := def["items"].(map[string]any)
		return []any{stubValue(name, items)}
	case "integer", "number":
		if lo, ok := def["minimum"]; ok {
			return lo
		}
		return 0
	case "boolean":
		return false
	default:
		return "mock " + name
	}
}

package insight

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lipredict/internal/classifier"
	"github.com/abhisek/lipredict/internal/contrib"
	"github.com/abhisek/lipredict/internal/features"
	"github.com/abhisek/lipredict/internal/llm"
)

func testRequest() Request {
	return Request{
		Selections: features.Selections{
			Income:    "$150k+",
			Education: "Graduate/Professional degree",
			Parent:    "No",
			Married:   "Married",
			Gender:    "Female",
			Age:       42,
		},
		Result: classifier.Result{Class: classifier.ClassUser, Probability: 0.73},
		Contributions: []contrib.Contribution{
			{Feature: "Education", Strength: 3.0},
			{Feature: "Age", Strength: 1.0},
			{Feature: "Income", Strength: 0.5},
			{Feature: "Married", Strength: 0.3},
			{Feature: "Female", Strength: 0.2},
		},
	}
}

func TestExplain_UsesProvider(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"headline":"Likely a LinkedIn user","summary":"Education dominates.","factors":["Education","Age"]}`),
	})
	svc := NewService(mock, DefaultConfig())

	n, err := svc.Explain(t.Context(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, SourceLLM, n.Source)
	assert.Equal(t, "Likely a LinkedIn user", n.Headline)
	assert.Equal(t, []string{"Education", "Age"}, n.Factors)

	require.Equal(t, 1, mock.CallCount())
	call := mock.Calls[0]
	assert.Same(t, NarrativeSchema, call.Schema)
	msg := call.Prompt
	assert.Contains(t, msg, "Income: $150k+")
	assert.Contains(t, msg, "Prediction: LinkedIn User")
	assert.Contains(t, msg, "Education: 3.000")
}

func TestExplain_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	svc := NewService(mock, DefaultConfig())

	n, err := svc.Explain(t.Context(), testRequest())
	require.Error(t, err)
	assert.Nil(t, n)
	assert.Contains(t, err.Error(), "insight generation")
}

func TestExplain_MalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`not json`)},
		llm.MockResponse{Content: json.RawMessage(`{"headline":"  ","summary":"x","factors":[]}`)},
	)
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Explain(t.Context(), testRequest())
	require.Error(t, err)
	_, err = svc.Explain(t.Context(), testRequest())
	require.Error(t, err)
}

func TestExplain_StubProviderMatchesSchema(t *testing.T) {
	svc := NewService(llm.NewStubProvider(), DefaultConfig())

	n, err := svc.Explain(t.Context(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, SourceLLM, n.Source)
	assert.Equal(t, "mock headline", n.Headline)
	assert.Equal(t, "mock", svc.ModelID())
}

func TestExplain_NoProviderFallsBack(t *testing.T) {
	svc := NewService(nil, DefaultConfig())
	assert.False(t, svc.Enabled())

	n, err := svc.Explain(t.Context(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, n.Source)
}

func TestFallback(t *testing.T) {
	n := Fallback(testRequest())

	assert.Equal(t, "Predicted: LinkedIn User (p=0.730)", n.Headline)
	assert.True(t, strings.HasPrefix(n.Summary, "Education carries the most weight"))
	assert.Contains(t, n.Summary, "60%")
	assert.Contains(t, n.Summary, "Age follows at 20%.")
	require.Len(t, n.Factors, maxFactors)
	assert.Equal(t, "Education: strength 3.000", n.Factors[0])
}

func TestFallback_NoContributions(t *testing.T) {
	req := testRequest()
	req.Contributions = nil
	req.Result = classifier.Result{Class: classifier.ClassNonUser, Probability: 0.2}

	n := Fallback(req)
	assert.Equal(t, "Predicted: Not a User (p=0.200)", n.Headline)
	assert.Contains(t, n.Summary, "intercept")
	assert.Empty(t, n.Factors)
}

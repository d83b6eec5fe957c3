package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lipredict/internal/classifier"
	"github.com/abhisek/lipredict/internal/config"
	"github.com/abhisek/lipredict/internal/contrib"
	"github.com/abhisek/lipredict/internal/insight"
	"github.com/abhisek/lipredict/internal/population"
	"github.com/abhisek/lipredict/internal/predict"
	"github.com/abhisek/lipredict/internal/store"
)

func sampleOutcome() *predict.Outcome {
	return &predict.Outcome{
		Result: classifier.Result{Class: classifier.ClassUser, Probability: 0.8334},
		Contributions: []contrib.Contribution{
			{Feature: "Education", Strength: 0.8},
			{Feature: "Income", Strength: 0.9},
		},
	}
}

func TestWritePredictionJSON(t *testing.T) {
	var buf bytes.Buffer
	n := &insight.Narrative{Headline: "Likely user", Summary: "s", Source: insight.SourceFallback}
	require.NoError(t, writePredictionJSON(&buf, sampleOutcome(), n))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "LinkedIn User", doc["label"])
	assert.EqualValues(t, 1, doc["class"])
	assert.InDelta(t, 0.8334, doc["probability"], 1e-9)
	assert.Len(t, doc["contributions"], 2)

	narrative := doc["narrative"].(map[string]any)
	assert.Equal(t, "fallback", narrative["source"])
}

func TestWritePredictionJSON_EmptyContributions(t *testing.T) {
	var buf bytes.Buffer
	out := &predict.Outcome{Result: classifier.Result{Class: classifier.ClassNonUser, Probability: 0.2}}
	require.NoError(t, writePredictionJSON(&buf, out, nil))

	assert.Contains(t, buf.String(), `"contributions": []`)
	assert.NotContains(t, buf.String(), "narrative")
}

func TestWritePredictionText(t *testing.T) {
	var buf bytes.Buffer
	writePredictionText(&buf, sampleOutcome(), nil)

	s := buf.String()
	assert.Contains(t, s, "LinkedIn User")
	assert.Contains(t, s, "0.833")
	assert.Contains(t, s, "Education")
	assert.NotContains(t, s, "no input contributes")
}

func TestWritePredictionText_NoContributions(t *testing.T) {
	var buf bytes.Buffer
	writePredictionText(&buf, &predict.Outcome{}, nil)
	assert.Contains(t, buf.String(), "no input contributes more than 0.01")
}

func TestWriteTable(t *testing.T) {
	dim := population.Dimensions[0]
	tb := population.Table{
		Dimension: dim,
		Groups: []population.Group{
			{Key: 1, Label: "<$10k", Count: 10, Rate: 0.1},
			{Key: 9, Label: "$150k+", Count: 4, Rate: 0.75},
		},
	}
	var buf bytes.Buffer
	writeTable(&buf, tb)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, dim.Title, lines[0])
	assert.Contains(t, buf.String(), "75.0%")
	assert.Contains(t, buf.String(), "10.0%")
	assert.Equal(t, dim.Caption, lines[len(lines)-1])
}

func TestDimensionColumns(t *testing.T) {
	cols := dimensionColumns()
	require.Len(t, cols, len(population.Dimensions))
	assert.Equal(t, population.Dimensions[0].Column, cols[0])
}

func TestStatsTables(t *testing.T) {
	ds, err := population.FromColumns(map[string][]float64{
		"income":    {1, 9, 9},
		"education": {2, 8, 8},
		"age":       {25, 40, 60},
		"parent":    {0, 1, 0},
		"married":   {0, 1, 1},
		"female":    {1, 0, 1},
		"sm_li":     {0, 1, 1},
	})
	require.NoError(t, err)

	all, err := statsTables(ds, "")
	require.NoError(t, err)
	assert.Len(t, all, len(population.Dimensions))

	dim := population.Dimensions[len(population.Dimensions)-1]
	one, err := statsTables(ds, dim.Column)
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, dim.Column, one[0].Dimension.Column)

	_, err = statsTables(ds, "height")
	assert.ErrorContains(t, err, `unknown dimension "height"`)
}

func TestUsageByPurpose(t *testing.T) {
	events := []store.LLMRequestEvent{
		{LLMRequestEventData: store.LLMRequestEventData{Purpose: "insight", InputTokens: 100, OutputTokens: 50, LatencyMs: 300, Success: true}},
		{LLMRequestEventData: store.LLMRequestEventData{Purpose: "insight", InputTokens: 80, OutputTokens: 0, LatencyMs: 100, Success: false}},
		{LLMRequestEventData: store.LLMRequestEventData{Purpose: "", InputTokens: 5, LatencyMs: 10, Success: true}},
	}

	stats := usageByPurpose(events)
	require.Len(t, stats, 2)
	assert.Equal(t, "", stats[0].Purpose)

	ins := stats[1]
	assert.Equal(t, "insight", ins.Purpose)
	assert.Equal(t, 2, ins.Calls)
	assert.Equal(t, 1, ins.Failed)
	assert.Equal(t, 180, ins.InputTokens)
	assert.Equal(t, 50, ins.OutputTokens)
	assert.EqualValues(t, 200, ins.AvgLatencyMs())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Len(t, truncate(strings.Repeat("x", 50), 10), 10)
}

func TestWriteLLMEvents(t *testing.T) {
	var buf bytes.Buffer
	writeLLMEvents(&buf, nil)
	assert.Equal(t, "No LLM events found.\n", buf.String())

	buf.Reset()
	writeLLMEvents(&buf, []store.LLMRequestEvent{
		{ID: 7, LLMRequestEventData: store.LLMRequestEventData{Purpose: "insight", Model: "gpt-4o-mini", InputTokens: 120, Success: true}},
		{ID: 6, LLMRequestEventData: store.LLMRequestEventData{Purpose: "insight", Model: "gpt-4o-mini", Success: false}},
	})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[2], "7 "))
	assert.Contains(t, lines[2], "✓")
	assert.Contains(t, lines[3], "✗")
}

func TestWriteLLMEvent(t *testing.T) {
	var buf bytes.Buffer
	writeLLMEvent(&buf, &store.LLMRequestEvent{
		ID: 3,
		LLMRequestEventData: store.LLMRequestEventData{
			Provider:     "openai",
			ErrorMessage: "rate limited",
			RequestBody:  "[user]\nhello\n\n",
			ResponseBody: `{"headline":"x"}`,
		},
	})

	s := buf.String()
	assert.Contains(t, s, "ID:        3")
	assert.Contains(t, s, "Provider:  openai")
	assert.Contains(t, s, "Error:     rate limited")
	assert.Contains(t, s, "[user]\nhello\n")
	assert.Contains(t, s, "{\n  \"headline\": \"x\"\n}")
}

func TestPrettyJSON(t *testing.T) {
	assert.Equal(t, "{\n  \"a\": 1\n}", prettyJSON(`{"a":1}`))
	assert.Equal(t, "plain text", prettyJSON("plain text"))
}

func TestWriteUsage(t *testing.T) {
	var buf bytes.Buffer
	writeUsage(&buf, nil)
	assert.Contains(t, buf.String(), "No LLM usage recorded yet.")

	buf.Reset()
	writeUsage(&buf, []purposeUsage{{Purpose: "insight", Calls: 2, Failed: 1, InputTokens: 100, OutputTokens: 20, LatencyMs: 400}})
	assert.Contains(t, buf.String(), "insight")
	assert.Contains(t, buf.String(), "TOTAL")
	assert.Contains(t, buf.String(), "120")
}

func TestWritePredictions(t *testing.T) {
	var buf bytes.Buffer
	writePredictions(&buf, nil)
	assert.Equal(t, "No predictions found.\n", buf.String())

	buf.Reset()
	writePredictions(&buf, []store.PredictionEvent{{
		ID: 4,
		PredictionEventData: store.PredictionEventData{
			SessionID: "0f8fad5b-d9cb-469f-a165-70867728950e",
			Income:    9, Education: 8, Parent: 0, Married: 1, Female: 1, Age: 42,
			Class: 1, Probability: 0.8334,
		},
	}})
	s := buf.String()
	assert.Contains(t, s, "0f8fad5b ")
	assert.NotContains(t, s, "d9cb")
	assert.Contains(t, s, "LinkedIn User")
	assert.Contains(t, s, "  9   8   0   1   1  42")
}

func TestWriteConfigRedactsKeys(t *testing.T) {
	cfg := config.Default()
	cfg.LLM.Provider = "openai"
	cfg.LLM.OpenAI.APIKey = "sk-secret"

	var buf bytes.Buffer
	require.NoError(t, writeConfig(&buf, cfg))

	s := buf.String()
	assert.NotContains(t, s, "sk-secret")
	assert.Contains(t, s, "<redacted>")
	assert.Contains(t, s, "provider: openai")
	assert.Contains(t, s, "model_path: "+config.DefaultModelPath)
	// The caller's copy is left alone.
	assert.Equal(t, "sk-secret", cfg.LLM.OpenAI.APIKey)
}

func TestVersionCommand(t *testing.T) {
	old := version
	version = "v0.3.1"
	t.Cleanup(func() { version = old })

	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	t.Cleanup(func() { versionCmd.SetOut(nil) })
	versionCmd.Run(versionCmd, nil)

	assert.True(t, strings.HasPrefix(buf.String(), "lipredict v0.3.1 (go"), buf.String())
}

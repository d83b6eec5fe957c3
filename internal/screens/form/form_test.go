package form

import (
	"encoding/json"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lipredict/internal/classifier"
	"github.com/abhisek/lipredict/internal/insight"
	"github.com/abhisek/lipredict/internal/llm"
	"github.com/abhisek/lipredict/internal/predict"
	"github.com/abhisek/lipredict/internal/router"
	"github.com/abhisek/lipredict/internal/screen"
)

type stubScreen struct{ title string }

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return s.title }
func (s *stubScreen) Title() string                          { return s.title }

func keyRune(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func keyCode(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestForm(t *testing.T, insightSvc *insight.Service) *FormScreen {
	t.Helper()
	m, err := classifier.New([]float64{0.1, 0.3, -0.2, 0.1, 0.05, -0.02}, -1, classifier.DefaultThreshold)
	require.NoError(t, err)
	return New(Deps{
		Predictor:  predict.NewService(m, nil, nil, ""),
		Insight:    insightSvc,
		Population: func() screen.Screen { return &stubScreen{title: "population"} },
	})
}

func TestLearnMoreGatedUntilPredicted(t *testing.T) {
	f := newTestForm(t, nil)
	assert.Equal(t, AwaitingPrediction, f.Phase())

	_, cmd := f.Update(keyRune('l'))
	assert.Nil(t, cmd)

	f.setFocus(focusLearn)
	_, cmd = f.Update(keyCode(tea.KeyEnter))
	assert.Nil(t, cmd)
}

func TestPredictThenLearnMore(t *testing.T) {
	f := newTestForm(t, nil)

	_, cmd := f.Update(keyRune('p'))
	assert.Nil(t, cmd, "fallback narrative needs no async work")
	assert.Equal(t, Predicted, f.Phase())
	require.NotNil(t, f.outcome)
	require.NotNil(t, f.narrative)
	assert.Equal(t, insight.SourceFallback, f.narrative.Source)

	_, cmd = f.Update(keyRune('l'))
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "population", push.Screen.Title())
}

func TestPredictButton(t *testing.T) {
	f := newTestForm(t, nil)
	f.setFocus(focusPredict)
	f.Update(keyCode(tea.KeyEnter))
	assert.Equal(t, Predicted, f.Phase())
}

func TestFocusAndSelection(t *testing.T) {
	f := newTestForm(t, nil)
	assert.Equal(t, "Less than $10k", f.Selections().Income)

	f.Update(keyCode(tea.KeyRight))
	assert.Equal(t, "$10k to $20k", f.Selections().Income)

	f.Update(keyCode(tea.KeyDown))
	f.Update(keyCode(tea.KeyRight))
	assert.Equal(t, "HS incomplete", f.Selections().Education)

	// Wraps from the top to the last control.
	f.setFocus(focusIncome)
	f.Update(keyCode(tea.KeyUp))
	assert.Equal(t, focusLearn, f.focus)
}

func TestContributionsFollowInputs(t *testing.T) {
	f := newTestForm(t, nil)
	before := append(f.contributions[:0:0], f.contributions...)

	f.setFocus(focusAge)
	f.Update(keyCode(tea.KeyEnd))
	assert.Equal(t, 98, f.Selections().Age)
	assert.NotEqual(t, before, f.contributions)
}

func TestChangingInputsClearsResultButKeepsPhase(t *testing.T) {
	f := newTestForm(t, nil)
	f.Update(keyRune('p'))
	require.NotNil(t, f.outcome)

	f.setFocus(focusGender)
	f.Update(keyCode(tea.KeyRight))

	assert.Nil(t, f.outcome)
	assert.Nil(t, f.narrative)
	assert.Equal(t, Predicted, f.Phase())

	_, cmd := f.Update(keyRune('l'))
	assert.NotNil(t, cmd)
}

func TestInsightRequestedAsync(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"headline":"Probably not on LinkedIn","summary":"Age dominates.","factors":["Age"]}`),
	})
	f := newTestForm(t, insight.NewService(mock, insight.DefaultConfig()))

	_, cmd := f.Update(keyRune('p'))
	require.NotNil(t, cmd)
	assert.True(t, f.pending)

	f.Update(cmd())
	assert.False(t, f.pending)
	require.NotNil(t, f.narrative)
	assert.Equal(t, insight.SourceLLM, f.narrative.Source)
	assert.Contains(t, f.View(100, 30), "Probably not on LinkedIn")
}

func TestInsightFailureFallsBack(t *testing.T) {
	mock := llm.NewMockProvider()
	f := newTestForm(t, insight.NewService(mock, insight.DefaultConfig()))

	_, cmd := f.Update(keyRune('p'))
	require.NotNil(t, cmd)
	f.Update(cmd())

	require.NotNil(t, f.narrative)
	assert.Equal(t, insight.SourceFallback, f.narrative.Source)
	assert.NotEmpty(t, f.insightErr)
}

func TestStaleInsightIgnored(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"headline":"old","summary":"","factors":[]}`),
	})
	f := newTestForm(t, insight.NewService(mock, insight.DefaultConfig()))

	_, cmd := f.Update(keyRune('p'))
	require.NotNil(t, cmd)
	f.Update(keyCode(tea.KeyRight))

	f.Update(cmd())
	assert.Nil(t, f.narrative)
}

func TestViewShowsResult(t *testing.T) {
	f := newTestForm(t, nil)
	assert.Contains(t, f.View(100, 30), "Top Factors Affecting Your Prediction")

	f.Update(keyRune('p'))
	view := f.View(100, 30)
	assert.Contains(t, view, "Predicted Class:")
	assert.Contains(t, view, f.outcome.Result.ProbabilityText())
}

func TestViewStacksWhenNarrow(t *testing.T) {
	f := newTestForm(t, nil)
	f.Update(keyRune('p'))

	view := f.View(80, 24)
	inputs := strings.Index(view, "Income")
	results := strings.Index(view, "Predicted Class:")
	require.GreaterOrEqual(t, inputs, 0)
	require.GreaterOrEqual(t, results, 0)
	assert.Less(t, inputs, results)
}

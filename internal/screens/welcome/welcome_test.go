package welcome

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lipredict/internal/router"
	"github.com/abhisek/lipredict/internal/screen"
)

type formStub struct{}

func (f formStub) Init() tea.Cmd                           { return nil }
func (f formStub) Update(tea.Msg) (screen.Screen, tea.Cmd) { return f, nil }
func (f formStub) View(int, int) string                    { return "form" }
func (f formStub) Title() string                           { return "LinkedIn User Prediction" }

const about = "6 inputs · threshold 0.50 · narratives: built-in summaries"

// newWelcome returns a screen and a counter of how often the form was built.
func newWelcome(about string) (*WelcomeScreen, *int) {
	built := 0
	return New(func() screen.Screen {
		built++
		return formStub{}
	}, about), &built
}

func advance(w *WelcomeScreen, d time.Duration) tea.Cmd {
	var cmd tea.Cmd
	for range int(d / tickInterval) {
		_, cmd = w.Update(tickMsg(time.Now()))
	}
	return cmd
}

func TestIntroRevealsInOrder(t *testing.T) {
	w, _ := newWelcome(about)

	view := w.View(100, 30)
	assert.NotContains(t, view, "LinkedIn User Prediction")
	assert.NotContains(t, view, "logistic regression")

	advance(w, 500*time.Millisecond)
	view = w.View(100, 30)
	assert.Contains(t, view, "LinkedIn User Prediction")
	assert.NotContains(t, view, "logistic regression")

	advance(w, time.Second)
	view = w.View(100, 30)
	assert.Contains(t, view, "logistic regression")
	assert.NotContains(t, view, "threshold 0.50")

	advance(w, 500*time.Millisecond)
	assert.Contains(t, w.View(100, 30), "threshold 0.50")
}

func TestIntroWithoutAbout(t *testing.T) {
	w, _ := newWelcome("")
	advance(w, 5*time.Second)
	view := w.View(100, 30)
	assert.Contains(t, view, "logistic regression")
	assert.NotContains(t, view, "narratives")
}

func TestContinueHintOnceRevealed(t *testing.T) {
	w, built := newWelcome(about)

	advance(w, time.Second)
	assert.NotContains(t, w.View(100, 30), "press any key")

	cmd := advance(w, 10*time.Second)
	assert.NotNil(t, cmd, "ticks keep the spinner running until a key is pressed")
	assert.Equal(t, revealed, w.elapsed)
	assert.Contains(t, w.View(100, 30), "press any key")
	assert.Zero(t, *built, "the form is only built on a key press")
}

func TestKeyPressHandsOverOnce(t *testing.T) {
	w, built := newWelcome(about)
	advance(w, 300*time.Millisecond)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	require.NotNil(t, cmd)
	replace, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "LinkedIn User Prediction", replace.Screen.Title())

	_, cmd = w.Update(tea.KeyPressMsg{Code: 'x'})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, *built)

	_, cmd = w.Update(tickMsg(time.Now()))
	assert.Nil(t, cmd, "no ticks after hand-over")
}

func TestBannerCompactFallback(t *testing.T) {
	assert.Contains(t, RenderBanner(20), bannerCompact)
	assert.Contains(t, RenderBanner(120), "██")
}

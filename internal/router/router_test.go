package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lipredict/internal/screen"
)

type pingMsg struct{}

// fakeScreen records Init calls and the messages it sees.
type fakeScreen struct {
	title string
	inits int
	seen  []tea.Msg
}

func (s *fakeScreen) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.seen = append(s.seen, msg)
	return s, nil
}

func (s *fakeScreen) View(int, int) string { return s.title + " view" }
func (s *fakeScreen) Title() string        { return s.title }

func TestRouter_PredictionFlow(t *testing.T) {
	welcome := &fakeScreen{title: "Welcome"}
	form := &fakeScreen{title: "Predict"}
	patterns := &fakeScreen{title: "Usage patterns"}
	r := New(welcome)

	r.Update(ReplaceScreenMsg{Screen: form})
	assert.Equal(t, 1, r.Depth(), "welcome is replaced, not stacked")
	assert.Equal(t, 1, form.inits)

	r.Update(PushScreenMsg{Screen: patterns})
	require.Equal(t, 2, r.Depth())
	assert.Same(t, patterns, r.Active())
	assert.Equal(t, 1, patterns.inits)
	assert.Equal(t, "Usage patterns view", r.View(80, 24))

	r.Update(PopScreenMsg{})
	assert.Same(t, form, r.Active())
	assert.Equal(t, 1, form.inits, "popping back does not re-init the form")
}

func TestRouter_PopKeepsRoot(t *testing.T) {
	form := &fakeScreen{title: "Predict"}
	r := New(form)

	assert.Nil(t, r.Pop())
	assert.Equal(t, 1, r.Depth())
	assert.Same(t, form, r.Active())
}

func TestRouter_ReplaceOnTopKeepsDepth(t *testing.T) {
	r := New(&fakeScreen{title: "Predict"})
	r.Push(&fakeScreen{title: "History"})

	fresh := &fakeScreen{title: "History (this session)"}
	r.Replace(fresh)

	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "History (this session)", r.Active().Title())
	assert.Equal(t, 1, fresh.inits)
}

func TestRouter_ForwardsOnlyToActive(t *testing.T) {
	form := &fakeScreen{title: "Predict"}
	history := &fakeScreen{title: "History"}
	r := New(form)
	r.Push(history)

	r.Update(pingMsg{})

	assert.Len(t, history.seen, 1)
	assert.Empty(t, form.seen)
}

func TestRouter_NavigationMsgsAreNotForwarded(t *testing.T) {
	form := &fakeScreen{title: "Predict"}
	r := New(form)

	r.Update(PushScreenMsg{Screen: &fakeScreen{title: "History"}})
	r.Update(PopScreenMsg{})

	assert.Empty(t, form.seen)
}

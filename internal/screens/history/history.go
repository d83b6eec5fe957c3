package history

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lipredict/internal/classifier"
	"github.com/abhisek/lipredict/internal/features"
	"github.com/abhisek/lipredict/internal/screen"
	"github.com/abhisek/lipredict/internal/store"
	"github.com/abhisek/lipredict/internal/ui/layout"
	"github.com/abhisek/lipredict/internal/ui/theme"
)

const pageSize = 50

type historyLoadedMsg struct {
	Events []store.PredictionEvent
	Err    error
}

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Expand  key.Binding
	Session key.Binding
	Back    key.Binding
}

var keys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Navigate")),
	Down:    key.NewBinding(key.WithKeys("down", "j")),
	Expand:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Details")),
	Session: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "This session / all")),
	Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Back")),
}

// HistoryScreen lists past predictions, newest first.
type HistoryScreen struct {
	eventRepo   store.EventRepo
	sessionID   string
	onlySession bool
	events      []store.PredictionEvent
	selected    int
	expanded    map[int]bool
	loaded      bool
	errMsg      string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen. sessionID is the current run; the screen
// starts out showing every session.
func New(eventRepo store.EventRepo, sessionID string) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		sessionID: sessionID,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	opts := store.QueryOpts{Limit: pageSize}
	if s.onlySession {
		opts.SessionID = s.sessionID
	}
	repo := s.eventRepo
	return func() tea.Msg {
		events, err := repo.QueryPredictions(context.Background(), opts)
		return historyLoadedMsg{Events: events, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	if s.onlySession {
		return "History (this session)"
	}
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFrom(keys.Expand, keys.Up, keys.Session, keys.Back)
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.errMsg = ""
			s.events = msg.Events
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if s.selected > 0 {
				s.selected--
			}
		case key.Matches(msg, keys.Down):
			if s.selected < len(s.events)-1 {
				s.selected++
			}
		case key.Matches(msg, keys.Expand):
			s.expanded[s.selected] = !s.expanded[s.selected]
		case key.Matches(msg, keys.Session):
			s.onlySession = !s.onlySession
			s.selected = 0
			s.expanded = make(map[int]bool)
			s.loaded = false
			return s, s.Init()
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.events) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No predictions yet. Press p on the form to make one.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, ev := range s.events {
		res := classifier.Result{Class: ev.Class, Probability: ev.Probability}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s  %-13s  p=%s  age %d",
			prefix, ev.Timestamp.Local().Format("Jan 02 15:04"), res.Label(), res.ProbabilityText(), ev.Age)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(detailLine(ev))))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func detailLine(ev store.PredictionEvent) string {
	sel, err := features.Decode(features.Vector{
		Income:    ev.Income,
		Education: ev.Education,
		Parent:    ev.Parent,
		Married:   ev.Married,
		Female:    ev.Female,
		Age:       ev.Age,
	})
	if err != nil {
		return "    " + err.Error()
	}
	return fmt.Sprintf("    %s · %s · parent: %s · %s · %s",
		sel.Income, sel.Education, sel.Parent, sel.Married, sel.Gender)
}

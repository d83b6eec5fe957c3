package welcome

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lipredict/internal/router"
	"github.com/abhisek/lipredict/internal/screen"
	"github.com/abhisek/lipredict/internal/ui/theme"
)

const tickInterval = 100 * time.Millisecond

const guide = `This app uses a logistic regression model trained on survey research data
to estimate the probability that a person uses LinkedIn based on
demographic and lifestyle characteristics.

Adjust the inputs to generate a personalized LinkedIn usage prediction.`

// spinner frames shown until the intro has fully revealed
var spinner = []string{"·  ", "·· ", "···", " ··", "  ·", "   "}

type tickMsg time.Time

// section is one block of the intro, shown once at has elapsed.
type section struct {
	at     time.Duration
	render func(w *WelcomeScreen, width int) string
}

var intro = []section{
	{0, func(_ *WelcomeScreen, width int) string { return RenderBanner(width) }},
	{500 * time.Millisecond, func(*WelcomeScreen, int) string {
		return lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("LinkedIn User Prediction")
	}},
	{1500 * time.Millisecond, func(*WelcomeScreen, int) string {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Align(lipgloss.Center).Render(guide)
	}},
	{2000 * time.Millisecond, func(w *WelcomeScreen, _ int) string {
		if w.about == "" {
			return ""
		}
		return lipgloss.NewStyle().Foreground(theme.Secondary).Render(w.about)
	}},
}

// revealed is when the last intro section appears.
var revealed = intro[len(intro)-1].at + time.Second

// WelcomeScreen shows the banner, the guide and a one-line model summary,
// then hands over to the screen produced by next on the first key press.
type WelcomeScreen struct {
	next    func() screen.Screen
	about   string
	elapsed time.Duration
	frame   int
	done    bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen. about is shown under the guide when non-empty.
func New(next func() screen.Screen, about string) *WelcomeScreen {
	return &WelcomeScreen{next: next, about: about}
}

func (w *WelcomeScreen) Title() string { return "" }

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.done {
			return w, nil
		}
		w.elapsed = min(w.elapsed+tickInterval, revealed)
		w.frame++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.handOver()
	}
	return w, nil
}

// handOver builds the next screen exactly once.
func (w *WelcomeScreen) handOver() tea.Cmd {
	if w.done {
		return nil
	}
	w.done = true
	next := w.next()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (w *WelcomeScreen) View(width, height int) string {
	var blocks []string
	for i, s := range intro {
		if w.elapsed < s.at {
			break
		}
		block := s.render(w, width)
		if block == "" {
			continue
		}
		if i > 0 {
			blocks = append(blocks, "")
		}
		blocks = append(blocks, block)
	}

	hint := "press any key to continue"
	if w.elapsed < revealed {
		hint = spinner[w.frame%len(spinner)]
	}
	blocks = append(blocks, "", lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(hint))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, blocks...))
}

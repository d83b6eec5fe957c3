package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/lipredict/internal/insight"
	"github.com/abhisek/lipredict/internal/predict"
	"github.com/abhisek/lipredict/internal/router"
	"github.com/abhisek/lipredict/internal/screen"
	"github.com/abhisek/lipredict/internal/screens/form"
	"github.com/abhisek/lipredict/internal/screens/history"
	"github.com/abhisek/lipredict/internal/screens/patterns"
	"github.com/abhisek/lipredict/internal/screens/welcome"
	"github.com/abhisek/lipredict/internal/store"
	"github.com/abhisek/lipredict/internal/ui/layout"
)

// Options holds the dependencies the TUI needs. Predictor and DatasetPath
// are required; the rest may be zero.
type Options struct {
	Predictor   *predict.Service
	Insight     *insight.Service
	EventRepo   store.EventRepo
	DatasetPath string
	Logger      *zap.Logger
	SkipIntro   bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	status string
	width  int
	height int
}

// newAppModel builds the screen graph: welcome, then the form, which can
// push the patterns and history screens.
func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	deps := form.Deps{
		Predictor: opts.Predictor,
		Insight:   opts.Insight,
		Logger:    logger,
		Population: func() screen.Screen {
			return patterns.New(opts.DatasetPath, logger)
		},
	}
	if opts.EventRepo != nil {
		sessionID := opts.Predictor.SessionID()
		deps.History = func() screen.Screen {
			return history.New(opts.EventRepo, sessionID)
		}
	}
	formFactory := func() screen.Screen { return form.New(deps) }

	var initial screen.Screen
	if opts.SkipIntro {
		initial = formFactory()
	} else {
		initial = welcome.New(formFactory, aboutLine(opts))
	}

	status := ""
	if opts.Insight != nil && opts.Insight.Enabled() {
		status = "✦ " + opts.Insight.ModelID()
	}

	return AppModel{
		router: router.New(initial),
		status: status,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status, m.width)

	footerHints := append(screen.Hints(active, m.router.Depth()), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	content := m.router.View(m.width, layout.ContentHeight(m.height))
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	if opts.Predictor == nil {
		return fmt.Errorf("app: predictor is required")
	}
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// aboutLine summarizes the loaded model and where narratives come from.
func aboutLine(opts Options) string {
	narratives := "built-in summaries"
	if opts.Insight != nil && opts.Insight.Enabled() {
		narratives = opts.Insight.ModelID()
	}
	return fmt.Sprintf("%d inputs · threshold %.2f · narratives: %s",
		len(opts.Predictor.Model().Coefficients()), opts.Predictor.Model().Threshold(), narratives)
}

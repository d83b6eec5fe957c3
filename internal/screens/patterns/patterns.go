// Package patterns shows LinkedIn usage rates in the survey data, one
// chart per demographic dimension.
package patterns

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/lipredict/internal/population"
	"github.com/abhisek/lipredict/internal/screen"
	"github.com/abhisek/lipredict/internal/ui/components"
	"github.com/abhisek/lipredict/internal/ui/layout"
	"github.com/abhisek/lipredict/internal/ui/theme"
)

type loadedMsg struct {
	tables  []population.Table
	overall float64
	rows    int
	err     error
}

var keyReload = key.NewBinding(
	key.WithKeys("r"),
	key.WithHelp("r", "Reload"),
)

var keyBack = key.NewBinding(
	key.WithKeys("esc"),
	key.WithHelp("Esc", "Back"),
)

// PatternsScreen loads the dataset each time it opens.
type PatternsScreen struct {
	path    string
	logger  *zap.Logger
	menu    components.Menu
	tables  []population.Table
	overall float64
	rows    int
	loading bool
	errMsg  string
}

var _ screen.Screen = (*PatternsScreen)(nil)
var _ screen.KeyHintProvider = (*PatternsScreen)(nil)

// New creates a population screen reading the CSV at path.
func New(path string, logger *zap.Logger) *PatternsScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	items := make([]components.MenuItem, len(population.Dimensions))
	for i, d := range population.Dimensions {
		items[i] = components.MenuItem{Label: d.Title}
	}
	return &PatternsScreen{
		path:   path,
		logger: logger,
		menu:   components.NewMenu(items),
	}
}

func (s *PatternsScreen) Init() tea.Cmd {
	return s.load()
}

func (s *PatternsScreen) load() tea.Cmd {
	s.loading = true
	s.errMsg = ""
	path := s.path
	return func() tea.Msg {
		ds, err := population.Load(path)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{
			tables:  population.Aggregate(ds),
			overall: population.Overall(ds),
			rows:    ds.Len(),
		}
	}
}

func (s *PatternsScreen) Title() string {
	return "Patterns in LinkedIn Usage"
}

func (s *PatternsScreen) KeyHints() []layout.KeyHint {
	hints := append(components.MenuHints(), keyReload, keyBack)
	return layout.HintsFrom(hints...)
}

func (s *PatternsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loading = false
		if msg.err != nil {
			s.logger.Warn("dataset load failed", zap.String("path", s.path), zap.Error(msg.err))
			s.errMsg = msg.err.Error()
			s.tables = nil
			return s, nil
		}
		s.logger.Debug("dataset loaded", zap.String("path", s.path), zap.Int("rows", msg.rows))
		s.tables = msg.tables
		s.overall = msg.overall
		s.rows = msg.rows
		return s, nil

	case tea.KeyPressMsg:
		if key.Matches(msg, keyReload) {
			return s, s.load()
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

// Selected returns the table under the menu cursor, if loaded.
func (s *PatternsScreen) Selected() (population.Table, bool) {
	if s.menu.Selected < 0 || s.menu.Selected >= len(s.tables) {
		return population.Table{}, false
	}
	return s.tables[s.menu.Selected], true
}

func (s *PatternsScreen) View(width, height int) string {
	center := func(text string) string {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(text)
	}

	if s.errMsg != "" {
		return center(theme.Negative.Render("Could not load survey data") + "\n\n" +
			theme.Body.Width(min(width-4, 70)).Render(s.errMsg) + "\n\n" +
			theme.Hint.Render("Fix the file and press r to reload."))
	}
	if s.loading {
		return center(theme.Hint.Render("Loading survey data..."))
	}

	menuWidth := 20
	chartWidth := width - menuWidth - 6

	heading := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Patterns Observed Based on LinkedIn Usage") + "\n" +
		theme.Hint.Render(fmt.Sprintf("%d respondents, %.1f%% use LinkedIn", s.rows, s.overall*100))

	left := lipgloss.NewStyle().Width(menuWidth).Render(s.menu.View())
	right := lipgloss.NewStyle().Width(chartWidth).Render(s.viewChart(chartWidth, height-6))

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	return lipgloss.NewStyle().Padding(1, 2).Render(heading + "\n\n" + body)
}

func (s *PatternsScreen) viewChart(width, height int) string {
	tb, ok := s.Selected()
	if !ok {
		return ""
	}

	var chart string
	switch tb.Dimension.Kind {
	case population.ChartLine:
		points := make([]components.Point, len(tb.Groups))
		for i, g := range tb.Groups {
			points[i] = components.Point{X: g.Key, Y: g.Percent()}
		}
		chartHeight := max(height-6, 4)
		if layout.IsCompactHeight(height) {
			chartHeight = max(height-10, 4)
		}
		lc := components.NewLineChart(tb.Dimension.Title, points, 100, width, chartHeight)
		lc.YUnit = "%"
		chart = lc.View()
	default:
		bars := make([]components.Bar, len(tb.Groups))
		for i, g := range tb.Groups {
			bars[i] = components.Bar{Label: g.Label, Value: g.Percent()}
		}
		bc := components.NewBarChart(tb.Dimension.Title, bars, 100, width)
		bc.Format = func(v float64) string { return fmt.Sprintf("%5.1f%%", v) }
		chart = bc.View()
	}

	var b strings.Builder
	b.WriteString(chart)
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(tb.Dimension.Axis + " vs. likelihood of LinkedIn use (%)"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Width(width).Render(tb.Dimension.Caption))
	return b.String()
}

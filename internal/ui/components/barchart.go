package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lipredict/internal/ui/theme"
)

// Bar is one labelled value in a BarChart.
type Bar struct {
	Label string
	Value float64
}

// BarChart draws horizontal bars scaled against Max.
type BarChart struct {
	Title  string
	Bars   []Bar
	Max    float64
	Width  int
	Format func(float64) string
	Empty  string
}

// NewBarChart creates a bar chart. A zero max scales against the largest bar.
func NewBarChart(title string, bars []Bar, scale float64, width int) BarChart {
	if scale <= 0 {
		for _, b := range bars {
			scale = max(scale, b.Value)
		}
	}
	return BarChart{
		Title: title,
		Bars:  bars,
		Max:   scale,
		Width: width,
		Format: func(v float64) string {
			return fmt.Sprintf("%.3f", v)
		},
	}
}

// View renders the chart, one bar per line.
func (c BarChart) View() string {
	var b strings.Builder
	if c.Title != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Title))
		b.WriteString("\n")
	}

	if len(c.Bars) == 0 {
		empty := c.Empty
		if empty == "" {
			empty = "No data"
		}
		b.WriteString(theme.Hint.Render(empty))
		return b.String()
	}

	labelWidth := 0
	valueWidth := 0
	for _, bar := range c.Bars {
		labelWidth = max(labelWidth, lipgloss.Width(bar.Label))
		valueWidth = max(valueWidth, len(c.Format(bar.Value)))
	}

	barWidth := c.Width - labelWidth - valueWidth - 4
	if barWidth < 4 {
		barWidth = 4
	}

	labelStyle := lipgloss.NewStyle().Width(labelWidth).Foreground(theme.TextDim)
	for i, bar := range c.Bars {
		filled := 0
		if c.Max > 0 {
			filled = int(float64(barWidth) * bar.Value / c.Max)
		}
		filled = min(max(filled, 0), barWidth)

		b.WriteString(labelStyle.Render(bar.Label))
		b.WriteString("  ")
		b.WriteString(theme.BarFilled.Render(strings.Repeat("█", filled)))
		b.WriteString(theme.BarEmpty.Render(strings.Repeat("░", barWidth-filled)))
		b.WriteString(" ")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(c.Format(bar.Value)))
		if i < len(c.Bars)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

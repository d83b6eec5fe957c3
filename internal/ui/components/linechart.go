package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lipredict/internal/ui/theme"
)

// Point is one (x, y) sample.
type Point struct {
	X float64
	Y float64
}

// LineChart plots points left to right on a character grid. Points must be
// sorted by X.
type LineChart struct {
	Title  string
	Points []Point
	YMax   float64
	Width  int
	Height int
	YUnit  string
}

// NewLineChart creates a line chart with a fixed y range [0, yMax].
func NewLineChart(title string, points []Point, yMax float64, width, height int) LineChart {
	return LineChart{Title: title, Points: points, YMax: yMax, Width: width, Height: height}
}

// Columns resamples the points into n columns by averaging the y values
// that land in each column. Empty columns carry the previous value.
func (c LineChart) Columns(n int) []float64 {
	if n <= 0 || len(c.Points) == 0 {
		return nil
	}
	lo, hi := c.Points[0].X, c.Points[len(c.Points)-1].X
	sums := make([]float64, n)
	counts := make([]int, n)
	for _, p := range c.Points {
		col := 0
		if hi > lo {
			col = int((p.X - lo) / (hi - lo) * float64(n-1))
		}
		col = min(max(col, 0), n-1)
		sums[col] += p.Y
		counts[col]++
	}

	out := make([]float64, n)
	last := c.Points[0].Y
	for i := range out {
		if counts[i] > 0 {
			last = sums[i] / float64(counts[i])
		}
		out[i] = last
	}
	return out
}

// View renders the chart with a y axis on the left and the x range below.
func (c LineChart) View() string {
	var b strings.Builder
	if c.Title != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Title))
		b.WriteString("\n")
	}
	if len(c.Points) == 0 {
		b.WriteString(theme.Hint.Render("No data"))
		return b.String()
	}

	yMax := c.YMax
	if yMax <= 0 {
		for _, p := range c.Points {
			yMax = max(yMax, p.Y)
		}
	}
	if yMax <= 0 {
		yMax = 1
	}

	topLabel := fmt.Sprintf("%.0f%s", yMax, c.YUnit)
	botLabel := fmt.Sprintf("0%s", c.YUnit)
	axisWidth := max(len(topLabel), len(botLabel)) + 1

	height := max(c.Height, 3)
	width := max(c.Width-axisWidth-1, 8)
	cols := c.Columns(width)

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", width))
	}
	for x, y := range cols {
		row := int(y / yMax * float64(height-1))
		row = min(max(row, 0), height-1)
		grid[height-1-row][x] = '•'
	}

	axisStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Width(axisWidth).Align(lipgloss.Right)
	for r, line := range grid {
		label := ""
		switch r {
		case 0:
			label = topLabel
		case height - 1:
			label = botLabel
		}
		b.WriteString(axisStyle.Render(label))
		b.WriteString(theme.BarEmpty.Render("│"))
		b.WriteString(theme.ChartLine.Render(string(line)))
		b.WriteString("\n")
	}

	first := fmt.Sprintf("%g", c.Points[0].X)
	last := fmt.Sprintf("%g", c.Points[len(c.Points)-1].X)
	gap := max(width-len(first)-len(last), 1)
	b.WriteString(strings.Repeat(" ", axisWidth+1))
	b.WriteString(theme.Hint.Render(first + strings.Repeat(" ", gap) + last))
	return b.String()
}

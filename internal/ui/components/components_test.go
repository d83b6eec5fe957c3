package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestSelector_Navigation(t *testing.T) {
	s := NewSelector("Gender", []string{"Male", "Female"}, "Female")
	assert.Equal(t, "Female", s.Value())

	// Unfocused selectors ignore keys.
	s, _ = s.Update(press(tea.KeyLeft))
	assert.Equal(t, "Female", s.Value())

	s.Focused = true
	s, _ = s.Update(press(tea.KeyLeft))
	assert.Equal(t, "Male", s.Value())

	// No wrap at either end.
	s, _ = s.Update(press(tea.KeyLeft))
	assert.Equal(t, "Male", s.Value())
	s, _ = s.Update(press(tea.KeyEnd))
	assert.Equal(t, "Female", s.Value())
	s, _ = s.Update(press(tea.KeyRight))
	assert.Equal(t, "Female", s.Value())
}

func TestSelector_UnknownSelectedDefaultsToFirst(t *testing.T) {
	s := NewSelector("Parent", []string{"Yes", "No"}, "Maybe")
	assert.Equal(t, "Yes", s.Value())
	assert.Contains(t, s.View(10), "Yes")
}

func TestSlider_Clamps(t *testing.T) {
	s := NewSlider("Age", 18, 98, 200)
	assert.Equal(t, 98, s.Value)

	s.Focused = true
	s, _ = s.Update(press(tea.KeyRight))
	assert.Equal(t, 98, s.Value)

	s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModShift})
	assert.Equal(t, 88, s.Value)

	s, _ = s.Update(press(tea.KeyHome))
	assert.Equal(t, 18, s.Value)
	s, _ = s.Update(press(tea.KeyLeft))
	assert.Equal(t, 18, s.Value)

	assert.Contains(t, s.View(8, 20), "18")
}

func TestBarChart_View(t *testing.T) {
	c := NewBarChart("Strength", []Bar{
		{Label: "Education", Value: 2},
		{Label: "Age", Value: 1},
	}, 0, 40)
	assert.Equal(t, 2.0, c.Max)

	lines := strings.Split(c.View(), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "Education")
	assert.Contains(t, lines[1], "2.000")
	assert.Greater(t, strings.Count(lines[1], "█"), strings.Count(lines[2], "█"))
}

func TestBarChart_Empty(t *testing.T) {
	c := NewBarChart("", nil, 0, 40)
	c.Empty = "nothing to show"
	assert.Contains(t, c.View(), "nothing to show")
}

func TestLineChart_Columns(t *testing.T) {
	c := NewLineChart("", []Point{{X: 0, Y: 10}, {X: 1, Y: 20}, {X: 4, Y: 40}}, 100, 20, 5)

	cols := c.Columns(5)
	assert.Equal(t, []float64{10, 20, 20, 20, 40}, cols)
	assert.Nil(t, c.Columns(0))

	view := c.View()
	assert.Contains(t, view, "100")
	assert.Contains(t, view, "•")
}

func TestButton_Disabled(t *testing.T) {
	pressed := 0
	b := NewButton("Learn more", func() tea.Cmd {
		pressed++
		return nil
	})
	b.Focused = true
	b.Disabled = true

	b, _ = b.Update(press(tea.KeyEnter))
	assert.Equal(t, 0, pressed)

	b.Disabled = false
	b.Update(press(tea.KeyEnter))
	assert.Equal(t, 1, pressed)
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "a", Disabled: true},
		{Label: "b"},
		{Label: "c", Disabled: true},
		{Label: "d"},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(press(tea.KeyDown))
	assert.Equal(t, 3, m.Selected)
	m, _ = m.Update(press(tea.KeyUp))
	assert.Equal(t, 1, m.Selected)
	m, _ = m.Update(press(tea.KeyUp))
	assert.Equal(t, 1, m.Selected)
}

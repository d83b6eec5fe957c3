package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lipredict/internal/ui/theme"
)

const sliderJump = 10

// Slider picks an integer in [Min, Max].
type Slider struct {
	Label   string
	Min     int
	Max     int
	Value   int
	Focused bool
}

// NewSlider creates a slider. value is clamped into range.
func NewSlider(label string, min, max, value int) Slider {
	s := Slider{Label: label, Min: min, Max: max}
	s.Value = s.clamp(value)
	return s
}

func (s Slider) clamp(v int) int {
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}

// Update handles arrow keys while focused.
func (s Slider) Update(msg tea.Msg) (Slider, tea.Cmd) {
	if !s.Focused {
		return s, nil
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(kmsg, KeyPrev):
		s.Value = s.clamp(s.Value - 1)
	case key.Matches(kmsg, KeyNext):
		s.Value = s.clamp(s.Value + 1)
	case key.Matches(kmsg, KeyJumpPrev):
		s.Value = s.clamp(s.Value - sliderJump)
	case key.Matches(kmsg, KeyJumpNext):
		s.Value = s.clamp(s.Value + sliderJump)
	case key.Matches(kmsg, KeyFirst):
		s.Value = s.Min
	case key.Matches(kmsg, KeyLast):
		s.Value = s.Max
	}
	return s, nil
}

// View renders the label, a track of trackWidth cells and the value.
func (s Slider) View(labelWidth, trackWidth int) string {
	label := lipgloss.NewStyle().Width(labelWidth).Foreground(theme.TextDim).Render(s.Label)
	if trackWidth < 3 {
		trackWidth = 3
	}

	pos := 0
	if s.Max > s.Min {
		pos = (s.Value - s.Min) * (trackWidth - 1) / (s.Max - s.Min)
	}

	knobStyle := theme.Unselected
	if s.Focused {
		knobStyle = theme.Selected
	}
	track := theme.BarFilled.Render(strings.Repeat("━", pos)) +
		knobStyle.Render("●") +
		theme.BarEmpty.Render(strings.Repeat("─", trackWidth-pos-1))

	return label + track + " " + knobStyle.Render(fmt.Sprintf("%d", s.Value))
}

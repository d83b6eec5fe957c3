package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lipredict/internal/ui/theme"
)

// Selector is a single-line option picker cycled with the arrow keys.
type Selector struct {
	Label   string
	Options []string
	Index   int
	Focused bool
}

// NewSelector creates a selector positioned on selected, or on the first
// option if selected is not one of options.
func NewSelector(label string, options []string, selected string) Selector {
	s := Selector{Label: label, Options: options}
	for i, o := range options {
		if o == selected {
			s.Index = i
			break
		}
	}
	return s
}

// Value returns the selected option.
func (s Selector) Value() string {
	if s.Index < 0 || s.Index >= len(s.Options) {
		return ""
	}
	return s.Options[s.Index]
}

// Update handles arrow keys while focused. It does not wrap.
func (s Selector) Update(msg tea.Msg) (Selector, tea.Cmd) {
	if !s.Focused {
		return s, nil
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(kmsg, KeyPrev):
		if s.Index > 0 {
			s.Index--
		}
	case key.Matches(kmsg, KeyNext):
		if s.Index < len(s.Options)-1 {
			s.Index++
		}
	case key.Matches(kmsg, KeyFirst):
		s.Index = 0
	case key.Matches(kmsg, KeyLast):
		s.Index = len(s.Options) - 1
	}
	return s, nil
}

// View renders the selector as "label  ◂ value ▸" padded to labelWidth.
func (s Selector) View(labelWidth int) string {
	label := lipgloss.NewStyle().Width(labelWidth).Foreground(theme.TextDim).Render(s.Label)

	prev, next := "  ", "  "
	if s.Focused {
		if s.Index > 0 {
			prev = "◂ "
		}
		if s.Index < len(s.Options)-1 {
			next = " ▸"
		}
	}

	value := theme.Unselected.Render(s.Value())
	if s.Focused {
		value = theme.Selected.Render(s.Value())
	}

	arrows := lipgloss.NewStyle().Foreground(theme.Primary)
	return label + arrows.Render(prev) + value + arrows.Render(next)
}

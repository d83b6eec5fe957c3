package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lipredict/internal/ui/theme"
)

// Button is a styled button component. Focused buttons respond to Enter;
// disabled buttons never do.
type Button struct {
	Label    string
	Focused  bool
	Disabled bool
	OnPress  func() tea.Cmd
}

// NewButton creates a new button.
func NewButton(label string, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		OnPress: onPress,
	}
}

// Update handles key events.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Focused || b.Disabled {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		if key.Matches(kmsg, KeyPress) && b.OnPress != nil {
			return b, b.OnPress()
		}
	}

	return b, nil
}

// View renders the button.
func (b Button) View() string {
	switch {
	case b.Disabled:
		return theme.ButtonInactive.Foreground(theme.Border).Render("  " + b.Label + " ")
	case b.Focused:
		return theme.ButtonActive.Render("▸ " + b.Label + " ")
	default:
		return theme.ButtonInactive.Render("  " + b.Label + " ")
	}
}

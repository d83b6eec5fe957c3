package components

import "charm.land/bubbles/v2/key"

// Shared bindings for value controls. Screens own focus movement.
var (
	KeyPrev = key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←→", "Change"),
	)
	KeyNext = key.NewBinding(
		key.WithKeys("right"),
	)
	KeyJumpPrev = key.NewBinding(
		key.WithKeys("shift+left", "pgdown"),
	)
	KeyJumpNext = key.NewBinding(
		key.WithKeys("shift+right", "pgup"),
	)
	KeyFirst = key.NewBinding(
		key.WithKeys("home"),
	)
	KeyLast = key.NewBinding(
		key.WithKeys("end"),
	)
	KeyPress = key.NewBinding(
		key.WithKeys("enter", "space"),
		key.WithHelp("Enter", "Select"),
	)
)

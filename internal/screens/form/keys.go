package form

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Predict key.Binding
	Learn   key.Binding
	History key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("down", "tab"),
			key.WithHelp("↑↓", "Field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up", "shift+tab"),
		),
		Predict: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Predict"),
		),
		Learn: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "Learn more"),
			key.WithDisabled(),
		),
		History: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "History"),
		),
	}
}

// Package screen defines the contract between the router and the lipredict
// screens: the animated welcome, the prediction form, the usage patterns
// charts and the prediction history.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lipredict/internal/ui/layout"
)

// Screen is one page of the TUI. The router owns the stack; only the top
// screen receives messages.
type Screen interface {
	// Init runs once when the screen is pushed or swapped in.
	Init() tea.Cmd

	// Update handles a message. Navigation is requested by returning a
	// command that yields a router message.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area between header and footer.
	View(width, height int) string

	// Title is shown in the header. The welcome screen returns "".
	Title() string
}

// KeyHintProvider is implemented by screens with their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// backHint is shown for stacked screens without hints of their own.
var backHint = layout.KeyHint{Key: "Esc", Description: "Back"}

// Hints returns the footer hints for s. Screens above the root that do not
// provide hints get a single Esc hint.
func Hints(s Screen, depth int) []layout.KeyHint {
	if p, ok := s.(KeyHintProvider); ok {
		return p.KeyHints()
	}
	if depth > 1 {
		return []layout.KeyHint{backHint}
	}
	return nil
}

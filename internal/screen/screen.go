// Package screen declares the contract every funnel step's screen
// implements. Screens render and collect intent; they never mutate
// funnel state themselves, they emit messages the application applies.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/perfily/perfily-cli/internal/ui/layout"
)

// Screen is one step of the funnel as shown to the visitor.
type Screen interface {
	// Init returns the command to run when the screen is mounted,
	// such as the payment screen's countdown tick.
	Init() tea.Cmd

	// Update handles a message and returns the updated screen plus a
	// follow-up command. Intent messages (answer chosen, unlock asked)
	// surface here for the application to catch.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen body; the frame adds header and footer.
	View(width, height int) string

	// Title is shown in the header next to the session badge.
	Title() string
}

// KeyHintProvider lets a screen put its own key hints in the footer.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

package router

import (
	"github.com/perfily/perfily-cli/internal/screen"

	tea "charm.land/bubbletea/v2"
)

// NavigateMsg requests navigation to a path. Screens emit it; the
// application translates it into a location change, which in turn
// drives which screen is active.
type NavigateMsg struct {
	Path string
}

// Navigate returns a command that emits a NavigateMsg.
func Navigate(path string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Path: path}
	}
}

// Router holds the active screen. Unlike a stacked navigator, the
// funnel has exactly one live screen at a time; history is the funnel
// state itself, not a screen stack.
type Router struct {
	active screen.Screen
}

// New creates a Router with the given initial screen.
func New(initial screen.Screen) *Router {
	return &Router{active: initial}
}

// Replace swaps in a new active screen and calls its Init().
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.active = s
	if s == nil {
		return nil
	}
	return s.Init()
}

// Active returns the current screen.
func (r *Router) Active() screen.Screen {
	return r.active
}

// Update forwards a message to the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if r.active == nil {
		return nil
	}

	updated, cmd := r.active.Update(msg)
	r.active = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	if r.active == nil {
		return ""
	}
	return r.active.View(width, height)
}

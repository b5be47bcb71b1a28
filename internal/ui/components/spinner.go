package components

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/perfily/perfily-cli/internal/ui/theme"
)

// Spinner wraps bubbles/spinner with Perfily styling.
type Spinner struct {
	Model spinner.Model
	Label string
}

// NewSpinner creates a styled spinner with a label shown next to it.
func NewSpinner(label string) Spinner {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
	)
	return Spinner{Model: sp, Label: label}
}

// Init starts the spinner animation.
func (s Spinner) Init() tea.Cmd {
	return s.Model.Tick
}

// Update advances the animation.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the spinner with its label.
func (s Spinner) View() string {
	view := s.Model.View()
	if s.Label != "" {
		view += " " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.Label)
	}
	return view
}

// Package landing renders the pitch page for a single test, between
// picking it and answering questions.
package landing

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/perfily/perfily-cli/internal/catalog"
	"github.com/perfily/perfily-cli/internal/router"
	"github.com/perfily/perfily-cli/internal/screen"
	"github.com/perfily/perfily-cli/internal/ui/components"
	"github.com/perfily/perfily-cli/internal/ui/layout"
	"github.com/perfily/perfily-cli/internal/ui/theme"
)

// StartMsg is emitted when the visitor presses the call to action.
type StartMsg struct {
	Slug string
}

// LandingScreen pitches one test and starts its quiz.
type LandingScreen struct {
	test    catalog.Test
	button  components.Button
	spin    components.Spinner
	loading bool
}

var _ screen.Screen = (*LandingScreen)(nil)

// New creates a landing screen for the given test.
func New(test catalog.Test) *LandingScreen {
	l := &LandingScreen{
		test: test,
		spin: components.NewSpinner("Preparando seu teste..."),
	}
	l.button = components.NewButton(test.CTALabel, true, func() tea.Cmd {
		return func() tea.Msg {
			return StartMsg{Slug: test.Slug}
		}
	})
	return l
}

func (l *LandingScreen) Init() tea.Cmd {
	return nil
}

func (l *LandingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if l.loading {
		var cmd tea.Cmd
		l.spin, cmd = l.spin.Update(msg)
		return l, cmd
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return l, router.Navigate("/")
	}

	var cmd tea.Cmd
	l.button, cmd = l.button.Update(msg)
	if cmd != nil {
		// The call to action fired; show the spinner until the
		// application swaps this screen out or rebuilds it on error.
		l.loading = true
		return l, tea.Batch(cmd, l.spin.Init())
	}
	return l, nil
}

func (l *LandingScreen) View(width, height int) string {
	accent := theme.Accent(l.test.Color)

	var sections []string
	sections = append(sections,
		lipgloss.NewStyle().Foreground(accent).Bold(true).Align(lipgloss.Center).Width(width).
			Render(l.test.Icon+"  "+l.test.Title),
		"",
		theme.Subtitle.Width(width).Render(l.test.Headline),
		"",
		theme.Body.Width(width).Align(lipgloss.Center).Render(l.test.Description),
		"",
	)

	if l.loading {
		sections = append(sections, lipgloss.NewStyle().Align(lipgloss.Center).Width(width).Render(l.spin.View()))
	} else {
		sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, l.button.View()))
	}

	content := strings.Join(sections, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(content)
}

func (l *LandingScreen) Title() string {
	return l.test.Title
}

// KeyHints implements screen.KeyHintProvider.
func (l *LandingScreen) KeyHints() []layout.KeyHint {
	if l.loading {
		return []layout.KeyHint{{Key: "ctrl+c", Description: "sair"}}
	}
	return []layout.KeyHint{
		{Key: "enter", Description: "começar"},
		{Key: "esc", Description: "voltar"},
		{Key: "ctrl+c", Description: "sair"},
	}
}

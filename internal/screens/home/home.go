// Package home renders the test picker, the funnel's entry point.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/perfily/perfily-cli/internal/catalog"
	"github.com/perfily/perfily-cli/internal/screen"
	"github.com/perfily/perfily-cli/internal/ui/components"
	"github.com/perfily/perfily-cli/internal/ui/layout"
	"github.com/perfily/perfily-cli/internal/ui/theme"
)

// SelectMsg is emitted when the visitor picks a test.
type SelectMsg struct {
	Slug string
}

// HomeScreen lists the available tests.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen over the test catalog.
func New() *HomeScreen {
	tests := catalog.All()
	items := make([]components.MenuItem, 0, len(tests)+1)
	for _, t := range tests {
		slug := t.Slug
		items = append(items, components.MenuItem{
			Label:       t.Icon + "  " + t.Title,
			Description: t.Description,
			Accent:      theme.Accent(t.Color),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return SelectMsg{Slug: slug}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "Sair",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections,
		theme.Title.Width(width).Render("Perfily"),
		theme.Subtitle.Width(width).Render("Descubra quem você é de verdade"),
		"",
		h.menu.View(),
	)

	content := strings.Join(sections, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Início"
}

// KeyHints implements screen.KeyHintProvider.
func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "navegar"},
		{Key: "enter", Description: "escolher"},
		{Key: "ctrl+c", Description: "sair"},
	}
}

// Package preview renders the teaser profile with the paywall pitch.
package preview

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/perfily/perfily-cli/internal/api"
	"github.com/perfily/perfily-cli/internal/catalog"
	"github.com/perfily/perfily-cli/internal/screen"
	"github.com/perfily/perfily-cli/internal/ui/components"
	"github.com/perfily/perfily-cli/internal/ui/layout"
	"github.com/perfily/perfily-cli/internal/ui/theme"
)

// UnlockMsg is emitted when the visitor asks for the full report.
type UnlockMsg struct{}

// BackMsg is emitted when the visitor returns to the landing page.
type BackMsg struct{}

// PreviewScreen shows the partial result and sells the full one.
type PreviewScreen struct {
	test   catalog.Test
	result api.Result
	button components.Button
}

var _ screen.Screen = (*PreviewScreen)(nil)

// New creates a preview screen for a scored but locked result.
func New(test catalog.Test, result api.Result) *PreviewScreen {
	p := &PreviewScreen{test: test, result: result}
	p.button = components.NewButton("Desbloquear resultado completo", true, func() tea.Cmd {
		return func() tea.Msg {
			return UnlockMsg{}
		}
	})
	return p
}

func (p *PreviewScreen) Init() tea.Cmd {
	return nil
}

func (p *PreviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return p, func() tea.Msg { return BackMsg{} }
	}

	var cmd tea.Cmd
	p.button, cmd = p.button.Update(msg)
	return p, cmd
}

func (p *PreviewScreen) View(width, height int) string {
	accent := theme.Accent(p.test.Color)
	cw := min(width-4, 72)

	card := theme.Card.Width(cw).Render(
		lipgloss.NewStyle().Foreground(accent).Bold(true).Render("Seu perfil: "+p.result.Profile) +
			"\n\n" +
			theme.Body.Render(p.result.Phrase),
	)

	price := theme.PriceOld.Render("de "+catalog.FormatBRL(catalog.PriceOld)) +
		"  " +
		theme.PriceNew.Render("por "+catalog.FormatBRL(catalog.PriceNew))

	var sections []string
	sections = append(sections,
		lipgloss.PlaceHorizontal(width, lipgloss.Center, card),
		"",
		theme.Subtitle.Width(width).Render(p.test.UnlockPitch),
		"",
		lipgloss.PlaceHorizontal(width, lipgloss.Center, price),
		"",
		lipgloss.PlaceHorizontal(width, lipgloss.Center, p.button.View()),
	)

	content := strings.Join(sections, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(content)
}

func (p *PreviewScreen) Title() string {
	return "Seu resultado"
}

// KeyHints implements screen.KeyHintProvider.
func (p *PreviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "enter", Description: "desbloquear"},
		{Key: "esc", Description: "voltar"},
		{Key: "ctrl+c", Description: "sair"},
	}
}

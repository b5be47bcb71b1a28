// Package result renders the full unlocked report.
package result

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/perfily/perfily-cli/internal/api"
	"github.com/perfily/perfily-cli/internal/catalog"
	"github.com/perfily/perfily-cli/internal/router"
	"github.com/perfily/perfily-cli/internal/screen"
	"github.com/perfily/perfily-cli/internal/ui/layout"
	"github.com/perfily/perfily-cli/internal/ui/theme"
)

// ResultScreen shows the complete report, scrollable when it overflows.
type ResultScreen struct {
	test   catalog.Test
	result api.Result
	offset int
}

var _ screen.Screen = (*ResultScreen)(nil)

// New creates a result screen.
func New(test catalog.Test, result api.Result) *ResultScreen {
	return &ResultScreen{test: test, result: result}
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if r.offset > 0 {
			r.offset--
		}
	case "down", "j":
		r.offset++
	case "enter", "esc":
		return r, router.Navigate("/")
	}
	return r, nil
}

func (r *ResultScreen) View(width, height int) string {
	accent := theme.Accent(r.test.Color)
	cw := min(width-4, 76)

	body := r.result.FullText
	if body == "" {
		// The full text should be present once unlocked; fall back to
		// the teaser rather than an empty page.
		body = r.result.Phrase
	}

	header := lipgloss.NewStyle().Foreground(accent).Bold(true).Align(lipgloss.Center).Width(width).
		Render(r.test.Icon+"  "+r.result.Profile) +
		"\n\n"

	lines := strings.Split(
		lipgloss.NewStyle().Width(cw).Render(theme.Body.Render(body)),
		"\n",
	)

	visible := height - lipgloss.Height(header) - 2
	if visible < 1 {
		visible = 1
	}

	maxOffset := len(lines) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if r.offset > maxOffset {
		r.offset = maxOffset
	}

	end := r.offset + visible
	if end > len(lines) {
		end = len(lines)
	}
	page := strings.Join(lines[r.offset:end], "\n")

	return header + lipgloss.PlaceHorizontal(width, lipgloss.Center, page)
}

func (r *ResultScreen) Title() string {
	return "Resultado completo"
}

// KeyHints implements screen.KeyHintProvider.
func (r *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "rolar"},
		{Key: "enter", Description: "início"},
		{Key: "ctrl+c", Description: "sair"},
	}
}

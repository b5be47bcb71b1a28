// Package layout renders the frame around every screen: header with the
// brand and session badge, footer with key hints, minimum-size guard.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/perfily/perfily-cli/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage fills the terminal with a resize prompt.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal muito pequeno!\n\nAumente para pelo menos %d x %d\n\nAtual: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader renders the top bar: brand on the left, screen title in
// the center, and a short session badge on the right once a scoring
// session exists.
func RenderHeader(title, sessionID string, width int) string {
	brand := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  Perfily")

	badge := ""
	if sessionID != "" {
		badge = lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("ID: " + shortID(sessionID))
	}

	inner := width - 4
	if inner < 0 {
		inner = 0
	}

	centered := lipgloss.PlaceHorizontal(inner, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Render(title))

	line := overlayEnds(centered, brand, badge)

	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(line)
}

// overlayEnds pins left and right onto the ends of a pre-centered line,
// padding with spaces when the line is too short to hold all three.
func overlayEnds(line, left, right string) string {
	lw := lipgloss.Width(left)
	rw := lipgloss.Width(right)
	cw := lipgloss.Width(line)

	middle := strings.TrimSpace(line)
	mw := lipgloss.Width(middle)

	gapLeft := (cw-mw)/2 - lw
	if gapLeft < 1 {
		gapLeft = 1
	}
	gapRight := cw - lw - gapLeft - mw - rw
	if gapRight < 1 {
		gapRight = 1
	}
	return left + strings.Repeat(" ", gapLeft) + middle + strings.Repeat(" ", gapRight) + right
}

// RenderFooter renders the key hint bar.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key)+
				" "+
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description))
	}

	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render("  " + strings.Join(parts, "   "))
}

// RenderFrame stacks header, content, and footer to fill the terminal.
func RenderFrame(header, content, footer string, width, height int) string {
	body := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if body < 0 {
		body = 0
	}

	return header + "\n" +
		lipgloss.NewStyle().Width(width).Height(body).Render(content) + "\n" +
		footer
}

// shortID truncates a session id to its first 8 characters.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

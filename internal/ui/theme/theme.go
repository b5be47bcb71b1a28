package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette. Calm base with one accent per test type.
var (
	Primary = lipgloss.Color("#6366F1") // Indigo
	Success = lipgloss.Color("#22C55E") // Green
	Error   = lipgloss.Color("#F43F5E") // Rose
	Warning = lipgloss.Color("#F59E0B") // Amber
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	BgDark  = lipgloss.Color("#0F172A") // Deep Navy
	BgCard  = lipgloss.Color("#1E293B") // Dark Slate
	Border  = lipgloss.Color("#334155") // Slate
)

// Per-test accent colors, keyed by the catalog color name.
var accents = map[string]color.Color{
	"indigo":  lipgloss.Color("#818CF8"),
	"emerald": lipgloss.Color("#34D399"),
	"rose":    lipgloss.Color("#FB7185"),
	"amber":   lipgloss.Color("#FBBF24"),
}

// Accent returns the accent color for a catalog color name, falling
// back to the primary color for unknown names.
func Accent(name string) color.Color {
	if c, ok := accents[name]; ok {
		return c
	}
	return Primary
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	ErrorBanner = lipgloss.NewStyle().
			Foreground(Text).
			Background(Error).
			Bold(true).
			Padding(0, 1)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Answered = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Primary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)

	PriceOld = lipgloss.NewStyle().
			Foreground(TextDim).
			Strikethrough(true)

	PriceNew = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)
)

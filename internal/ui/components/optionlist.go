package components

import (
	"fmt"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/perfily/perfily-cli/internal/ui/theme"
)

// Option is one selectable answer with its stable option code.
type Option struct {
	Code  string
	Label string
}

// OptionList is a selector over the options of a single question. There
// is no correct answer; choosing any option confirms it.
type OptionList struct {
	Question string
	Options  []Option
	Selected int
	Chosen   string // code of the confirmed option, empty until chosen
}

// NewOptionList creates an option list. If chosen matches an option
// code the cursor starts there, so revisiting a question preselects the
// earlier answer.
func NewOptionList(question string, options []Option, chosen string) OptionList {
	selected := 0
	for i, opt := range options {
		if chosen != "" && opt.Code == chosen {
			selected = i
			break
		}
	}
	return OptionList{
		Question: question,
		Options:  options,
		Selected: selected,
	}
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and confirmation.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if o.Selected > 0 {
			o.Selected--
		}
	case "down", "j":
		if o.Selected < len(o.Options)-1 {
			o.Selected++
		}
	case "enter":
		if o.Selected >= 0 && o.Selected < len(o.Options) {
			o.Chosen = o.Options[o.Selected].Code
		}
	default:
		// Number keys jump to and confirm an option directly.
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(o.Options) {
			o.Selected = n - 1
			o.Chosen = o.Options[o.Selected].Code
		}
	}

	return o, nil
}

// View renders the question and its options.
func (o OptionList) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(o.Question) + "\n\n"

	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, opt.Code, opt.Label)

		if i == o.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}

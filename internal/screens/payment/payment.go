// Package payment renders the Pix payment instructions and polls for
// the unlock while they are on screen.
package payment

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/perfily/perfily-cli/internal/catalog"
	"github.com/perfily/perfily-cli/internal/screen"
	"github.com/perfily/perfily-cli/internal/ui/components"
	"github.com/perfily/perfily-cli/internal/ui/layout"
	"github.com/perfily/perfily-cli/internal/ui/theme"
)

// CheckMsg asks the application to check whether the report unlocked.
// Manual marks a visitor-initiated check, which gets louder feedback.
type CheckMsg struct {
	Manual bool
}

// CancelMsg is emitted when the visitor abandons the payment step or
// the instructions expire.
type CancelMsg struct{}

// StatusMsg updates the status line after a check completes.
type StatusMsg struct {
	Text string
}

// tickMsg advances the countdown once per second.
type tickMsg time.Time

// PaymentScreen shows the Pix code with a countdown and an unlock poll.
type PaymentScreen struct {
	test      catalog.Test
	code      string
	remaining time.Duration
	poll      time.Duration
	sincePoll time.Duration
	status    string
	checking  bool
	spin      components.Spinner
}

var _ screen.Screen = (*PaymentScreen)(nil)

// New creates a payment screen. expiry is how long the instructions
// stay valid; poll is the automatic unlock check interval.
func New(test catalog.Test, sessionID string, expiry, poll time.Duration) *PaymentScreen {
	return &PaymentScreen{
		test:      test,
		code:      pixCode(sessionID),
		remaining: expiry,
		poll:      poll,
		status:    "Aguardando pagamento...",
		spin:      components.NewSpinner("Verificando..."),
	}
}

// Init starts the countdown and fires the first unlock check right
// away; later checks follow the poll interval.
func (p *PaymentScreen) Init() tea.Cmd {
	p.checking = true
	return tea.Batch(
		tick(),
		p.spin.Init(),
		func() tea.Msg { return CheckMsg{} },
	)
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (p *PaymentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		p.remaining -= time.Second
		if p.remaining <= 0 {
			p.status = "Tempo esgotado."
			return p, func() tea.Msg { return CancelMsg{} }
		}

		p.sincePoll += time.Second
		if p.sincePoll >= p.poll && !p.checking {
			p.sincePoll = 0
			p.checking = true
			return p, tea.Batch(
				tick(),
				p.spin.Init(),
				func() tea.Msg { return CheckMsg{} },
			)
		}
		return p, tick()

	case StatusMsg:
		p.status = msg.Text
		p.checking = false
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return p, func() tea.Msg { return CancelMsg{} }
		case "enter", "v":
			if p.checking {
				return p, nil
			}
			p.sincePoll = 0
			p.checking = true
			return p, tea.Batch(
				p.spin.Init(),
				func() tea.Msg { return CheckMsg{Manual: true} },
			)
		}
	}

	if p.checking {
		var cmd tea.Cmd
		p.spin, cmd = p.spin.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *PaymentScreen) View(width, height int) string {
	cw := min(width-4, 72)

	codeBox := theme.Card.Width(cw).Render(
		theme.Hint.Render("Pix copia e cola") + "\n" +
			theme.Body.Render(wrapCode(p.code, cw-4)),
	)

	statusLine := theme.Subtitle.Width(width).Render(p.status)
	if p.checking {
		statusLine = lipgloss.NewStyle().Align(lipgloss.Center).Width(width).Render(p.spin.View())
	}

	var sections []string
	sections = append(sections,
		theme.Title.Width(width).Render("Pagamento"),
		theme.Subtitle.Width(width).Render(
			"Pague "+catalog.FormatBRL(catalog.PriceNew)+" para liberar seu resultado completo"),
		"",
		lipgloss.PlaceHorizontal(width, lipgloss.Center, codeBox),
		"",
		theme.Subtitle.Width(width).Render(fmt.Sprintf("Este código expira em %s", formatCountdown(p.remaining))),
		"",
		statusLine,
	)

	content := strings.Join(sections, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(content)
}

func (p *PaymentScreen) Title() string {
	return "Pagamento"
}

// Remaining exposes the countdown for tests.
func (p *PaymentScreen) Remaining() time.Duration {
	return p.remaining
}

// KeyHints implements screen.KeyHintProvider.
func (p *PaymentScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "enter", Description: "já paguei"},
		{Key: "esc", Description: "voltar"},
		{Key: "ctrl+c", Description: "sair"},
	}
}

// pixCode builds the static copy-and-paste payload shown to the
// visitor. The session id ties the transfer back to this quiz run.
func pixCode(sessionID string) string {
	ref := sessionID
	if len(ref) > 8 {
		ref = ref[:8]
	}
	return "00020126580014br.gov.bcb.pix0136pagamentos@perfily.app5204000053039865405" +
		fmt.Sprintf("%.2f", catalog.PriceNew) +
		"5802BR5907Perfily6009Sao Paulo62120508" + ref + "6304"
}

func wrapCode(code string, width int) string {
	if width < 1 {
		return code
	}
	var b strings.Builder
	for len(code) > width {
		b.WriteString(code[:width])
		b.WriteByte('\n')
		code = code[width:]
	}
	b.WriteString(code)
	return b.String()
}

func formatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

package payment

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/perfily/perfily-cli/internal/catalog"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testPayment(expiry, poll time.Duration) *PaymentScreen {
	test, _ := catalog.Lookup("personalidade")
	return New(test, "f2b9a1c4-0000-4000-8000-000000000000", expiry, poll)
}

// collectMsgs runs a command tree and flattens the produced messages.
// Commands scheduled on a timer contribute their message after the
// delay elapses, so callers keep intervals short.
func collectMsgs(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, inner := range batch {
			out = append(out, collectMsgs(t, inner)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findCheck(msgs []tea.Msg) (CheckMsg, bool) {
	for _, m := range msgs {
		if c, ok := m.(CheckMsg); ok {
			return c, true
		}
	}
	return CheckMsg{}, false
}

func TestCountdownDecrements(t *testing.T) {
	p := testPayment(10*time.Minute, 15*time.Second)

	scr, cmd := p.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("expected the next tick to be scheduled")
	}
	got := scr.(*PaymentScreen).Remaining()
	if got != 10*time.Minute-time.Second {
		t.Fatalf("unexpected remaining %s", got)
	}
}

func TestExpiryCancels(t *testing.T) {
	p := testPayment(time.Second, 15*time.Second)

	_, cmd := p.Update(tickMsg(time.Now()))
	msgs := collectMsgs(t, cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected one message, got %d", len(msgs))
	}
	if _, ok := msgs[0].(CancelMsg); !ok {
		t.Fatalf("expected CancelMsg, got %T", msgs[0])
	}
}

func TestEntryChecksImmediately(t *testing.T) {
	p := testPayment(10*time.Minute, 15*time.Second)

	check, ok := findCheck(collectMsgs(t, p.Init()))
	if !ok {
		t.Fatal("expected CheckMsg on entering the payment screen")
	}
	if check.Manual {
		t.Fatal("entry check must not be marked manual")
	}
	if !p.checking {
		t.Fatal("expected checking state while the entry check runs")
	}
}

func TestAutoPollEmitsCheck(t *testing.T) {
	p := testPayment(10*time.Minute, 2*time.Second)
	_ = p.Init()
	p.Update(StatusMsg{Text: "Aguardando pagamento..."})

	scr, cmd := p.Update(tickMsg(time.Now()))
	if _, ok := findCheck(collectMsgs(t, cmd)); ok {
		t.Fatal("poll fired before the interval elapsed")
	}

	scr, cmd = p.Update(tickMsg(time.Now()))
	ps := scr.(*PaymentScreen)
	if !ps.checking {
		t.Fatal("expected checking state after the poll fires")
	}
	check, ok := findCheck(collectMsgs(t, cmd))
	if !ok {
		t.Fatal("expected CheckMsg after the poll interval")
	}
	if check.Manual {
		t.Fatal("automatic poll must not be marked manual")
	}
}

func TestManualCheck(t *testing.T) {
	p := testPayment(10*time.Minute, 15*time.Second)

	scr, cmd := p.Update(specialKey(tea.KeyEnter))
	check, ok := findCheck(collectMsgs(t, cmd))
	if !ok {
		t.Fatal("expected CheckMsg on enter")
	}
	if !check.Manual {
		t.Fatal("expected manual flag on visitor-initiated check")
	}

	// A second press while a check is in flight is ignored.
	_, cmd = scr.Update(specialKey(tea.KeyEnter))
	if _, ok := findCheck(collectMsgs(t, cmd)); ok {
		t.Fatal("expected no CheckMsg while already checking")
	}
}

func TestEscCancels(t *testing.T) {
	p := testPayment(10*time.Minute, 15*time.Second)

	_, cmd := p.Update(specialKey(tea.KeyEscape))
	msgs := collectMsgs(t, cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected one message, got %d", len(msgs))
	}
	if _, ok := msgs[0].(CancelMsg); !ok {
		t.Fatalf("expected CancelMsg, got %T", msgs[0])
	}
}

func TestStatusMsgClearsChecking(t *testing.T) {
	p := testPayment(10*time.Minute, 15*time.Second)
	p.checking = true

	scr, _ := p.Update(StatusMsg{Text: "Pagamento ainda não confirmado."})
	ps := scr.(*PaymentScreen)
	if ps.checking {
		t.Fatal("expected checking cleared after a status update")
	}
	if ps.status != "Pagamento ainda não confirmado." {
		t.Fatalf("unexpected status %q", ps.status)
	}
}

func TestPixCodeCarriesSessionRef(t *testing.T) {
	code := pixCode("f2b9a1c4-0000-4000-8000-000000000000")
	if !strings.Contains(code, "f2b9a1c4") {
		t.Fatalf("expected session ref in code, got %q", code)
	}
	if !strings.Contains(code, "br.gov.bcb.pix") {
		t.Fatalf("expected pix identifier in code, got %q", code)
	}
	if code != pixCode("f2b9a1c4-0000-4000-8000-000000000000") {
		t.Fatal("expected deterministic code for the same session")
	}
}

func TestPixCodeShortSession(t *testing.T) {
	if !strings.Contains(pixCode("abc"), "abc") {
		t.Fatal("expected short session ids used as-is")
	}
}

func TestWrapCode(t *testing.T) {
	wrapped := wrapCode("aaaabbbbcccc", 4)
	if wrapped != "aaaa\nbbbb\ncccc" {
		t.Fatalf("unexpected wrap %q", wrapped)
	}
	if wrapCode("abc", 2) != "abc" {
		t.Fatal("expected narrow widths to leave the code untouched")
	}
}

func TestFormatCountdown(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{10 * time.Minute, "10:00"},
		{61 * time.Second, "01:01"},
		{0, "00:00"},
		{-time.Second, "00:00"},
	}
	for _, tc := range cases {
		if got := formatCountdown(tc.d); got != tc.want {
			t.Errorf("formatCountdown(%s) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

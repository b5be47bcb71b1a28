package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/perfily/perfily-cli/internal/catalog"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestEnterSelectsFirstTest(t *testing.T) {
	h := New()

	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	msg := cmd()
	sel, ok := msg.(SelectMsg)
	if !ok {
		t.Fatalf("expected SelectMsg, got %T", msg)
	}
	if sel.Slug != catalog.All()[0].Slug {
		t.Fatalf("expected first catalog test, got %q", sel.Slug)
	}
}

func TestNavigateThenSelect(t *testing.T) {
	h := New()

	scr, _ := h.Update(specialKey(tea.KeyDown))
	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	sel, ok := cmd().(SelectMsg)
	if !ok || sel.Slug != catalog.All()[1].Slug {
		t.Fatalf("expected second catalog test, got %+v", sel)
	}
}

func TestLastItemQuits(t *testing.T) {
	h := New()

	var scr = h
	for range catalog.All() {
		next, _ := scr.Update(specialKey(tea.KeyDown))
		scr = next.(*HomeScreen)
	}
	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected the exit item to quit")
	}
}

func TestViewListsAllTests(t *testing.T) {
	h := New()
	view := h.View(80, 30)
	for _, test := range catalog.All() {
		if !strings.Contains(view, test.Title) {
			t.Errorf("view missing test %q", test.Title)
		}
	}
}

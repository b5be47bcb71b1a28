package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/perfily/perfily-cli/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	updates int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.updates++
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestReplace(t *testing.T) {
	first := &stubScreen{title: "first"}
	r := New(first)

	second := &stubScreen{title: "second"}
	r.Replace(second)

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !second.initRan {
		t.Error("expected Init to run on replace")
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	s := &stubScreen{title: "only"}
	r := New(s)

	r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.updates != 1 {
		t.Errorf("expected 1 update, got %d", s.updates)
	}
}

func TestNavigateEmitsMsg(t *testing.T) {
	cmd := Navigate("/personalidade")
	msg := cmd()

	nav, ok := msg.(NavigateMsg)
	if !ok {
		t.Fatalf("expected NavigateMsg, got %T", msg)
	}
	if nav.Path != "/personalidade" {
		t.Errorf("unexpected path %q", nav.Path)
	}
}

func TestViewDelegates(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	if got := r.View(80, 24); got != "home" {
		t.Errorf("unexpected view %q", got)
	}
}

package palette

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestSelectionWraps(t *testing.T) {
	m := NewModel()
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.Selected() != "15" {
		t.Fatalf("expected wrap to white, got %s", m.Selected())
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.Selected() != "0" {
		t.Fatalf("expected wrap to black, got %s", m.Selected())
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	if m.Selected() != "1" {
		t.Fatalf("expected red, got %s", m.Selected())
	}
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyRunes, Runes: []rune("q")},
	} {
		_, cmd := NewModel().Update(msg)
		if cmd == nil {
			t.Fatalf("expected quit for %s", msg)
		}
	}
}

func TestViewListsColorsAndNav(t *testing.T) {
	out := NewModel().View()
	for _, want := range []string{"Available colors", "light magenta", "[white]", "<- black ->", "[red]"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q", want)
		}
	}
}

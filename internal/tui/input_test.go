package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/wordtyper/internal/engine"
)

func TestReduceKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []engine.Input
	}{
		{"runes", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")}, []engine.Input{engine.Key('a'), engine.Key('b')}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []engine.Input{engine.Space}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, []engine.Input{engine.Backspace}},
		{"alt backspace", tea.KeyMsg{Type: tea.KeyBackspace, Alt: true}, []engine.Input{engine.WordBackspace}},
		{"ctrl h erases a char", tea.KeyMsg{Type: tea.KeyCtrlH}, []engine.Input{engine.Backspace}},
		{"alt ctrl h", tea.KeyMsg{Type: tea.KeyCtrlH, Alt: true}, []engine.Input{engine.WordBackspace}},
		{"ctrl w", tea.KeyMsg{Type: tea.KeyCtrlW}, []engine.Input{engine.WordBackspace}},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, nil},
		{"arrow", tea.KeyMsg{Type: tea.KeyLeft}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reduceKey(tt.msg)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("expected %v, got %v", tt.want, got)
				}
			}
		})
	}
}

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordtyper/internal/engine"
	"github.com/verte-zerg/wordtyper/internal/model"
)

// Styles are the lipgloss styles derived from a theme.
type Styles struct {
	Root        lipgloss.Style
	Modeline    lipgloss.Style
	ModelineInv lipgloss.Style
	Accent      lipgloss.Style
	Untyped     lipgloss.Style
	Typed       lipgloss.Style
	Incorrect   lipgloss.Style
	Cursor      lipgloss.Style
}

// NewStyles builds styles for th.
func NewStyles(th model.Theme) Styles {
	root := lipgloss.NewStyle().
		Foreground(lipgloss.Color(th.Fg)).
		Background(lipgloss.Color(th.Bg))
	mode := root.Background(lipgloss.Color(th.Accent))
	untyped := root.Foreground(lipgloss.Color(th.Untyped))
	return Styles{
		Root:        root,
		Modeline:    mode,
		ModelineInv: mode.Reverse(true),
		Accent:      root.Foreground(lipgloss.Color(th.Accent)),
		Untyped:     untyped,
		Typed:       root.Foreground(lipgloss.Color(th.Typed)),
		Incorrect:   root.Foreground(lipgloss.Color(th.Incorrect)),
		Cursor:      untyped.Underline(true),
	}
}

func (s Styles) forClass(c engine.Class) lipgloss.Style {
	switch c {
	case engine.ClassCorrect:
		return s.Typed
	case engine.ClassIncorrect:
		return s.Incorrect
	case engine.ClassCursor:
		return s.Cursor
	default:
		return s.Untyped
	}
}

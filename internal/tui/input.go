package tui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/wordtyper/internal/engine"
)

// reduceKey translates a terminal key into engine inputs. Keys the engine
// does not understand reduce to nothing.
func reduceKey(msg tea.KeyMsg) []engine.Input {
	switch msg.Type {
	case tea.KeySpace:
		return []engine.Input{engine.Space}
	case tea.KeyBackspace, tea.KeyCtrlH:
		// ctrl+h is the erase character on terminals set to stty erase ^H.
		if msg.Alt {
			return []engine.Input{engine.WordBackspace}
		}
		return []engine.Input{engine.Backspace}
	case tea.KeyCtrlW:
		return []engine.Input{engine.WordBackspace}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		out := make([]engine.Input, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if unicode.IsPrint(r) {
				out = append(out, engine.Key(r))
			}
		}
		return out
	default:
		return nil
	}
}

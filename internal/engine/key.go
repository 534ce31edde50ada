// Package engine implements the typing test state machine.
package engine

import "time"

// Sentinel key codes recorded in a slot's log for deletions.
const (
	DeleteChar rune = 0x08
	DeleteWord rune = 0x18
)

// KeyEvent is one recorded keystroke.
type KeyEvent struct {
	Char rune
	At   time.Time
}

// InputKind enumerates the reduced input alphabet accepted by a Test.
type InputKind int

const (
	InputChar InputKind = iota
	InputSpace
	InputDeleteChar
	InputDeleteWord
)

// Input is one logical input event delivered by the host.
type Input struct {
	Kind InputKind
	Char rune
}

var (
	Space         = Input{Kind: InputSpace, Char: ' '}
	Backspace     = Input{Kind: InputDeleteChar, Char: DeleteChar}
	WordBackspace = Input{Kind: InputDeleteWord, Char: DeleteWord}
)

// Key returns the input for a printable character. A space reduces to Space.
func Key(r rune) Input {
	if r == ' ' {
		return Space
	}
	return Input{Kind: InputChar, Char: r}
}

// Replay folds a key log into the string it produces: characters append,
// DeleteChar removes the last character, DeleteWord clears, spaces are ignored.
func Replay(events []KeyEvent) string {
	acc := make([]rune, 0, len(events))
	for _, ev := range events {
		switch ev.Char {
		case ' ':
		case DeleteChar:
			if len(acc) > 0 {
				acc = acc[:len(acc)-1]
			}
		case DeleteWord:
			acc = acc[:0]
		default:
			acc = append(acc, ev.Char)
		}
	}
	return string(acc)
}

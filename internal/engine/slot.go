package engine

import "time"

// Class tags a rendered character.
type Class int

const (
	ClassUntyped Class = iota
	ClassCorrect
	ClassIncorrect
	ClassCursor
)

func (c Class) String() string {
	switch c {
	case ClassCorrect:
		return "correct"
	case ClassIncorrect:
		return "incorrect"
	case ClassCursor:
		return "cursor"
	default:
		return "untyped"
	}
}

// Mark is one classified glyph of a slot's typed prefix.
type Mark struct {
	Char  rune
	Class Class
}

// Slot holds one target word, its key log and the render classification
// derived from it.
//
// marks never grows past the target length; keystrokes beyond it land in
// overflow and always render as incorrect.
type Slot struct {
	target   []rune
	log      []KeyEvent
	marks    []Mark
	overflow []rune
}

func newSlot(word string) *Slot {
	target := []rune(word)
	return &Slot{
		target: target,
		log:    make([]KeyEvent, 0, len(target)+1),
		marks:  make([]Mark, 0, len(target)),
	}
}

// Target returns the word this slot expects.
func (s *Slot) Target() string {
	return string(s.target)
}

// Log returns a copy of the recorded key events.
func (s *Slot) Log() []KeyEvent {
	out := make([]KeyEvent, len(s.log))
	copy(out, s.log)
	return out
}

// Classification returns the typed prefix as render marks, over-typed glyphs included.
func (s *Slot) Classification() []Mark {
	out := make([]Mark, 0, s.Len())
	out = append(out, s.marks...)
	for _, r := range s.overflow {
		out = append(out, Mark{Char: r, Class: ClassIncorrect})
	}
	return out
}

// Len returns the number of visible typed glyphs.
func (s *Slot) Len() int {
	return len(s.marks) + len(s.overflow)
}

// Input returns what the key log spells out.
func (s *Slot) Input() string {
	return Replay(s.log)
}

// Typed reports whether the slot is finished: its last key was a space or
// its log replays to the target exactly.
func (s *Slot) Typed() bool {
	if n := len(s.log); n > 0 && s.log[n-1].Char == ' ' {
		return true
	}
	return Replay(s.log) == string(s.target)
}

// Correct reports whether the log replays to the target.
func (s *Slot) Correct() bool {
	return Replay(s.log) == string(s.target)
}

func (s *Slot) record(r rune, at time.Time) {
	s.log = append(s.log, KeyEvent{Char: r, At: at})
}

func (s *Slot) press(r rune) {
	pos := len(s.marks)
	if pos >= len(s.target) {
		s.overflow = append(s.overflow, r)
		return
	}
	class := ClassIncorrect
	if r == s.target[pos] {
		class = ClassCorrect
	}
	s.marks = append(s.marks, Mark{Char: r, Class: class})
}

func (s *Slot) pop() {
	if n := len(s.overflow); n > 0 {
		s.overflow = s.overflow[:n-1]
		return
	}
	if n := len(s.marks); n > 0 {
		s.marks = s.marks[:n-1]
	}
}

func (s *Slot) clear() {
	s.marks = s.marks[:0]
	s.overflow = s.overflow[:0]
}

func (s *Slot) appendFragments(out []Fragment, active bool) []Fragment {
	for _, m := range s.marks {
		out = append(out, Fragment{Text: string(m.Char), Class: m.Class})
	}
	for _, r := range s.overflow {
		out = append(out, Fragment{Text: string(r), Class: ClassIncorrect})
	}

	next := s.Len()
	if active {
		if next >= len(s.target) {
			return append(out, Fragment{Text: " ", Class: ClassCursor})
		}
		out = append(out, Fragment{Text: string(s.target[next]), Class: ClassCursor})
		next++
	}
	if next > len(s.target) {
		next = len(s.target)
	}
	return append(out, Fragment{Text: string(s.target[next:]) + " ", Class: ClassUntyped})
}

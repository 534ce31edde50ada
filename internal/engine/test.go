package engine

import (
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNoWords is returned when a test is requested with no words.
	ErrNoWords = errors.New("test needs at least one word")
	// ErrShortSource is returned when the source runs out before the requested count.
	ErrShortSource = errors.New("word source produced too few words")
)

// Source supplies target words.
type Source interface {
	Produce(n int) iter.Seq[string]
}

type sliceSource []string

func (s sliceSource) Produce(n int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := 0; i < n && i < len(s); i++ {
			if !yield(s[i]) {
				return
			}
		}
	}
}

// Words returns a Source yielding the given words in order.
func Words(words ...string) Source {
	return sliceSource(words)
}

// Fragment is a run of text with one render class.
type Fragment struct {
	Text  string
	Class Class
}

// Option configures a Test.
type Option func(*Test)

// WithClock sets the timestamp source for key events.
func WithClock(now func() time.Time) Option {
	return func(t *Test) {
		t.now = now
	}
}

// WithCompletions delivers the completion message on ch instead of a
// channel owned by the test.
func WithCompletions(ch chan Completion) Option {
	return func(t *Test) {
		t.done = newLatch(ch)
	}
}

// Test is one typing exercise. It is driven by a single goroutine.
type Test struct {
	id       uuid.UUID
	slots    []*Slot
	cursor   Cursor
	now      func() time.Time
	done     *latch
	finished bool
}

// New builds a test of n words drawn from src.
func New(src Source, n int, opts ...Option) (*Test, error) {
	if n <= 0 {
		return nil, ErrNoWords
	}
	slots := make([]*Slot, 0, n)
	for word := range src.Produce(n) {
		slots = append(slots, newSlot(strings.ToLower(word)))
		if len(slots) == n {
			break
		}
	}
	if len(slots) < n {
		return nil, fmt.Errorf("%w: wanted %d, got %d", ErrShortSource, n, len(slots))
	}

	t := &Test{
		id:     uuid.New(),
		slots:  slots,
		cursor: newCursor(len(slots)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.done == nil {
		t.done = newLatch(nil)
	}
	return t, nil
}

// ID identifies this test in its completion message.
func (t *Test) ID() uuid.UUID {
	return t.id
}

// Len returns the number of words.
func (t *Test) Len() int {
	return len(t.slots)
}

// Slot returns the i-th word slot.
func (t *Test) Slot(i int) *Slot {
	return t.slots[i]
}

// WordIndex returns the active word index.
func (t *Test) WordIndex() int {
	return t.cursor.Pos()
}

// Done reports whether the last word has been completed.
func (t *Test) Done() bool {
	return t.finished
}

// Completions returns the channel the completion message is sent on.
func (t *Test) Completions() <-chan Completion {
	return t.done.ch
}

// HandleEvent applies one input to the active slot. Events after
// completion are ignored.
func (t *Test) HandleEvent(in Input) {
	if t.finished {
		return
	}
	slot := t.slots[t.cursor.Pos()]
	at := t.now()

	switch in.Kind {
	case InputSpace:
		slot.record(' ', at)
		t.cursor.Advance()
	case InputChar:
		slot.record(in.Char, at)
		slot.press(in.Char)
	case InputDeleteChar:
		// Nothing left here: step into the previous word untouched.
		if slot.Len() == 0 && t.cursor.Retreat() {
			t.slots[t.cursor.Pos()].record(DeleteChar, at)
			break
		}
		slot.record(DeleteChar, at)
		slot.pop()
		if slot.Len() == 0 {
			t.cursor.Retreat()
		}
	case InputDeleteWord:
		if slot.Len() == 0 && t.cursor.Retreat() {
			slot = t.slots[t.cursor.Pos()]
		}
		slot.record(DeleteWord, at)
		slot.clear()
	}

	t.checkComplete()
}

func (t *Test) checkComplete() {
	if !t.cursor.AtLast() || !t.slots[t.cursor.Pos()].Typed() {
		return
	}
	t.finished = true
	t.done.fire(Completion{TestID: t.id, Words: len(t.slots)})
}

// Render returns the whole test as classified fragments, ready for flowed
// rendering. Each word carries its own trailing space.
func (t *Test) Render() []Fragment {
	out := make([]Fragment, 0, len(t.slots)*4)
	active := t.cursor.Pos()
	for i, slot := range t.slots {
		out = slot.appendFragments(out, i == active)
	}
	return out
}

package lang

import (
	"iter"
	"slices"
	"strings"

	"github.com/verte-zerg/wordtyper/internal/generator"
)

// Options tune how a Source draws words.
type Options struct {
	PunctPct float64
	PunctSet []rune
}

// Source produces target words from a language according to its flags.
type Source struct {
	lang *Lang
	gen  *generator.Generator
	opts Options

	pos  int
	line []string
}

// NewSource wraps l.
func NewSource(l *Lang, gen *generator.Generator, opts Options) *Source {
	return &Source{lang: l, gen: gen, opts: opts}
}

// Lang returns the underlying language.
func (s *Source) Lang() *Lang {
	return s.lang
}

// Position returns the next entry index for inorder languages.
func (s *Source) Position() int {
	return s.pos
}

// SetPosition restores a saved inorder position.
func (s *Source) SetPosition(pos int) {
	if pos < 0 || pos >= len(s.lang.Words) {
		pos = 0
	}
	s.pos = pos
}

// Prepare picks the material for the next test and returns how many words
// it holds. select_one and select_all override the requested count.
func (s *Source) Prepare(requested int) int {
	switch {
	case s.lang.SelectOne:
		idx := s.gen.Index(len(s.lang.Words))
		if s.lang.Inorder {
			idx = s.pos
			s.pos = (s.pos + 1) % len(s.lang.Words)
		}
		s.line = strings.Fields(s.lang.Words[idx])
		return len(s.line)
	case s.lang.SelectAll:
		n := 0
		for _, entry := range s.lang.Words {
			n += len(strings.Fields(entry))
		}
		return n
	default:
		return requested
	}
}

// Produce yields up to n target words. Entries holding several words are
// split, so n counts words rather than entries.
func (s *Source) Produce(n int) iter.Seq[string] {
	words := s.lang.Words
	var seq iter.Seq[string]
	switch {
	case s.lang.SelectOne:
		if s.line == nil {
			s.Prepare(n)
		}
		seq = take(slices.Values(s.line), n)
	case s.lang.SelectAll:
		if !s.lang.Inorder {
			words = s.gen.Shuffled(words)
		}
		seq = take(splitWords(slices.Values(words)), n)
	case s.lang.Inorder:
		// A partly used entry counts as consumed.
		seq = take(splitWords(generator.Sequential(words, s.pos, n, func(next int) {
			s.pos = next
		})), n)
	default:
		seq = take(splitWords(s.gen.Random(words, n)), n)
	}
	if s.lang.Punctuated {
		return seq
	}
	return s.gen.Punctuate(seq, s.opts.PunctPct, s.opts.PunctSet)
}

func splitWords(seq iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for entry := range seq {
			for _, word := range strings.Fields(entry) {
				if !yield(word) {
					return
				}
			}
		}
	}
}

func take(seq iter.Seq[string], n int) iter.Seq[string] {
	return func(yield func(string) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			i++
			if i == n {
				return
			}
		}
	}
}

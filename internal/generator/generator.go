// Package generator draws typing material from a corpus.
package generator

import (
	"iter"
	"math/rand"
	"time"
)

// Generator produces randomized word sequences.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Random yields count words picked uniformly, with repetition.
func (g *Generator) Random(words []string, count int) iter.Seq[string] {
	return func(yield func(string) bool) {
		if len(words) == 0 {
			return
		}
		for i := 0; i < count; i++ {
			if !yield(words[g.rnd.Intn(len(words))]) {
				return
			}
		}
	}
}

// Punctuate suffixes each word of seq with a mark from punctSet with
// probability punctPct.
func (g *Generator) Punctuate(seq iter.Seq[string], punctPct float64, punctSet []rune) iter.Seq[string] {
	if punctPct <= 0 || len(punctSet) == 0 {
		return seq
	}
	return func(yield func(string) bool) {
		for word := range seq {
			if !yield(applyPunct(g.rnd, word, punctPct, punctSet)) {
				return
			}
		}
	}
}

// Sequential yields count words in corpus order starting at start, wrapping
// at the end. next is called with the index following each yielded word.
func Sequential(words []string, start, count int, next func(int)) iter.Seq[string] {
	return func(yield func(string) bool) {
		if len(words) == 0 {
			return
		}
		pos := start % len(words)
		if pos < 0 {
			pos = 0
		}
		for i := 0; i < count; i++ {
			word := words[pos]
			pos = (pos + 1) % len(words)
			if next != nil {
				next(pos)
			}
			if !yield(word) {
				return
			}
		}
	}
}

// Shuffled returns a shuffled copy of words.
func (g *Generator) Shuffled(words []string) []string {
	out := make([]string, len(words))
	copy(out, words)
	g.rnd.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Index returns a uniform index in [0, n).
func (g *Generator) Index(n int) int {
	if n <= 0 {
		return 0
	}
	return g.rnd.Intn(n)
}

func applyPunct(rnd *rand.Rand, word string, punctPct float64, punctSet []rune) string {
	if rnd.Float64() > punctPct {
		return word
	}
	punct := punctSet[rnd.Intn(len(punctSet))]
	return word + string(punct)
}

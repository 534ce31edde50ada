package generator

import (
	"slices"
	"sort"
	"strings"
	"testing"
)

func TestRandomCountAndMembership(t *testing.T) {
	g := NewSeeded(1)
	corpus := []string{"one", "two", "three"}

	got := slices.Collect(g.Random(corpus, 20))
	if len(got) != 20 {
		t.Fatalf("expected 20 words, got %d", len(got))
	}
	for _, w := range got {
		if !slices.Contains(corpus, w) {
			t.Fatalf("unexpected word %q", w)
		}
	}
}

func TestRandomAlwaysPunctuates(t *testing.T) {
	g := NewSeeded(2)
	for _, w := range slices.Collect(g.Punctuate(g.Random([]string{"go"}, 10), 1, []rune{'.'})) {
		if w != "go." {
			t.Fatalf("expected punctuated word, got %q", w)
		}
	}
}

func TestPunctuateDisabled(t *testing.T) {
	g := NewSeeded(5)
	got := slices.Collect(g.Punctuate(slices.Values([]string{"a", "b"}), 0, []rune{'!'}))
	if !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("expected words untouched, got %v", got)
	}
}

func TestRandomEmptyCorpus(t *testing.T) {
	g := NewSeeded(3)
	if got := slices.Collect(g.Random(nil, 5)); len(got) != 0 {
		t.Fatalf("expected no words, got %v", got)
	}
}

func TestSequentialWrapsAndReportsPosition(t *testing.T) {
	pos := -1
	got := slices.Collect(Sequential([]string{"a", "b", "c"}, 2, 4, func(p int) { pos = p }))
	if strings.Join(got, " ") != "c a b c" {
		t.Fatalf("unexpected order: %v", got)
	}
	if pos != 0 {
		t.Fatalf("expected next position 0, got %d", pos)
	}
}

func TestSequentialStopsEarly(t *testing.T) {
	pos := 0
	for range Sequential([]string{"a", "b", "c"}, 0, 3, func(p int) { pos = p }) {
		break
	}
	if pos != 1 {
		t.Fatalf("expected position 1 after one word, got %d", pos)
	}
}

func TestShuffledIsPermutation(t *testing.T) {
	g := NewSeeded(4)
	in := []string{"a", "b", "c", "d"}
	out := g.Shuffled(in)
	sorted := append([]string(nil), out...)
	sort.Strings(sorted)
	if !slices.Equal(sorted, in) {
		t.Fatalf("expected permutation of %v, got %v", in, out)
	}
	if !slices.Equal(in, []string{"a", "b", "c", "d"}) {
		t.Fatalf("input modified: %v", in)
	}
}

package tui

import (
	"strings"
	"testing"

	"github.com/verte-zerg/wordtyper/internal/engine"
	"github.com/verte-zerg/wordtyper/internal/model"
)

func plainGlyphs(s string) []glyph {
	out := make([]glyph, 0, len(s))
	for _, r := range s {
		out = append(out, glyph{s: string(r), width: 1, isSpace: r == ' '})
	}
	return out
}

func TestBuildGlyphsStylesByClass(t *testing.T) {
	styles := NewStyles(model.DefaultTheme())
	glyphs := buildGlyphs([]engine.Fragment{
		{Text: "a", Class: engine.ClassCorrect},
		{Text: "x", Class: engine.ClassIncorrect},
		{Text: "c", Class: engine.ClassCursor},
		{Text: "d ", Class: engine.ClassUntyped},
	}, styles)

	if len(glyphs) != 5 {
		t.Fatalf("expected 5 glyphs, got %d", len(glyphs))
	}
	if glyphs[0].s != styles.Typed.Render("a") {
		t.Fatalf("expected typed style for correct glyph")
	}
	if glyphs[1].s != styles.Incorrect.Render("x") {
		t.Fatalf("expected incorrect style")
	}
	if glyphs[2].s != styles.Cursor.Render("c") {
		t.Fatalf("expected cursor style")
	}
	if glyphs[3].s != styles.Untyped.Render("d") {
		t.Fatalf("expected untyped style")
	}
	if !glyphs[4].isSpace || glyphs[4].width != 1 {
		t.Fatalf("expected trailing space glyph, got %+v", glyphs[4])
	}
}

func TestBuildGlyphsWideRunes(t *testing.T) {
	glyphs := buildGlyphs([]engine.Fragment{{Text: "日本", Class: engine.ClassUntyped}}, NewStyles(model.DefaultTheme()))
	for _, g := range glyphs {
		if g.width != 2 {
			t.Fatalf("expected width 2 for wide rune, got %d", g.width)
		}
	}
}

func TestWrapGlyphsBreaksAtSpaces(t *testing.T) {
	out := wrapGlyphs(plainGlyphs("one two three "), 8)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", out)
	}
	if lines[0] != "one two" {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if lines[1] != "three " {
		t.Fatalf("unexpected second line %q", lines[1])
	}
}

func TestWrapGlyphsSplitsLongWord(t *testing.T) {
	out := wrapGlyphs(plainGlyphs("abcdefgh"), 3)
	if out != "abc\ndef\ngh" {
		t.Fatalf("unexpected wrap %q", out)
	}
}

func TestWrapGlyphsNoWidth(t *testing.T) {
	if out := wrapGlyphs(plainGlyphs("a b"), 0); out != "a b" {
		t.Fatalf("unexpected output %q", out)
	}
}

// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/wordtyper/internal/engine"
)

type glyph struct {
	s       string
	width   int
	isSpace bool
}

func buildGlyphs(frags []engine.Fragment, styles Styles) []glyph {
	out := make([]glyph, 0, len(frags)*2)
	for _, frag := range frags {
		style := styles.forClass(frag.Class)
		for _, r := range frag.Text {
			out = append(out, glyph{
				s:       style.Render(string(r)),
				width:   runewidth.RuneWidth(r),
				isSpace: r == ' ',
			})
		}
	}
	return out
}

func renderGlyphs(glyphs []glyph) string {
	var b strings.Builder
	for _, g := range glyphs {
		b.WriteString(g.s)
	}
	return b.String()
}

// wrapGlyphs flows glyphs into lines of at most width cells, breaking at the
// last space and dropping it. Words longer than a line are split.
func wrapGlyphs(glyphs []glyph, width int) string {
	if width <= 0 {
		return renderGlyphs(glyphs)
	}
	var out strings.Builder
	line := make([]glyph, 0, width)
	lineWidth := 0
	lastSpace := -1

	flush := func(upto int) {
		out.WriteString(renderGlyphs(line[:upto]))
		out.WriteRune('\n')
	}

	for i := 0; i < len(glyphs); {
		g := glyphs[i]
		if lineWidth+g.width > width && len(line) > 0 {
			if lastSpace >= 0 {
				flush(lastSpace)
				line = append(line[:0:0], line[lastSpace+1:]...)
			} else {
				flush(len(line))
				line = line[:0]
			}
			lineWidth, lastSpace = measure(line)
			continue
		}
		line = append(line, g)
		lineWidth += g.width
		if g.isSpace {
			lastSpace = len(line) - 1
		}
		i++
	}
	out.WriteString(renderGlyphs(line))
	return out.String()
}

func measure(line []glyph) (width, lastSpace int) {
	lastSpace = -1
	for i, g := range line {
		width += g.width
		if g.isSpace {
			lastSpace = i
		}
	}
	return width, lastSpace
}

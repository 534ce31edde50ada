package engine

// Cursor is the active word index, bounded to [0, last].
type Cursor struct {
	pos  int
	last int
}

func newCursor(slots int) Cursor {
	return Cursor{last: slots - 1}
}

// Pos returns the active index.
func (c Cursor) Pos() int {
	return c.pos
}

// AtLast reports whether the cursor is on the final slot.
func (c Cursor) AtLast() bool {
	return c.pos == c.last
}

// Advance moves forward one slot. It reports false at the last slot.
func (c *Cursor) Advance() bool {
	if c.pos >= c.last {
		return false
	}
	c.pos++
	return true
}

// Retreat moves back one slot. It reports false at the first slot.
func (c *Cursor) Retreat() bool {
	if c.pos <= 0 {
		return false
	}
	c.pos--
	return true
}

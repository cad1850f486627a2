package playlist

// Cursor is a zero-based position in a playlist. It never goes below zero and has no upper bound;
// an index past the last line simply selects nothing.
type Cursor struct {
	index int
}

// Index returns the current position.
func (c *Cursor) Index() int {
	return c.index
}

// Next moves one entry forward.
func (c *Cursor) Next() int {
	c.index++
	return c.index
}

// Prev moves one entry back, stopping at zero.
func (c *Cursor) Prev() int {
	if c.index > 0 {
		c.index--
	}
	return c.index
}

// Set moves to i, clamping negatives to zero.
func (c *Cursor) Set(i int) int {
	c.index = max(i, 0)
	return c.index
}

// Package cursor tracks the highlighted row of a scrollable list.
package cursor

// Cursor manages cursor position and scroll offset for a scrollable list.
// The list length and viewport height are passed to methods rather than
// stored, since the sheet changes height every animation frame.
type Cursor struct {
	pos    int // highlighted index
	offset int // first visible index
	margin int // rows kept visible above/below the cursor
}

// New creates a Cursor with the given scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the current cursor position.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the current scroll offset.
func (c Cursor) Offset() int {
	return c.offset
}

// Move moves the cursor by delta within a list of listLen items.
// If listLen is 0, this is a no-op.
func (c *Cursor) Move(delta, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(c.pos+delta, listLen-1)
	c.EnsureVisible(listLen, height)
}

// Jump sets the cursor to pos, clamped to the list.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.EnsureVisible(listLen, height)
}

// EnsureVisible adjusts the offset so the cursor stays on screen. A margin
// larger than half the viewport is reduced so the cursor can reach every row.
func (c *Cursor) EnsureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)

	if c.pos < c.offset+margin {
		c.offset = max(c.pos-margin, 0)
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}

	c.offset = clamp(c.offset, max(listLen-height, 0))
}

// ClampToBounds keeps the cursor inside a list that shrank.
// Returns true if the cursor was adjusted.
func (c *Cursor) ClampToBounds(listLen int) bool {
	if listLen == 0 {
		changed := c.pos != 0 || c.offset != 0
		c.pos = 0
		c.offset = 0
		return changed
	}
	old := c.pos
	c.pos = clamp(c.pos, listLen-1)
	c.offset = clamp(c.offset, c.pos)
	return c.pos != old
}

// VisibleOffset returns the offset EnsureVisible would settle on for a
// viewport of height rows, without changing c. Rendering and hit-testing
// both go through it so they agree while the stored offset lags a resize.
func (c Cursor) VisibleOffset(listLen, height int) int {
	c.EnsureVisible(listLen, height)
	return c.offset
}

// VisibleRange returns the visible indices [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	offset := c.VisibleOffset(listLen, height)
	start = min(offset, listLen)
	end = min(offset+height, listLen)
	return start, end
}

// IndexAt maps a visible row to a list index.
func (c Cursor) IndexAt(row, listLen, height int) (int, bool) {
	if row < 0 || row >= height {
		return 0, false
	}
	idx := c.VisibleOffset(listLen, height) + row
	if idx >= listLen {
		return 0, false
	}
	return idx, true
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

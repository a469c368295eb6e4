package editor

import "github.com/kjvalk/vie/internal/keys"

// MoveCursor applies one arrow keypress to the cursor: LEFT/RIGHT wrap
// across row boundaries at the start/end of a line, UP/DOWN clamp to
// [0, NumRows()] without preserving a virtual column.
func MoveCursor(doc *Document, c *Cursor, key keys.Key) {
	switch key {
	case keys.ArrowUp:
		if c.Cy != 0 {
			c.Cy--
		}
	case keys.ArrowDown:
		if c.Cy < doc.NumRows() {
			c.Cy++
		}
	case keys.ArrowLeft:
		if c.Cx != 0 {
			c.Cx--
		} else if c.Cy > 0 {
			c.Cy--
			c.Cx = doc.Rows[c.Cy].Len()
		}
	case keys.ArrowRight:
		rowLen := -1
		if c.Cy < doc.NumRows() {
			rowLen = doc.Rows[c.Cy].Len()
		}
		if rowLen >= 0 && c.Cx < rowLen {
			c.Cx++
		} else if rowLen >= 0 && c.Cx == rowLen {
			c.Cy++
			c.Cx = 0
		}
	}

	c.ClampToRow(doc)
}

// MoveHome sends the cursor to column 0 of the current row.
func MoveHome(c *Cursor) {
	c.Cx = 0
}

// MoveEnd sends the cursor to the end of the current row, if any.
func MoveEnd(doc *Document, c *Cursor) {
	if c.Cy < doc.NumRows() {
		c.Cx = doc.Rows[c.Cy].Len()
	}
}

// PageUp moves the cursor to the top of the visible window, then repeats
// ARROW_UP ScreenRows times (so it re-clamps one row at a time, matching
// repeated single-step movement rather than a single jump).
func PageUp(doc *Document, c *Cursor) {
	c.Cy = c.RowOff
	for i := 0; i < c.ScreenRows; i++ {
		MoveCursor(doc, c, keys.ArrowUp)
	}
}

// PageDown moves the cursor to the bottom of the visible window, then
// repeats ARROW_DOWN ScreenRows times.
func PageDown(doc *Document, c *Cursor) {
	c.Cy = c.RowOff + c.ScreenRows - 1
	if c.Cy > doc.NumRows() {
		c.Cy = doc.NumRows()
	}
	for i := 0; i < c.ScreenRows; i++ {
		MoveCursor(doc, c, keys.ArrowDown)
	}
}

package editor

// Cursor holds logical cursor coordinates (Cy, Cx, raw-space), the derived
// render column Rx, and the scroll offsets that together keep the visible
// window consistent with the logical position, restored on every tick by
// Scroll below.
type Cursor struct {
	Cy, Cx         int
	Rx             int
	RowOff, ColOff int
	ScreenRows     int
	ScreenCols     int
}

// Scroll recomputes Rx from (Cy, Cx) and adjusts RowOff/ColOff so the
// cursor stays inside the visible window. It must run before every
// render.
//
// The horizontal branch assigns to ColOff, not RowOff. The C original this
// lineage descends from has a copy/paste bug here (it assigns to the row
// offset on the "too far left" check); that is judged a typo rather than
// intended behavior, so this reimplementation does the column-consistent
// thing instead of reproducing the bug.
func (c *Cursor) Scroll(doc *Document) {
	c.Rx = 0
	if c.Cy < doc.NumRows() {
		c.Rx = CxToRx(doc.Rows[c.Cy], c.Cx)
	}

	if c.Cy < c.RowOff {
		c.RowOff = c.Cy
	}
	if c.Cy >= c.RowOff+c.ScreenRows {
		c.RowOff = c.Cy - c.ScreenRows + 1
	}
	if c.Rx < c.ColOff {
		c.ColOff = c.Rx
	}
	if c.Rx >= c.ColOff+c.ScreenCols {
		c.ColOff = c.Rx - c.ScreenCols + 1
	}
}

// ClampToRow clamps Cx to the current row's length (or 0 past the end of
// the document). Vertical movement does not preserve a "virtual column";
// it re-clamps every time.
func (c *Cursor) ClampToRow(doc *Document) {
	rowLen := 0
	if c.Cy < doc.NumRows() {
		rowLen = doc.Rows[c.Cy].Len()
	}
	if c.Cx > rowLen {
		c.Cx = rowLen
	}
}

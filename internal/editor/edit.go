package editor

import "github.com/kjvalk/vie/internal/keys"

// InsertChar inserts b at the cursor position, growing the document with
// a fresh empty row first if the cursor sits on the virtual row past the
// last line.
func InsertChar(doc *Document, c *Cursor, b byte) {
	if c.Cy == doc.NumRows() {
		doc.InsertRow(doc.NumRows(), nil)
	}
	doc.RowInsertChar(doc.Rows[c.Cy], c.Cx, b)
	c.Cx++
}

// InsertNewline splits the current row at the cursor (or inserts a blank
// row, if the cursor is at column 0) and moves the cursor to the start of
// the new line.
func InsertNewline(doc *Document, c *Cursor) {
	if c.Cx == 0 {
		doc.InsertRow(c.Cy, nil)
	} else {
		row := doc.Rows[c.Cy]
		tail := append([]byte(nil), row.Raw[c.Cx:]...)
		doc.InsertRow(c.Cy+1, tail)
		// InsertRow may have reallocated doc.Rows; re-fetch the row.
		row = doc.Rows[c.Cy]
		row.Raw = row.Raw[:c.Cx]
		row.updateRender()
	}
	c.Cy++
	c.Cx = 0
}

// DeleteChar performs a backspace at the cursor: a no-op at the very start
// of the document or on the virtual row past the end, otherwise deletes
// the byte to the left of the cursor or joins the current row into the
// previous one.
func DeleteChar(doc *Document, c *Cursor) {
	if c.Cy == doc.NumRows() {
		return
	}
	if c.Cx == 0 && c.Cy == 0 {
		return
	}

	row := doc.Rows[c.Cy]
	if c.Cx > 0 {
		doc.RowDeleteChar(row, c.Cx-1)
		c.Cx--
		return
	}

	c.Cx = doc.Rows[c.Cy-1].Len()
	doc.RowAppend(doc.Rows[c.Cy-1], row.Raw)
	doc.DeleteRow(c.Cy)
	c.Cy--
}

// DeleteForward is the DEL key: move right once, then backspace. A no-op
// at the end of the document.
func DeleteForward(doc *Document, c *Cursor) {
	if c.Cy >= doc.NumRows() {
		return
	}
	MoveCursor(doc, c, keys.ArrowRight)
	DeleteChar(doc, c)
}

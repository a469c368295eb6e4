package editor

import (
	"fmt"

	"github.com/kjvalk/vie/internal/buffer"
)

var syntaxColor = map[Highlight]int{
	HLNumber: ansiRed,
	HLMatch:  ansiBlue,
}

const (
	ansiRed     = 31
	ansiBlue    = 34
	ansiDefault = 39
)

// DrawRows renders the screen's text area: existing rows (render form,
// scrolled and truncated to the visible window), tildes past the end of
// the document, and a centered welcome banner when the document is empty.
func DrawRows(doc *Document, c *Cursor, buf *buffer.Buffer) {
	for y := 0; y < c.ScreenRows; y++ {
		fileRow := y + c.RowOff
		if fileRow >= doc.NumRows() {
			if doc.NumRows() == 0 && y == c.ScreenRows/3 {
				drawWelcome(c, buf)
			} else {
				buf.AppendString("~")
			}
		} else {
			drawRowContent(doc.Rows[fileRow], c, buf)
		}
		buf.AppendString("\x1b[K")
		buf.AppendString("\r\n")
	}
}

func drawWelcome(c *Cursor, buf *buffer.Buffer) {
	welcome := fmt.Sprintf("Kilo editor -- version %s", Version)
	if len(welcome) > c.ScreenCols {
		welcome = welcome[:c.ScreenCols]
	}
	padding := (c.ScreenCols - len(welcome)) / 2
	if padding > 0 {
		buf.AppendString("~")
		padding--
	}
	for ; padding > 0; padding-- {
		buf.AppendString(" ")
	}
	buf.AppendString(welcome)
}

func drawRowContent(row *Row, c *Cursor, buf *buffer.Buffer) {
	size := row.RLen() - c.ColOff
	if size < 0 {
		size = 0
	}
	if size > c.ScreenCols {
		size = c.ScreenCols
	}
	if size <= 0 {
		return
	}

	render := row.Render[c.ColOff : c.ColOff+size]
	highlight := row.Highlight[c.ColOff : c.ColOff+size]
	current := ansiDefault
	for i, b := range render {
		want := ansiDefault
		if color, ok := syntaxColor[highlight[i]]; ok {
			want = color
		}
		if want != current {
			buf.AppendString(fmt.Sprintf("\x1b[%dm", want))
			current = want
		}
		buf.AppendByte(b)
	}
	if current != ansiDefault {
		buf.AppendString(fmt.Sprintf("\x1b[%dm", ansiDefault))
	}
}

// DrawStatusBar renders the inverse-video status line: truncated filename,
// row count, modified flag on the left; current line / total lines on the
// right, padded to fill the width.
func DrawStatusBar(doc *Document, c *Cursor, buf *buffer.Buffer) {
	buf.AppendString("\x1b[7m")

	name := doc.Filename
	if name == "" {
		name = "[No name]"
	}
	if len(name) > 20 {
		name = name[:20]
	}
	modified := ""
	if doc.Dirty {
		modified = " (modified)"
	}
	left := fmt.Sprintf("%s - %d lines%s", name, doc.NumRows(), modified)
	if len(left) > c.ScreenCols {
		left = left[:c.ScreenCols]
	}
	buf.AppendString(left)

	right := fmt.Sprintf("%d/%d", c.Cy+1, doc.NumRows())
	written := len(left)
	for written < c.ScreenCols {
		if c.ScreenCols-written == len(right) {
			buf.AppendString(right)
			written = c.ScreenCols
			break
		}
		buf.AppendString(" ")
		written++
	}

	buf.AppendString("\x1b[m")
	buf.AppendString("\r\n")
}

// DrawMessageBar clears the message line and, while the status message is
// within its TTL, draws it truncated to the screen width.
func DrawMessageBar(msg *StatusMessage, c *Cursor, buf *buffer.Buffer) {
	buf.AppendString("\x1b[K")
	if !msg.Visible() {
		return
	}
	text := msg.Text
	if len(text) > c.ScreenCols {
		text = text[:c.ScreenCols]
	}
	buf.AppendString(text)
}

// RefreshScreen assembles one full frame (scroll, hide cursor, home,
// rows, status bar, message bar, position cursor, show cursor) into buf.
// It writes nothing itself; the caller flushes buf in a single write, and
// that single-write discipline is what keeps the frame flicker-free.
func RefreshScreen(doc *Document, c *Cursor, msg *StatusMessage, buf *buffer.Buffer) {
	c.Scroll(doc)

	buf.Reset()
	buf.AppendString("\x1b[?25l")
	buf.AppendString("\x1b[H")

	DrawRows(doc, c, buf)
	DrawStatusBar(doc, c, buf)
	DrawMessageBar(msg, c, buf)

	buf.AppendString(fmt.Sprintf("\x1b[%d;%dH", (c.Cy-c.RowOff)+1, (c.Rx-c.ColOff)+1))
	buf.AppendString("\x1b[?25h")
}

// CleanScreen appends the clear-screen-and-home sequence. Nothing in the
// program calls it: cmd/vie writes the same sequence directly before a
// fatal exit, and a clean quit leaves the last frame on screen.
func CleanScreen(buf *buffer.Buffer) {
	buf.AppendString("\x1b[2J")
	buf.AppendString("\x1b[H")
}

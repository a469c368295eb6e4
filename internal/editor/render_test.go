package editor

import (
	"strings"
	"testing"

	"github.com/kjvalk/vie/internal/buffer"
)

func TestDrawRowsTildesOnEmptyDocument(t *testing.T) {
	var d Document
	c := &Cursor{ScreenRows: 3, ScreenCols: 40}
	var buf buffer.Buffer

	DrawRows(&d, c, &buf)

	out := string(buf.Bytes())
	if !strings.Contains(out, "Kilo editor -- version "+Version) {
		t.Errorf("expected welcome banner in output, got %q", out)
	}
	if strings.Count(out, "~") < 2 {
		t.Errorf("expected tildes for empty rows, got %q", out)
	}
}

func TestDrawRowsShowsScrolledRowContent(t *testing.T) {
	d := newTestDoc("hello")
	c := &Cursor{ScreenRows: 1, ScreenCols: 20}
	var buf buffer.Buffer

	DrawRows(d, c, &buf)

	if !strings.Contains(string(buf.Bytes()), "hello") {
		t.Errorf("expected row content in output, got %q", buf.Bytes())
	}
}

func TestDrawStatusBarShowsFilenameAndCounts(t *testing.T) {
	d := newTestDoc("a", "b")
	d.Filename = "t.txt"
	c := &Cursor{Cy: 1, ScreenCols: 40}
	var buf buffer.Buffer

	DrawStatusBar(d, c, &buf)

	out := string(buf.Bytes())
	if !strings.Contains(out, "t.txt - 2 lines") {
		t.Errorf("missing left status text: %q", out)
	}
	if !strings.Contains(out, "2/2") {
		t.Errorf("missing right status text: %q", out)
	}
}

func TestDrawStatusBarNoNameWhenUnset(t *testing.T) {
	d := newTestDoc()
	c := &Cursor{ScreenCols: 40}
	var buf buffer.Buffer

	DrawStatusBar(d, c, &buf)

	if !strings.Contains(string(buf.Bytes()), "[No name]") {
		t.Errorf("expected [No name] placeholder, got %q", buf.Bytes())
	}
}

func TestDrawStatusBarShowsModifiedFlag(t *testing.T) {
	d := newTestDoc("a")
	d.Dirty = true
	c := &Cursor{ScreenCols: 40}
	var buf buffer.Buffer

	DrawStatusBar(d, c, &buf)

	if !strings.Contains(string(buf.Bytes()), "(modified)") {
		t.Errorf("expected (modified) flag, got %q", buf.Bytes())
	}
}

func TestDrawMessageBarHiddenWhenEmpty(t *testing.T) {
	var msg StatusMessage
	c := &Cursor{ScreenCols: 40}
	var buf buffer.Buffer

	DrawMessageBar(&msg, c, &buf)

	if strings.TrimSpace(strings.TrimPrefix(string(buf.Bytes()), "\x1b[K")) != "" {
		t.Errorf("expected no message text, got %q", buf.Bytes())
	}
}

func TestDrawMessageBarShowsRecentMessage(t *testing.T) {
	var msg StatusMessage
	msg.SetMessage("4 bytes written to disk")
	c := &Cursor{ScreenCols: 40}
	var buf buffer.Buffer

	DrawMessageBar(&msg, c, &buf)

	if !strings.Contains(string(buf.Bytes()), "4 bytes written to disk") {
		t.Errorf("expected message text, got %q", buf.Bytes())
	}
}

package editor

import (
	"io"

	"github.com/kjvalk/vie/internal/buffer"
	"github.com/kjvalk/vie/internal/keys"
)

// helpMessage is shown once at startup.
const helpMessage = "HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find"

// Editor is the composite value the event loop owns: the document, the
// cursor/viewport, the append buffer, the status message, and the
// collaborators (file system, key source, output sink) it was wired with,
// instead of a package-level global.
type Editor struct {
	Doc    Document
	Cursor Cursor
	Msg    StatusMessage

	buf buffer.Buffer
	fs  FileSystem
	out io.Writer

	readKey ReadKeyFunc

	quitTimes int
}

// New builds an Editor ready to run against a screenRows x screenCols
// window, sized down by 2 for the status and message bars.
func New(fs FileSystem, out io.Writer, readKey ReadKeyFunc, screenRows, screenCols int) *Editor {
	e := &Editor{
		fs:        fs,
		out:       out,
		readKey:   readKey,
		quitTimes: QuitTimes,
	}
	e.Cursor.ScreenRows = screenRows - 2
	e.Cursor.ScreenCols = screenCols
	e.Msg.SetMessage(helpMessage)
	return e
}

// Open loads filename into the document, replacing any existing content.
func (e *Editor) Open(filename string) error {
	f, err := e.fs.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := e.Doc.Load(f); err != nil {
		return err
	}
	e.Doc.Filename = filename
	return nil
}

// Save writes the document to its filename, prompting for one first if
// none is set. Write failures are non-fatal: they're reported in the
// status message and the session continues.
func (e *Editor) Save() {
	if e.Doc.Filename == "" {
		name, err := Prompt(&e.Msg, "Save as: %s (ESC to cancel)", e.readKey, e.renderFrame, nil)
		if err != nil {
			e.Msg.SetMessage("Save aborted")
			return
		}
		e.Doc.Filename = name
	}

	data := e.Doc.Bytes()
	f, err := e.fs.Create(e.Doc.Filename)
	if err != nil {
		e.Msg.SetMessage("Can't save! I/O error: %s", err.Error())
		return
	}
	defer f.Close()

	if err := f.Truncate(int64(len(data))); err != nil {
		e.Msg.SetMessage("Can't save! I/O error: %s", err.Error())
		return
	}
	if _, err := f.Write(data); err != nil {
		e.Msg.SetMessage("Can't save! I/O error: %s", err.Error())
		return
	}

	e.Doc.Dirty = false
	e.Msg.SetMessage("%d bytes written to disk", len(data))
}

// renderFrame assembles and flushes one frame. It is also handed to Prompt
// and Find as their RenderFunc so modal loops repaint exactly like the
// main loop.
func (e *Editor) renderFrame() {
	RefreshScreen(&e.Doc, &e.Cursor, &e.Msg, &e.buf)
	_, _ = e.out.Write(e.buf.Bytes())
}

// find runs the incremental search, pointed at this editor's document,
// cursor, and I/O.
func (e *Editor) find() {
	Find(&e.Doc, &e.Cursor, &e.Msg, e.readKey, e.renderFrame)
}

// Run is the event loop: render, read one key, dispatch, repeat until the
// user quits. It returns only on a read error (terminal gone unusable) or
// a clean quit.
func (e *Editor) Run() error {
	for {
		e.renderFrame()

		key, err := e.readKey()
		if err != nil {
			return err
		}

		cont := e.dispatch(key)
		if !cont {
			e.renderFrame()
			return nil
		}
	}
}

// dispatch applies one decoded key and reports whether the loop should
// continue.
func (e *Editor) dispatch(key keys.Key) bool {
	switch key {
	case 0x0D:
		InsertNewline(&e.Doc, &e.Cursor)
	case keys.Ctrl('q'):
		if e.Doc.Dirty && e.quitTimes > 0 {
			e.Msg.SetMessage("WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", e.quitTimes)
			e.quitTimes--
			return true
		}
		return false
	case keys.Ctrl('s'):
		e.Save()
	case keys.Ctrl('f'):
		e.find()
	case keys.Home:
		MoveHome(&e.Cursor)
	case keys.End:
		MoveEnd(&e.Doc, &e.Cursor)
	case keys.Backspace, keys.Ctrl('h'):
		DeleteChar(&e.Doc, &e.Cursor)
	case keys.Del:
		DeleteForward(&e.Doc, &e.Cursor)
	case keys.PageUp:
		PageUp(&e.Doc, &e.Cursor)
	case keys.PageDown:
		PageDown(&e.Doc, &e.Cursor)
	case keys.ArrowUp, keys.ArrowDown, keys.ArrowLeft, keys.ArrowRight:
		MoveCursor(&e.Doc, &e.Cursor, key)
	case keys.Ctrl('l'), keys.Esc:
		// Ctrl-L (refresh) is a no-op: every tick already repaints the
		// whole screen. A bare ESC with no recognized sequence is ignored.
	default:
		if keys.IsInsertable(key) {
			InsertChar(&e.Doc, &e.Cursor, byte(key))
		}
	}

	e.quitTimes = QuitTimes
	return true
}

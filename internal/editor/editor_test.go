package editor

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/kjvalk/vie/internal/keys"
)

// fakeFile is an in-memory WriteTruncateCloser/io.ReadCloser backing
// fakeFS, standing in for a real *os.File in these tests.
type fakeFile struct {
	*bytes.Buffer
}

func (f fakeFile) Close() error { return nil }

func (f *fakeFile) Truncate(size int64) error {
	if int64(f.Buffer.Len()) > size {
		f.Buffer.Truncate(int(size))
	}
	return nil
}

// fakeFS is an in-memory FileSystem: Create always hands back a fresh
// buffer recorded under name, Open reads back whatever was last written
// (or a pre-seeded file).
type fakeFS struct {
	files map[string][]byte
}

func newFakeFS() *fakeFS { return &fakeFS{files: map[string][]byte{}} }

func (fs *fakeFS) Open(name string) (io.ReadCloser, error) {
	data, ok := fs.files[name]
	if !ok {
		return nil, errors.New("fakeFS: no such file: " + name)
	}
	return fakeFile{bytes.NewBuffer(append([]byte(nil), data...))}, nil
}

func (fs *fakeFS) Create(name string) (WriteTruncateCloser, error) {
	f := &fakeFile{Buffer: &bytes.Buffer{}}
	fs.files[name] = nil
	return &recordingFile{fakeFile: f, fs: fs, name: name}, nil
}

// recordingFile writes through to fs.files[name] on every call so the test
// can inspect the saved bytes without a real filesystem.
type recordingFile struct {
	*fakeFile
	fs   *fakeFS
	name string
}

func (r *recordingFile) Write(p []byte) (int, error) {
	n, err := r.fakeFile.Buffer.Write(p)
	r.fs.files[r.name] = append([]byte(nil), r.fakeFile.Buffer.Bytes()...)
	return n, err
}

func (r *recordingFile) Truncate(size int64) error {
	err := r.fakeFile.Truncate(size)
	r.fs.files[r.name] = append([]byte(nil), r.fakeFile.Buffer.Bytes()...)
	return err
}

func keySeq(seq ...keys.Key) ReadKeyFunc {
	i := 0
	return func() (keys.Key, error) {
		if i >= len(seq) {
			return 0, errors.New("keySeq: exhausted")
		}
		k := seq[i]
		i++
		return k, nil
	}
}

// Empty buffer, type "hi", Enter, "!", Ctrl-S, type the filename
// "t.txt", Enter. The saved file is exactly "hi\n!\n", the status message
// reports 5 bytes, and the document is no longer dirty.
func TestScenarioTypeAndSave(t *testing.T) {
	fs := newFakeFS()
	var out bytes.Buffer
	seq := []keys.Key{
		keys.Key('h'), keys.Key('i'), 0x0D, keys.Key('!'),
		keys.Ctrl('s'),
		keys.Key('t'), keys.Key('.'), keys.Key('t'), keys.Key('x'), keys.Key('t'), 0x0D,
	}
	e := New(fs, &out, keySeq(seq[5:]...), 24, 80)

	// Ctrl-S blocks inside dispatch on a nested Prompt call that reads
	// the filename keystrokes itself, so only the keys up to and
	// including Ctrl-S are dispatched directly; the rest are consumed by
	// Prompt via e.readKey.
	for _, k := range seq[:5] {
		if !e.dispatch(k) {
			t.Fatal("dispatch returned false before the sequence finished")
		}
	}

	got, ok := fs.files["t.txt"]
	if !ok {
		t.Fatal("t.txt was never created")
	}
	if string(got) != "hi\n!\n" {
		t.Errorf("saved file = %q, want %q", got, "hi\n!\n")
	}
	if len(got) != 5 {
		t.Errorf("len(saved file) = %d, want 5", len(got))
	}
	if e.Doc.Dirty {
		t.Error("Dirty should be false after a successful save")
	}
	if e.Msg.Text != "5 bytes written to disk" {
		t.Errorf("status message = %q, want %q", e.Msg.Text, "5 bytes written to disk")
	}
}

// Ctrl-Q on a dirty, unsaved document warns and decrements the quit
// counter instead of quitting; once it reaches zero, the next Ctrl-Q
// quits unconditionally.
func TestDirtyQuitCounter(t *testing.T) {
	e := New(newFakeFS(), &bytes.Buffer{}, func() (keys.Key, error) { return 0, nil }, 24, 80)
	e.Doc.InsertRow(0, []byte("unsaved"))
	e.Doc.Dirty = true

	for want := QuitTimes - 1; want >= 0; want-- {
		if !e.dispatch(keys.Ctrl('q')) {
			t.Fatalf("quit fired early with quitTimes counting down to %d", want)
		}
		if e.quitTimes != want {
			t.Errorf("quitTimes = %d, want %d", e.quitTimes, want)
		}
	}

	if e.dispatch(keys.Ctrl('q')) {
		t.Fatal("expected the final Ctrl-Q to quit once the counter reached zero")
	}
}

// Any ordinary key resets the quit counter back to QuitTimes, so warnings
// don't accumulate across unrelated edits.
func TestDirtyQuitCounterResetsOnOtherKeys(t *testing.T) {
	e := New(newFakeFS(), &bytes.Buffer{}, func() (keys.Key, error) { return 0, nil }, 24, 80)
	e.Doc.InsertRow(0, []byte("unsaved"))
	e.Doc.Dirty = true

	e.dispatch(keys.Ctrl('q'))
	if e.quitTimes != QuitTimes-1 {
		t.Fatalf("quitTimes = %d, want %d", e.quitTimes, QuitTimes-1)
	}

	e.dispatch(keys.Key('x'))
	if e.quitTimes != QuitTimes {
		t.Errorf("quitTimes = %d, want reset to %d", e.quitTimes, QuitTimes)
	}
}

// A clean (non-dirty) document quits immediately on the first Ctrl-Q, no
// warning needed.
func TestCleanQuitNoWarning(t *testing.T) {
	e := New(newFakeFS(), &bytes.Buffer{}, func() (keys.Key, error) { return 0, nil }, 24, 80)

	if e.dispatch(keys.Ctrl('q')) {
		t.Fatal("expected immediate quit on a clean document")
	}
	if e.Msg.Text != helpMessage {
		t.Errorf("status message changed on a clean quit: %q", e.Msg.Text)
	}
}

func TestOpenLoadsFileAndSetsFilename(t *testing.T) {
	fs := newFakeFS()
	fs.files["existing.txt"] = []byte("one\ntwo\n")
	e := New(fs, &bytes.Buffer{}, func() (keys.Key, error) { return 0, nil }, 24, 80)

	if err := e.Open("existing.txt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Doc.Filename != "existing.txt" {
		t.Errorf("Filename = %q, want %q", e.Doc.Filename, "existing.txt")
	}
	if e.Doc.NumRows() != 2 || string(e.Doc.Rows[0].Raw) != "one" {
		t.Fatalf("rows = %v", e.Doc.Rows)
	}
	if e.Doc.Dirty {
		t.Error("Dirty should be false right after Open")
	}
}

func TestSaveReportsIOError(t *testing.T) {
	fs := newFakeFS()
	e := New(fs, &bytes.Buffer{}, func() (keys.Key, error) { return 0, nil }, 24, 80)
	e.Doc.Filename = "readonly.txt"
	e.Doc.InsertRow(0, []byte("x"))

	// Swap in a FileSystem whose Create always fails, to exercise the
	// non-fatal I/O error path.
	e.fs = failingFS{}
	e.Save()

	if e.Doc.Dirty != true {
		t.Error("a failed save must not clear Dirty")
	}
	want := "Can't save! I/O error: fakeFS: create always fails"
	if e.Msg.Text != want {
		t.Errorf("status message = %q, want %q", e.Msg.Text, want)
	}
}

type failingFS struct{}

func (failingFS) Open(name string) (io.ReadCloser, error) { return nil, errors.New("not found") }
func (failingFS) Create(name string) (WriteTruncateCloser, error) {
	return nil, errors.New("fakeFS: create always fails")
}

// Command vie is a minimalist modeless terminal text editor.
package main

import (
	"io"
	"log"
	"os"

	"github.com/kjvalk/vie/internal/editor"
	"github.com/kjvalk/vie/internal/keys"
	"github.com/kjvalk/vie/internal/term"
)

// osFileSystem is the concrete, os-backed implementation of
// editor.FileSystem: the only place in this program that touches a real
// path.
type osFileSystem struct{}

func (osFileSystem) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

func (osFileSystem) Create(name string) (editor.WriteTruncateCloser, error) {
	return os.OpenFile(name, os.O_RDWR|os.O_CREATE, 0644)
}

func main() {
	fd := int(os.Stdin.Fd())

	restore, err := term.EnableRaw(fd)
	if err != nil {
		log.Fatalf("vie: couldn't enable raw mode: %v", err)
	}
	defer restore()

	size, err := term.GetSize(fd, os.Stdin, os.Stdout)
	if err != nil {
		die(restore, err)
	}

	reader := term.NewPollReader(os.Stdin)
	readKey := func() (keys.Key, error) {
		return keys.Decode(reader)
	}

	ed := editor.New(osFileSystem{}, os.Stdout, readKey, size.Rows, size.Cols)

	if args := os.Args[1:]; len(args) >= 1 {
		if err := ed.Open(args[0]); err != nil {
			die(restore, err)
		}
	}

	if err := ed.Run(); err != nil {
		die(restore, err)
	}
}

// die clears the screen, restores the terminal, and exits nonzero. It is
// the last resort for a failure the event loop can't recover from: a
// failed initial file open, or the key reader itself erroring out (the
// terminal has gone away).
func die(restore func() error, cause error) {
	os.Stdout.WriteString("\x1b[2J\x1b[H")
	restore()
	log.Fatalf("vie: %v", cause)
}

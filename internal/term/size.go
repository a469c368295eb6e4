package term

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"golang.org/x/term"
)

// Size is a terminal window's dimensions in character cells.
type Size struct {
	Rows, Cols int
}

// GetSize queries the window size for fd, primarily via the ioctl wrapped
// by golang.org/x/term.GetSize. When that fails (e.g. the ioctl isn't
// supported, or reports a zero width), it falls back to the classic VT100
// trick: shove the cursor to a deliberately over-large column/row (the
// terminal clamps it to the real bottom-right corner) and parse the
// resulting cursor-position report off in.
func GetSize(fd int, in io.Reader, out io.Writer) (Size, error) {
	if cols, rows, err := term.GetSize(fd); err == nil && cols > 0 && rows > 0 {
		return Size{Rows: rows, Cols: cols}, nil
	}

	if _, err := io.WriteString(out, "\x1b[999C\x1b[999B"); err != nil {
		return Size{}, err
	}
	return getCursorPosition(in, out)
}

// getCursorPosition requests (ESC[6n) and parses a cursor-position report
// (ESC [ rows ; cols R).
func getCursorPosition(in io.Reader, out io.Writer) (Size, error) {
	if _, err := io.WriteString(out, "\x1b[6n"); err != nil {
		return Size{}, err
	}

	r := bufio.NewReader(in)
	var buf [32]byte
	n := 0
	for n < len(buf) {
		c, err := r.ReadByte()
		if err != nil {
			if err == io.EOF {
				break
			}
			return Size{}, err
		}
		buf[n] = c
		n++
		if c == 'R' {
			break
		}
	}

	if n < 2 || buf[0] != 0x1B || buf[1] != '[' {
		return Size{}, errors.New("term: malformed cursor position report")
	}

	var rows, cols int
	if _, err := fmt.Sscanf(string(buf[2:n-1]), "%d;%d", &rows, &cols); err != nil {
		return Size{}, err
	}
	return Size{Rows: rows, Cols: cols}, nil
}

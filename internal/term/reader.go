package term

import (
	"io"

	"github.com/kjvalk/vie/internal/keys"
)

// PollReader adapts a raw, non-blocking fd (VMIN=0, VTIME=1, see EnableRaw)
// to keys.ByteSource: a Read that returns 0 bytes and no error is a
// benign ~100ms timeout, not an error.
type PollReader struct {
	r io.Reader
}

// NewPollReader wraps r (typically os.Stdin once it is in raw mode).
func NewPollReader(r io.Reader) *PollReader {
	return &PollReader{r: r}
}

// ReadByte implements keys.ByteSource.
func (p *PollReader) ReadByte() (b byte, ok bool, err error) {
	var buf [1]byte
	n, err := p.r.Read(buf[:])
	if err != nil {
		return 0, false, err
	}
	if n == 0 {
		return 0, false, nil
	}
	return buf[0], true, nil
}

var _ keys.ByteSource = (*PollReader)(nil)

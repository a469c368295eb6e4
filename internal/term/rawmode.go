// Package term holds the terminal collaborators the editor core treats as
// external: raw-mode acquisition/restoration, window-size discovery, and a
// polling byte reader. None of it is "the interesting engineering" (that
// lives in internal/editor and internal/keys) — it is the thin shell that
// makes a real os.Stdin/os.Stdout behave the way the core expects.
package term

import (
	"golang.org/x/sys/unix"
)

// EnableRaw places fd (almost always os.Stdin's descriptor) into raw,
// character-at-a-time mode: canonical line buffering, local echo, signal
// generation, extended input processing, software flow control, CR-to-NL
// input translation, break-as-interrupt, parity checking, and high-bit
// stripping are all disabled; output post-processing (NL translation) is
// disabled; character size is forced to 8 bits; reads become non-blocking
// with a ~100ms polling granularity (VMIN=0, VTIME=1).
//
// It returns a restore closure that puts the terminal back exactly as it
// was. The closure is idempotent-safe to defer immediately after a
// successful call and is the RAII boundary treated as an external
// collaborator rather than core editor logic.
func EnableRaw(fd int) (restore func() error, err error) {
	original, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return nil, err
	}

	raw := *original
	raw.Iflag &^= unix.IXON | unix.ICRNL | unix.BRKINT | unix.INPCK | unix.ISTRIP
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1

	if err := unix.IoctlSetTermios(fd, unix.TCSETS, &raw); err != nil {
		return nil, err
	}

	restore = func() error {
		return unix.IoctlSetTermios(fd, unix.TCSETS, original)
	}
	return restore, nil
}

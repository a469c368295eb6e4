// Package keys decodes a raw terminal byte stream into semantic key values.
//
// The numeric space is split so printable bytes, control bytes, and named
// keys never collide: bytes below 256 are literal byte values (including
// the 0x7F BACKSPACE and the 0x1B ESC codes), and named keys that have no
// single-byte representation (arrows, DEL, HOME, END, PAGE_UP, PAGE_DOWN)
// start at 1000.
package keys

// Key is a decoded, semantic keypress.
type Key int32

const (
	Esc       Key = 0x1B
	Backspace Key = 0x7F
)

const (
	ArrowUp Key = 1000 + iota
	ArrowDown
	ArrowRight
	ArrowLeft
	Del
	Home
	End
	PageUp
	PageDown
)

// Ctrl maps a plain character to its control-key code, stripping bits 5
// and 6 as a real terminal does when CTRL is held.
func Ctrl(c byte) Key {
	return Key(c & 0x1f)
}

// IsInsertable reports whether k is a byte the editor should splice
// straight into the document: any non-control ASCII byte, or any byte with
// the high bit set. The editor is byte-oriented, with no Unicode decoding,
// so a high-bit byte is inserted as-is rather than decoded.
func IsInsertable(k Key) bool {
	if k < 0 || k > 0xFF {
		return false
	}
	if k >= 0x80 {
		return true
	}
	return k >= 0x20 && k != Backspace
}

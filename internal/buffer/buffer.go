// Package buffer provides a growable byte buffer used to assemble one
// screen frame before a single write to the terminal.
package buffer

import "bytes"

// Buffer accumulates the bytes of one frame. It is reused across ticks via
// Reset rather than reallocated, mirroring the single append-buffer the
// renderer owns for its lifetime.
type Buffer struct {
	buf bytes.Buffer
}

// Append adds p to the buffer. A reallocation failure must leave prior
// contents intact and be silently ignored, since the frame is best-effort
// and the next tick retries — so an internal allocation panic (bytes.
// ErrTooLarge) is recovered here instead of propagated.
func (b *Buffer) Append(p []byte) {
	defer func() { _ = recover() }()
	b.buf.Write(p)
}

// AppendString is Append for a string, avoiding a caller-side []byte copy.
func (b *Buffer) AppendString(s string) {
	defer func() { _ = recover() }()
	b.buf.WriteString(s)
}

// AppendByte appends a single byte.
func (b *Buffer) AppendByte(c byte) {
	defer func() { _ = recover() }()
	b.buf.WriteByte(c)
}

// Bytes returns the buffer's current contents. The slice is only valid
// until the next Append/Reset call.
func (b *Buffer) Bytes() []byte {
	return b.buf.Bytes()
}

// Len reports the number of bytes currently buffered.
func (b *Buffer) Len() int {
	return b.buf.Len()
}

// Reset empties the buffer for the next frame, retaining its backing
// storage.
func (b *Buffer) Reset() {
	b.buf.Reset()
}

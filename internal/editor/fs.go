package editor

import "io"

// WriteTruncateCloser is what Save needs from a created/opened file:
// truncate it to the serialized length (dropping anything left over from a
// previous, longer save), then write the serialized buffer.
type WriteTruncateCloser interface {
	io.Writer
	io.Closer
	Truncate(size int64) error
}

// FileSystem is the byte-stream source/sink collaborator treated as
// external to the document model: Document never opens a path itself.
// cmd/vie supplies the concrete os-backed implementation.
type FileSystem interface {
	Open(name string) (io.ReadCloser, error)
	Create(name string) (WriteTruncateCloser, error)
}

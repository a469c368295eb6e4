package editor

import (
	"bufio"
	"bytes"
	"io"

	"golang.org/x/exp/slices"
)

// Document is the ordered sequence of rows that make up the buffer, plus
// the bookkeeping (filename, dirty flag) that travels with them. File
// open/save byte I/O is an external collaborator: Document reads from an
// io.Reader and serializes to bytes, but never touches a filesystem path
// itself.
type Document struct {
	Rows     []*Row
	Filename string
	Dirty    bool
}

// NumRows is the row count N. The cursor's virtual row at index N (past
// the last row) is a legal append point and is not clamped away here.
func (d *Document) NumRows() int { return len(d.Rows) }

// Load replaces the document's contents by reading r line by line,
// splitting on LF and stripping a trailing CR from each line (so both LF
// and CRLF inputs load identically). Dirty is cleared: a fresh load is not
// a modification.
func (d *Document) Load(r io.Reader) error {
	d.Rows = nil
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := bytes.TrimSuffix(scanner.Bytes(), []byte("\r"))
		d.Rows = append(d.Rows, NewRow(line))
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	d.Dirty = false
	return nil
}

// Bytes concatenates every row's Raw separated by LF: each row contributes
// Raw followed by one '\n', with no extra trailing newline beyond that.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	for _, row := range d.Rows {
		buf.Write(row.Raw)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// InsertRow installs a new row at at (0 <= at <= NumRows()), shifting rows
// [at, N) one slot right.
func (d *Document) InsertRow(at int, raw []byte) {
	if at < 0 || at > d.NumRows() {
		return
	}
	d.Rows = slices.Insert(d.Rows, at, NewRow(raw))
	d.Dirty = true
}

// DeleteRow removes the row at at (0 <= at < NumRows()).
func (d *Document) DeleteRow(at int) {
	if at < 0 || at >= d.NumRows() {
		return
	}
	d.Rows = slices.Delete(d.Rows, at, at+1)
	d.Dirty = true
}

// RowInsertChar inserts b into row at at, clamping at into range.
func (d *Document) RowInsertChar(row *Row, at int, b byte) {
	row.InsertByte(at, b)
	d.Dirty = true
}

// RowAppend concatenates raw onto row.
func (d *Document) RowAppend(row *Row, raw []byte) {
	row.Append(raw)
	d.Dirty = true
}

// RowDeleteChar removes the byte at at from row (0 <= at < row.Len()).
func (d *Document) RowDeleteChar(row *Row, at int) {
	row.DeleteByte(at)
	d.Dirty = true
}

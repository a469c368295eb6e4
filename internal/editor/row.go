package editor

import "golang.org/x/exp/slices"

// Highlight classifies one render-column for the renderer's SGR coloring.
// This is purely cosmetic decoration recovered from the original kilo
// lineage; no editing operation consults it.
type Highlight byte

const (
	HLNormal Highlight = iota
	HLNumber
	HLMatch
)

// Row is one logical line: raw is the byte-for-byte content as typed and
// persisted; render is raw with tabs expanded to spaces at fixed TabStop
// columns. Neither carries a trailing newline. render and highlight are
// pure functions of raw and must be recomputed by updateRender after every
// mutation to raw.
type Row struct {
	Raw       []byte
	Render    []byte
	Highlight []Highlight
}

// NewRow builds a row from raw content, computing its render form.
func NewRow(raw []byte) *Row {
	r := &Row{Raw: append([]byte(nil), raw...)}
	r.updateRender()
	return r
}

// Len is the raw byte length.
func (r *Row) Len() int { return len(r.Raw) }

// RLen is the rendered byte length.
func (r *Row) RLen() int { return len(r.Render) }

// CxToRx converts a raw byte index to a render column: each TAB advances
// to the next multiple of TabStop, every other byte advances by one.
func CxToRx(row *Row, cx int) int {
	rx := 0
	for _, b := range row.Raw[:cx] {
		if b == '\t' {
			rx += (TabStop - 1) - (rx % TabStop)
		}
		rx++
	}
	return rx
}

// RxToCx is the inverse of CxToRx: the first raw index whose cumulative
// render column strictly exceeds rx, or row.Len() if rx reaches past the
// end of the row.
func RxToCx(row *Row, rx int) int {
	curRx := 0
	for cx, b := range row.Raw {
		if b == '\t' {
			curRx += (TabStop - 1) - (curRx % TabStop)
		}
		curRx++
		if curRx > rx {
			return cx
		}
	}
	return row.Len()
}

// updateRender recomputes Render (and Highlight) from Raw. Must be called
// after every mutation to Raw.
func (r *Row) updateRender() {
	tabs := 0
	for _, b := range r.Raw {
		if b == '\t' {
			tabs++
		}
	}

	render := make([]byte, 0, len(r.Raw)+tabs*(TabStop-1))
	for _, b := range r.Raw {
		if b == '\t' {
			render = append(render, ' ')
			for len(render)%TabStop != 0 {
				render = append(render, ' ')
			}
		} else {
			render = append(render, b)
		}
	}
	r.Render = render
	r.updateSyntax()
}

// updateSyntax recomputes the per-column highlight plane: digits are
// flagged HLNumber, everything else HLNormal. Nothing assigns HLMatch: the
// search session moves the cursor but does not highlight matches.
func (r *Row) updateSyntax() {
	hl := make([]Highlight, len(r.Render))
	for i, c := range r.Render {
		if c >= '0' && c <= '9' {
			hl[i] = HLNumber
		} else {
			hl[i] = HLNormal
		}
	}
	r.Highlight = hl
}

// InsertByte splices b into Raw at at, clamping at to [0, Len()].
func (r *Row) InsertByte(at int, b byte) {
	if at < 0 {
		at = 0
	}
	if at > r.Len() {
		at = r.Len()
	}
	r.Raw = slices.Insert(r.Raw, at, b)
	r.updateRender()
}

// DeleteByte removes the byte at at; at must be within [0, Len()).
func (r *Row) DeleteByte(at int) {
	if at < 0 || at >= r.Len() {
		return
	}
	r.Raw = slices.Delete(r.Raw, at, at+1)
	r.updateRender()
}

// Append concatenates b onto the end of Raw.
func (r *Row) Append(b []byte) {
	r.Raw = append(r.Raw, b...)
	r.updateRender()
}

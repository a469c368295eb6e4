package editor

import (
	"bytes"

	"github.com/kjvalk/vie/internal/keys"
)

// SearchSession is the incremental-search state that threads across
// keystrokes within a single Find call: the origin (StartY, StartX) the
// search progresses from and the current Direction (+1 forward, −1
// backward). It is owned by the Find call, not a package-level static, so
// nested prompt sessions never interfere with each other.
type SearchSession struct {
	doc *Document
	cur *Cursor

	StartY, StartX int
	Direction      int

	matched  bool
	matchLen int
}

// NewSearchSession starts a session rooted at cur's current position,
// searching forward.
func NewSearchSession(doc *Document, cur *Cursor) *SearchSession {
	s := &SearchSession{doc: doc, cur: cur}
	s.reset()
	return s
}

// reset always sets Direction forward, with no special case for starting
// on row 0 — the search wraps the same way regardless of origin row.
func (s *SearchSession) reset() {
	s.StartY = s.cur.Cy
	s.StartX = s.cur.Cx
	s.Direction = 1
	s.matched = false
	s.matchLen = 0
}

// Callback is a PromptCallback: it updates Direction from arrow keys,
// resets the session on termination/empty query/any non-arrow key, and
// re-runs the search on every keystroke that leaves a non-empty query.
func (s *SearchSession) Callback(query string, key keys.Key) {
	switch key {
	case keys.ArrowRight, keys.ArrowDown:
		s.Direction = 1
	case keys.ArrowLeft, keys.ArrowUp:
		s.Direction = -1
	case 0x0D, keys.Esc:
		s.reset()
		return
	default:
		s.reset()
	}

	if query == "" {
		s.reset()
		return
	}

	s.search([]byte(query))
}

// search runs one cyclic scan starting at (StartY, StartX) in Direction,
// visiting at most NumRows() rows before giving up. On a match it updates
// the session origin and moves the document cursor; it performs no
// highlighting.
//
// A match advances (forward) or retreats (backward) StartX past the
// previous match before searching again, so repeated keystrokes in the
// same direction step through every occurrence in a row instead of
// re-finding the first one forever — this applies whenever a prior match
// exists, not only when the arrow direction just flipped, which is the
// only way multiple hits within one row are reachable at all.
func (s *SearchSession) search(query []byte) {
	n := s.doc.NumRows()
	if n == 0 || len(query) == 0 {
		return
	}

	currentY := s.StartY
	startX := s.StartX
	if s.matched {
		if s.Direction == 1 {
			startX += s.matchLen
		} else {
			startX--
		}
	}

	for i := 0; i < n; i++ {
		row := s.doc.Rows[currentY]
		if s.Direction == 1 {
			if idx := indexFrom(row.Render, query, startX); idx >= 0 {
				s.commit(currentY, idx, len(query))
				return
			}
			currentY++
			if currentY == n {
				currentY = 0
			}
			startX = 0
		} else {
			if idx := lastIndexFrom(row.Render, query, startX); idx >= 0 {
				s.commit(currentY, idx, len(query))
				return
			}
			currentY--
			if currentY == -1 {
				currentY = n - 1
			}
			startX = len(s.doc.Rows[currentY].Render) - len(query)
		}
	}
}

func (s *SearchSession) commit(y, matchRx, qlen int) {
	s.StartY = y
	s.StartX = matchRx
	s.matched = true
	s.matchLen = qlen
	s.cur.Cy = y
	s.cur.Cx = RxToCx(s.doc.Rows[y], matchRx)
}

// indexFrom finds query in render at or after byte offset from, returning
// an absolute index or -1.
func indexFrom(render, query []byte, from int) int {
	if from < 0 {
		from = 0
	}
	if from > len(render) {
		return -1
	}
	idx := bytes.Index(render[from:], query)
	if idx < 0 {
		return -1
	}
	return from + idx
}

// lastIndexFrom scans downward from from (clamped so the query still fits)
// for the first position where render[x:x+len(query)] == query.
func lastIndexFrom(render, query []byte, from int) int {
	maxStart := len(render) - len(query)
	if from > maxStart {
		from = maxStart
	}
	for x := from; x >= 0; x-- {
		if bytes.Equal(render[x:x+len(query)], query) {
			return x
		}
	}
	return -1
}

// Find runs the modal incremental-search prompt. Cancelling (ESC) does
// not restore the pre-search cursor position — the document cursor stays
// wherever the last match left it; only the search session's own state
// resets.
func Find(doc *Document, cur *Cursor, msg *StatusMessage, readKey ReadKeyFunc, render RenderFunc) {
	session := NewSearchSession(doc, cur)
	_, _ = Prompt(msg, "Search: %s (ESC/Arrows/Enter)", readKey, render, session.Callback)
}

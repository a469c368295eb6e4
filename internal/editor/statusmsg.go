package editor

import (
	"fmt"
	"time"
)

// StatusMessage is a short, fixed-display-window message shown in the
// message bar. It is visible only while now - Set < MessageTTL.
type StatusMessage struct {
	Text string
	Set  time.Time
}

// SetMessage formats a message and stamps it with the current time.
func (s *StatusMessage) SetMessage(format string, args ...interface{}) {
	s.Text = fmt.Sprintf(format, args...)
	s.Set = time.Now()
}

// Visible reports whether the message is still within its TTL window.
func (s *StatusMessage) Visible() bool {
	return s.Text != "" && time.Since(s.Set) < MessageTTL
}

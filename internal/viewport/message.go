package viewport

import (
	"errors"
	"strings"
)

// messageFrames is how many repaints a transient message survives after the
// one that first shows it.
const messageFrames = 5

// TransientMessage is an error overlay that expires after a fixed number of
// repaints. While shown it may push the choice list's TopLine forward;
// the same amount is taken back when it expires.
type TransientMessage struct {
	Lines []string

	started   bool
	remaining int
	shift     int
}

// NewMessage returns a message of the non-empty lines, or nil when there are
// none.
func NewMessage(lines ...string) *TransientMessage {
	var kept []string
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			kept = append(kept, l)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return &TransientMessage{Lines: kept}
}

// ErrorLines splits a wrapping error's message on ':' into display lines,
// so "cannot read file: open x: permission denied" reads as three lines. An
// error that wraps nothing is shown on one line as is.
func ErrorLines(err error) []string {
	if err == nil {
		return nil
	}
	if errors.Unwrap(err) == nil {
		return []string{err.Error()}
	}
	parts := strings.Split(err.Error(), ":")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// expired reports whether the countdown ran out.
func (m *TransientMessage) expired() bool {
	return m != nil && m.started && m.remaining == 0
}

// rows is the screen space the message takes including its separator row.
func (m *TransientMessage) rows() int {
	if m == nil {
		return 0
	}
	return len(m.Lines) + 1
}

// tick advances the countdown for a frame that shows the message. On the
// first frame it starts the countdown and, when the list does not fit,
// moves TopLine forward by the space the message takes (never past
// Selected).
func (m *TransientMessage) tick(st ScrollState, overflow bool) ScrollState {
	if m.started {
		m.remaining--
		return st
	}
	m.started = true
	m.remaining = messageFrames
	if overflow {
		top := st.TopLine + m.rows()
		if top > st.Selected {
			top = st.Selected
		}
		m.shift = top - st.TopLine
		st.TopLine = top
	}
	return st
}

// restore undoes the TopLine shift applied by tick.
func (m *TransientMessage) restore(st ScrollState) ScrollState {
	st.TopLine -= m.shift
	if st.TopLine < 0 {
		st.TopLine = 0
	}
	m.shift = 0
	return st
}

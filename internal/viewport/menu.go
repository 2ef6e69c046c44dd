package viewport

import (
	"github.com/interpretive-systems/diffwin/internal/keymap"
	"github.com/interpretive-systems/diffwin/internal/term"
)

var menuKeys = keymap.Menu()

// Show draws c on s and runs the key loop until the user confirms or
// cancels (or, in ModeInfo, presses any key). The surface size is read
// again for every frame. On a surface error the state reached so far is
// returned with the error.
func Show(s term.Surface, c Content, st ScrollState, mode Mode) (Selection, error) {
	count := len(c.Choices)
	st = st.Normalize(count)
	msg := NewMessage(c.Error...)

	for {
		if msg.expired() {
			st = msg.restore(st)
			msg = nil
		}
		height, width := s.Size()
		l := computeLayout(c, msg, height, width)
		if msg != nil {
			st = msg.tick(st, l.Visible() < count)
		}
		st = keepVisible(st, l)
		draw(s, c, msg, l, st)

		showCaret := false
		if mode == ModeEdit {
			if row, col, ok := caret(c, l, st); ok {
				s.MoveCursor(row, col)
				s.SetCursor(term.CursorBlock)
				showCaret = true
			}
		}
		s.Show()

		k, err := s.ReadKey()
		if showCaret {
			s.SetCursor(term.CursorHidden)
		}
		if err != nil {
			return Selection{State: st}, err
		}

		a := menuKeys.Lookup(k)
		if a == keymap.ActionQuit {
			return Selection{State: st, Cancelled: true}, nil
		}
		if mode == ModeInfo {
			return Selection{State: st}, nil
		}
		if a == keymap.ActionConfirm {
			if count > 0 {
				return Selection{State: st}, nil
			}
			continue
		}
		st = Navigate(st, a, l, count)
	}
}

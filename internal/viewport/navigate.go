package viewport

import "github.com/interpretive-systems/diffwin/internal/keymap"

// pageStep is how far PageUp/PageDown move the selection.
const pageStep = 4

// Navigate applies a navigation action to st for a list of count choices
// laid out by l. Non-navigation actions return st unchanged.
func Navigate(st ScrollState, a keymap.Action, l Layout, count int) ScrollState {
	if count <= 0 {
		return ScrollState{}
	}
	switch a {
	case keymap.ActionHome:
		st = ScrollState{}
	case keymap.ActionEnd:
		st.Selected = count - 1
		if l.ListTop+count > l.Height {
			st.TopLine = count - l.Height + l.ListTop
		}
	case keymap.ActionUp:
		if st.Selected > 0 {
			st.Selected--
			if st.Selected < st.TopLine {
				st.TopLine--
			}
		}
	case keymap.ActionDown:
		if st.Selected < count-1 {
			st.Selected++
			if l.ListTop+st.Selected-st.TopLine >= l.Height {
				st.TopLine++
			}
		}
	case keymap.ActionPageUp:
		if st.Selected > 0 {
			st.Selected -= pageStep
			if st.Selected < st.TopLine {
				st.TopLine = st.Selected
			}
			if st.Selected < 0 {
				st = ScrollState{}
			}
		}
	case keymap.ActionPageDown:
		st.Selected += pageStep
		if st.Selected > count-1 {
			st.Selected = count - 1
		}
		if over := l.ListTop + st.Selected - st.TopLine - l.Height; over >= 0 {
			st.TopLine += over + 1
		}
	}
	if st.TopLine > st.Selected {
		st.TopLine = st.Selected
	}
	if st.TopLine < 0 {
		st.TopLine = 0
	}
	return st
}

// keepVisible scrolls just enough for the selected row to be on screen,
// e.g. after the surface shrank.
func keepVisible(st ScrollState, l Layout) ScrollState {
	v := l.Visible()
	if v == 0 {
		return st
	}
	if st.Selected-st.TopLine >= v {
		st.TopLine = st.Selected - v + 1
	}
	return st
}

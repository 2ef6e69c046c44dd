// Package viewport renders a titled, sectioned menu with a scrollable choice
// list onto a term.Surface and interprets navigation keys.
//
// The engine keeps no state between calls: callers pass the ScrollState in
// and receive the updated one back from Show.
package viewport

// Content is the per-call input of a menu frame.
type Content struct {
	Title string
	// Body is drawn as sections separated by one blank row.
	Body [][]string
	// Error, when non-empty, is shown as a transient message for a few
	// frames. Empty lines are dropped.
	Error   []string
	Choices []string
}

// Mode selects how Show interprets keys and whether the caret is shown.
type Mode int

const (
	// ModeList is an interactive list: enter confirms, esc/q/Q cancel.
	ModeList Mode = iota
	// ModeInfo returns on the first key press.
	ModeInfo
	// ModeEdit is ModeList with the caret at the end of the selected choice.
	ModeEdit
)

func (m Mode) String() string {
	switch m {
	case ModeList:
		return "list"
	case ModeInfo:
		return "info"
	case ModeEdit:
		return "edit"
	default:
		return "unknown"
	}
}

// ScrollState is the first visible choice and the selected choice.
type ScrollState struct {
	TopLine  int
	Selected int
}

// Normalize brings s into range for count choices, keeping
// 0 <= TopLine <= Selected < count. A selection above TopLine is moved down
// to TopLine.
func (s ScrollState) Normalize(count int) ScrollState {
	if count <= 0 {
		return ScrollState{}
	}
	if s.TopLine < 0 {
		s.TopLine = 0
	}
	if s.Selected < s.TopLine {
		s.Selected = s.TopLine
	}
	if s.Selected > count-1 {
		s.Selected = count - 1
	}
	if s.TopLine > s.Selected {
		s.TopLine = s.Selected
	}
	return s
}

// Selection is the result of Show.
type Selection struct {
	State ScrollState
	// Cancelled is set when a cancel key ended the menu.
	Cancelled bool
}

package session

import "github.com/interpretive-systems/diffwin/internal/splitpane"

// State is everything that affects what the viewer draws. It is comparable
// so the controller can skip repaints when a key changed nothing.
type State struct {
	// Locked scrolls both panes together.
	Locked bool
	// LeftActive picks the pane that keys drive when not locked.
	LeftActive bool
	Highlight  bool
	// Shift moves the pane boundary away from the centre column.
	Shift int
	Left  splitpane.Offset
	Right splitpane.Offset
}

// Options seed the initial State.
type Options struct {
	Highlight bool
	Locked    bool
	// Gap is the blank half-width around the boundary; 0 means the default.
	Gap int
}

// DefaultOptions match the viewer's startup behaviour: locked, highlighting.
func DefaultOptions() Options {
	return Options{Highlight: true, Locked: true}
}

func initialState(o Options) State {
	home := splitpane.Offset{Row: splitpane.HomeRow}
	return State{
		Locked:     o.Locked,
		LeftActive: true,
		Highlight:  o.Highlight,
		Left:       home,
		Right:      home,
	}
}

// drives reports whether keys move the left (or right) pane.
func (st State) drives(left bool) bool {
	return st.Locked || st.LeftActive == left
}

package splitpane

// DefaultGap is the number of blank columns on each side of the boundary.
const DefaultGap = 2

// HomeRow is the pre-scroll row of a pane: buffer line 0 lands on the first
// row below the labels. Rows never go below it.
const HomeRow = -1

// Offset is the buffer row and column shown at a pane's top-left content
// cell. Screen row i (from 1) shows buffer line Row+i.
type Offset struct {
	Row int
	Col int
}

// Regime says which panes are visible.
type Regime int

const (
	RegimeSplit Regime = iota
	// RegimeLeftOnly: the boundary was pushed past the right edge.
	RegimeLeftOnly
	// RegimeRightOnly: the boundary was pushed past the left edge.
	RegimeRightOnly
)

func (r Regime) String() string {
	switch r {
	case RegimeSplit:
		return "split"
	case RegimeLeftOnly:
		return "left-only"
	case RegimeRightOnly:
		return "right-only"
	default:
		return "unknown"
	}
}

// Layout is the column geometry of one frame.
type Layout struct {
	Height, Width int
	// Middle is the boundary column, width/2 + shift.
	Middle int
	Regime Regime
	// LeftStop is the exclusive buffer column where the left pane ends.
	LeftStop int
	// RightStart is the screen column of the right pane.
	RightStart int
	// RightStop is the exclusive buffer column where the right pane ends.
	RightStop int
}

// ComputeLayout places the boundary for a height x width surface.
func ComputeLayout(height, width, shift, gap int, left, right Offset) Layout {
	l := Layout{Height: height, Width: width, Middle: width/2 + shift}
	switch {
	case l.Middle >= width-gap:
		l.Regime = RegimeLeftOnly
		l.RightStart = width
		l.LeftStop = width + left.Col
	case l.Middle <= gap:
		l.Regime = RegimeRightOnly
		l.RightStart = 0
		l.LeftStop = left.Col
	default:
		l.Regime = RegimeSplit
		l.RightStart = l.Middle + gap
		l.LeftStop = l.Middle - gap + left.Col
	}
	l.RightStop = width - l.RightStart + right.Col
	return l
}

// LeftVisible reports whether the left pane has any columns.
func (l Layout) LeftVisible(left Offset) bool { return l.LeftStop > left.Col }

// RightVisible reports whether the right pane has any columns.
func (l Layout) RightVisible(right Offset) bool { return l.RightStop > right.Col }

// Package session runs the dual-pane viewer: it turns keys into state
// changes and repaints through the split-pane renderer.
package session

import (
	"log"
	"strings"
	"unicode"

	"github.com/interpretive-systems/diffwin/internal/ansi"
	"github.com/interpretive-systems/diffwin/internal/keymap"
	"github.com/interpretive-systems/diffwin/internal/splitpane"
	"github.com/interpretive-systems/diffwin/internal/term"
)

// Session owns two prepared buffers and the viewer state.
type Session struct {
	left, right           []string
	leftWidth, rightWidth int

	keys     keymap.Map
	renderer splitpane.Renderer
	gap      int

	state State
	// size of the last painted frame
	height, width int
}

// New prepares both buffers and returns a session at the home position.
func New(left, right []string, o Options) *Session {
	s := &Session{
		left:     Prepare(left),
		right:    Prepare(right),
		keys:     keymap.Diff(),
		renderer: splitpane.Renderer{Gap: o.Gap},
		gap:      o.Gap,
		state:    initialState(o),
	}
	if s.gap <= 0 {
		s.gap = splitpane.DefaultGap
	}
	s.leftWidth = ansi.MaxWidth(s.left...)
	s.rightWidth = ansi.MaxWidth(s.right...)
	return s
}

// Prepare drops blank lines, trims trailing whitespace and expands tabs to
// two spaces.
func Prepare(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		line = strings.TrimRightFunc(line, unicode.IsSpace)
		out = append(out, strings.ReplaceAll(line, "\t", "  "))
	}
	return out
}

// State returns the current viewer state.
func (s *Session) State() State { return s.state }

// Run paints the first frame and handles keys until the user quits or the
// surface fails.
func (s *Session) Run(surf term.Surface) error {
	log.Printf("session: start left=%d right=%d lines", len(s.left), len(s.right))
	s.paint(surf)
	for {
		k, err := surf.ReadKey()
		if err != nil {
			log.Printf("session: read key: %v", err)
			return err
		}
		a := s.keys.Lookup(k)
		if a == keymap.ActionQuit {
			log.Printf("session: quit at left=%+v right=%+v", s.state.Left, s.state.Right)
			return nil
		}
		if s.Apply(a) {
			s.paint(surf)
		}
	}
}

func (s *Session) paint(surf term.Surface) {
	st := s.state
	s.height, s.width = s.renderer.Render(surf, s.left, st.Left, s.right, st.Right, st.Highlight, st.Shift)
}

// Apply updates the state for a against the size of the last painted
// frame and reports whether anything changed.
func (s *Session) Apply(a keymap.Action) bool {
	prev := s.state
	st := &s.state
	middle := s.width/2 + st.Shift

	switch a {
	case keymap.ActionToggleLock:
		st.Locked = !st.Locked
	case keymap.ActionToggleSide:
		if !st.Locked {
			st.LeftActive = !st.LeftActive
		}
	case keymap.ActionToggleHighlight:
		st.Highlight = !st.Highlight
	case keymap.ActionShiftRight:
		if middle < s.width-2 {
			st.Shift++
		}
	case keymap.ActionShiftLeft:
		if middle > 2 {
			st.Shift--
		}
	case keymap.ActionResetShift:
		st.Shift = 0
	case keymap.ActionLeft:
		s.each(func(o *splitpane.Offset, _ []string, _ bool) {
			if o.Col > 0 {
				o.Col--
			}
		})
	case keymap.ActionRight:
		s.each(func(o *splitpane.Offset, _ []string, left bool) {
			if s.canScrollRight(o.Col, left, middle) {
				o.Col++
			}
		})
	default:
		s.each(func(o *splitpane.Offset, lines []string, _ bool) {
			o.Row = s.scrollRow(a, o.Row, len(lines))
		})
	}
	return s.state != prev
}

// each calls fn for every pane the keys currently drive.
func (s *Session) each(fn func(o *splitpane.Offset, lines []string, left bool)) {
	if s.state.drives(true) {
		fn(&s.state.Left, s.left, true)
	}
	if s.state.drives(false) {
		fn(&s.state.Right, s.right, false)
	}
}

func (s *Session) canScrollRight(col int, left bool, middle int) bool {
	if left {
		return middle > s.gap && s.leftWidth-col > middle-s.gap
	}
	return middle < s.width && s.rightWidth-col > s.width-middle-s.gap
}

// lastPage is the row at which the final line sits on the bottom row.
func (s *Session) lastPage(n int) int {
	return max(n-s.height+1, splitpane.HomeRow)
}

func (s *Session) scrollRow(a keymap.Action, row, n int) int {
	last := s.lastPage(n)
	step := max(s.height-4, 1)
	switch a {
	case keymap.ActionHome:
		return splitpane.HomeRow
	case keymap.ActionEnd:
		return last
	case keymap.ActionPageUp:
		return max(row-step, splitpane.HomeRow)
	case keymap.ActionPageDown:
		if row < last {
			return min(row+step, last)
		}
	case keymap.ActionUp:
		if row > splitpane.HomeRow {
			return row - 1
		}
	case keymap.ActionDown:
		if row < last {
			return row + 1
		}
	}
	return row
}

// Package splitpane draws two text buffers side by side with a movable
// boundary, optionally marking rows that read the same on both sides.
package splitpane

import (
	"strings"

	"github.com/interpretive-systems/diffwin/internal/ansi"
	"github.com/interpretive-systems/diffwin/internal/term"
)

const endMarker = "END"

// Renderer draws split frames. The zero value uses DefaultGap.
type Renderer struct {
	Gap int
}

func (r Renderer) gap() int {
	if r.Gap <= 0 {
		return DefaultGap
	}
	return r.Gap
}

// Render draws one frame with the default gap.
func Render(s term.Surface, left []string, lo Offset, right []string, ro Offset, highlight bool, shift int) (height, width int) {
	return Renderer{}.Render(s, left, lo, right, ro, highlight, shift)
}

// Render clears s, draws both panes and flushes. It returns the size it
// measured so callers can base page sizes on the frame the user saw.
func (r Renderer) Render(s term.Surface, left []string, lo Offset, right []string, ro Offset, highlight bool, shift int) (height, width int) {
	s.Clear()
	height, width = s.Size()
	l := ComputeLayout(height, width, shift, r.gap(), lo, ro)

	switch l.Regime {
	case RegimeLeftOnly:
		s.WriteAt(0, 1, "left", term.StyleTitle)
	case RegimeRightOnly:
		s.WriteAt(0, width-6, "right", term.StyleTitle)
	default:
		s.WriteAt(0, 1, "left", term.StyleTitle)
		s.WriteAt(0, width-6, "right", term.StyleTitle)
	}

	for i := 1; i < height; i++ {
		li, ri := lo.Row+i, ro.Row+i
		style := term.StylePlain
		if highlight && Matches(left, li, right, ri) {
			style = term.StyleMatch
		}
		if l.LeftVisible(lo) {
			switch {
			case li >= 0 && li < len(left):
				s.WriteAt(i, 0, ansi.Cut(left[li], lo.Col, l.LeftStop), style)
			case li == len(left):
				s.WriteAt(i, 1, endMarker, term.StyleTitle)
			}
		}
		if l.RightVisible(ro) {
			switch {
			case ri >= 0 && ri < len(right):
				s.WriteAt(i, l.RightStart, ansi.Cut(right[ri], ro.Col, l.RightStop), style)
			case ri == len(right):
				s.WriteAt(i, width-4, endMarker, term.StyleTitle)
			}
		}
	}
	s.Show()
	return height, width
}

// Matches reports whether left[li] and right[ri] both exist and are equal
// once surrounding whitespace is trimmed. It compares whatever happens to
// share a screen row; it is not an alignment.
func Matches(left []string, li int, right []string, ri int) bool {
	if li < 0 || ri < 0 || li >= len(left) || ri >= len(right) {
		return false
	}
	return strings.TrimSpace(left[li]) == strings.TrimSpace(right[ri])
}

package session

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interpretive-systems/diffwin/internal/splitpane"
	"github.com/interpretive-systems/diffwin/internal/term"
)

func numbered(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%02d", prefix, i)
	}
	return out
}

func keys(ks ...any) []term.Key {
	out := make([]term.Key, 0, len(ks))
	for _, k := range ks {
		switch v := k.(type) {
		case rune:
			out = append(out, term.Rune(v))
		case term.KeyCode:
			out = append(out, term.Code(v))
		}
	}
	return out
}

func run(t *testing.T, s *Session, height, width int, ks ...any) *term.Memory {
	t.Helper()
	m := term.NewMemory(height, width, keys(append(ks, 'q')...)...)
	require.NoError(t, s.Run(m))
	return m
}

func TestPrepare(t *testing.T) {
	got := Prepare([]string{"a\t b  ", "   ", "", "\tx", "y\r"})
	assert.Equal(t, []string{"a   b", "  x", "y"}, got)
}

func TestRun_InitialFrameAtHome(t *testing.T) {
	s := New([]string{"one"}, []string{"one", "two"}, DefaultOptions())
	m := run(t, s, 5, 20)
	require.Len(t, m.Frames, 1)
	st := s.State()
	assert.True(t, st.Locked)
	assert.True(t, st.LeftActive)
	assert.True(t, st.Highlight)
	assert.Equal(t, splitpane.HomeRow, st.Left.Row)
	assert.Equal(t, splitpane.HomeRow, st.Right.Row)
	assert.Equal(t, "one", strings.TrimSpace(m.Frames[0][1][:8]))
	assert.Equal(t, term.StyleMatch, m.StyleAt(1, 0))
}

func TestRun_LockedScrollClampsEachPane(t *testing.T) {
	s := New(numbered("l", 20), numbered("r", 5), DefaultOptions())
	run(t, s, 10, 40, term.KeyDown)
	assert.Equal(t, 0, s.State().Left.Row)
	assert.Equal(t, splitpane.HomeRow, s.State().Right.Row, "short pane already shows everything")

	s = New(numbered("l", 20), numbered("r", 5), DefaultOptions())
	run(t, s, 10, 40, term.KeyEnd)
	assert.Equal(t, 11, s.State().Left.Row)
	assert.Equal(t, splitpane.HomeRow, s.State().Right.Row)

	s = New(numbered("l", 20), numbered("r", 5), DefaultOptions())
	run(t, s, 10, 40, term.KeyEnd, term.KeyHome)
	assert.Equal(t, splitpane.HomeRow, s.State().Left.Row)
}

func TestRun_EndShowsLastLineAboveMarker(t *testing.T) {
	s := New(numbered("l", 20), numbered("r", 20), DefaultOptions())
	m := run(t, s, 10, 40, term.KeyEnd)
	f := m.LastFrame()
	assert.Equal(t, "l19", f[8][:3])
	assert.Equal(t, " END", f[9][:4])
}

func TestRun_PagingIsClamped(t *testing.T) {
	s := New(numbered("l", 20), numbered("r", 20), DefaultOptions())
	// page step is height-4 = 6
	run(t, s, 10, 40, term.KeyPgDown)
	assert.Equal(t, 5, s.State().Left.Row)

	s = New(numbered("l", 20), numbered("r", 20), DefaultOptions())
	run(t, s, 10, 40, term.KeyPgDown, term.KeyPgDown, term.KeyPgDown)
	assert.Equal(t, 11, s.State().Left.Row)

	s = New(numbered("l", 20), numbered("r", 20), DefaultOptions())
	run(t, s, 10, 40, term.KeyPgDown, term.KeyPgUp, term.KeyPgUp)
	assert.Equal(t, splitpane.HomeRow, s.State().Left.Row)
}

func TestRun_PageStepAtLeastOne(t *testing.T) {
	s := New(numbered("l", 20), numbered("r", 20), DefaultOptions())
	run(t, s, 3, 40, term.KeyPgDown)
	assert.Equal(t, 0, s.State().Left.Row)
}

func TestRun_IndependentScrolling(t *testing.T) {
	s := New(numbered("l", 20), numbered("r", 30), DefaultOptions())
	run(t, s, 10, 40, ' ', term.KeyDown, term.KeyTab, term.KeyDown, term.KeyDown)
	st := s.State()
	assert.False(t, st.Locked)
	assert.False(t, st.LeftActive)
	assert.Equal(t, 0, st.Left.Row)
	assert.Equal(t, 1, st.Right.Row)
}

func TestRun_RepaintsOnlyOnChange(t *testing.T) {
	s := New(numbered("l", 20), numbered("r", 20), DefaultOptions())
	// tab is ignored while locked; up at home and left at column 0 change nothing
	m := run(t, s, 10, 40, term.KeyTab, term.KeyUp, term.KeyLeft, 'x')
	assert.Len(t, m.Frames, 1)

	s = New(numbered("l", 20), numbered("r", 20), DefaultOptions())
	m = run(t, s, 10, 40, 'd', term.KeyDown)
	assert.Len(t, m.Frames, 3)
	assert.False(t, s.State().Highlight)
}

func TestRun_ShiftIsBounded(t *testing.T) {
	var plus, minus []any
	for i := 0; i < 25; i++ {
		plus = append(plus, '+')
		minus = append(minus, '-')
	}
	s := New([]string{"a"}, []string{"b"}, DefaultOptions())
	run(t, s, 10, 40, plus...)
	// refused once middle reaches width-2
	assert.Equal(t, 18, s.State().Shift)

	s = New([]string{"a"}, []string{"b"}, DefaultOptions())
	run(t, s, 10, 40, minus...)
	assert.Equal(t, -18, s.State().Shift)

	s = New([]string{"a"}, []string{"b"}, DefaultOptions())
	run(t, s, 10, 40, append(plus, '=')...)
	assert.Equal(t, 0, s.State().Shift)
}

func TestRun_HorizontalScrollStopsAtContentEnd(t *testing.T) {
	var rights []any
	for i := 0; i < 20; i++ {
		rights = append(rights, term.KeyRight)
	}
	s := New([]string{strings.Repeat("w", 30)}, []string{"short"}, DefaultOptions())
	m := run(t, s, 5, 40, rights...)
	st := s.State()
	// left pane is 18 columns wide at the centre boundary
	assert.Equal(t, 12, st.Left.Col)
	assert.Equal(t, 0, st.Right.Col)
	assert.Equal(t, strings.Repeat("w", 18)+" ", m.LastFrame()[1][:19])

	s = New([]string{strings.Repeat("w", 30)}, []string{"short"}, DefaultOptions())
	run(t, s, 5, 40, term.KeyRight, term.KeyLeft, term.KeyLeft)
	assert.Equal(t, 0, s.State().Left.Col)
}

func TestRun_OptionsSeedState(t *testing.T) {
	s := New([]string{"a"}, []string{"a"}, Options{Highlight: false, Locked: false, Gap: 3})
	m := run(t, s, 4, 20)
	assert.False(t, s.State().Highlight)
	assert.False(t, s.State().Locked)
	assert.Equal(t, term.StylePlain, m.StyleAt(1, 0))
	// right pane starts at middle+gap
	assert.Equal(t, "a"+strings.Repeat(" ", 12)+"a", m.LastFrame()[1])
}

func TestRun_SurfaceErrorIsReturned(t *testing.T) {
	s := New([]string{"a"}, []string{"b"}, DefaultOptions())
	m := term.NewMemory(5, 20)
	assert.ErrorIs(t, s.Run(m), term.ErrClosed)
}

func TestRun_PagingFollowsRepaintedSize(t *testing.T) {
	s := New(numbered("l", 40), numbered("r", 40), DefaultOptions())
	m := term.NewMemory(10, 40, keys(term.KeyEnd, term.KeyLeft, term.KeyPgUp, term.KeyEnd, 'q')...)
	var before []int
	m.BeforeKey = func(m *term.Memory, next term.Key) {
		before = append(before, s.State().Left.Row)
		if next.Code == term.KeyLeft {
			m.Resize(20, 40)
		}
	}
	require.NoError(t, s.Run(m))

	// End on 10 rows: 40-10+1
	assert.Equal(t, 31, before[1])
	// Left changes nothing, so no repaint and PageUp still steps by 10-4
	assert.Equal(t, 25, before[3])
	// PageUp repainted at 20 rows: End is now 40-20+1
	assert.Equal(t, 21, before[4])
	assert.Equal(t, 21, s.State().Left.Row)
	assert.Equal(t, 21, s.State().Right.Row)
	assert.Len(t, m.LastFrame(), 20)
}

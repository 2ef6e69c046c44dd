package viewport

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interpretive-systems/diffwin/internal/keymap"
	"github.com/interpretive-systems/diffwin/internal/term"
)

func items(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("item %02d", i)
	}
	return out
}

func repeat(a keymap.Action, n int, st ScrollState, l Layout, count int) ScrollState {
	for i := 0; i < n; i++ {
		st = Navigate(st, a, l, count)
	}
	return st
}

func TestNavigate_EndToEndScenario(t *testing.T) {
	l := Layout{Height: 5, ListTop: 1}
	st := repeat(keymap.ActionDown, 6, ScrollState{}, l, 10)
	assert.Equal(t, ScrollState{TopLine: 3, Selected: 6}, st)

	st = Navigate(st, keymap.ActionEnd, l, 10)
	assert.Equal(t, ScrollState{TopLine: 6, Selected: 9}, st)
}

func TestNavigate_DownUpRoundTrip(t *testing.T) {
	for _, count := range []int{1, 3, 10, 25} {
		for height := 3; height <= 9; height++ {
			l := Layout{Height: height, ListTop: 1}
			for n := 0; n <= count+2; n++ {
				st := repeat(keymap.ActionDown, n, ScrollState{}, l, count)
				st = repeat(keymap.ActionUp, n, st, l, count)
				require.Equal(t, ScrollState{}, st, "count=%d height=%d n=%d", count, height, n)
			}
		}
	}
}

func TestNavigate_HomeAndEnd(t *testing.T) {
	l := Layout{Height: 8, ListTop: 2}
	st := Navigate(ScrollState{TopLine: 7, Selected: 12}, keymap.ActionHome, l, 20)
	assert.Equal(t, ScrollState{}, st)

	st = Navigate(st, keymap.ActionEnd, l, 20)
	assert.Equal(t, 19, st.Selected)
	// last item sits on the last row
	assert.Equal(t, l.Height-1, l.ListTop+st.Selected-st.TopLine)

	// a list that fits only moves the selection
	st = Navigate(ScrollState{}, keymap.ActionEnd, l, 4)
	assert.Equal(t, ScrollState{TopLine: 0, Selected: 3}, st)
}

func TestNavigate_PagingIsMonotonicAndClamped(t *testing.T) {
	l := Layout{Height: 7, ListTop: 2}
	const count = 23
	st := ScrollState{}
	for i := 0; i < 10; i++ {
		next := Navigate(st, keymap.ActionPageDown, l, count)
		require.GreaterOrEqual(t, next.Selected, st.Selected)
		require.LessOrEqual(t, next.Selected, count-1)
		require.LessOrEqual(t, next.TopLine, next.Selected)
		require.Less(t, l.ListTop+next.Selected-next.TopLine, l.Height)
		st = next
	}
	assert.Equal(t, count-1, st.Selected)
	for i := 0; i < 10; i++ {
		next := Navigate(st, keymap.ActionPageUp, l, count)
		require.LessOrEqual(t, next.Selected, st.Selected)
		require.GreaterOrEqual(t, next.Selected, 0)
		require.LessOrEqual(t, next.TopLine, next.Selected)
		st = next
	}
	assert.Equal(t, ScrollState{}, st)
}

func TestNavigate_PageUpSnapsTopLine(t *testing.T) {
	l := Layout{Height: 10, ListTop: 2}
	st := Navigate(ScrollState{TopLine: 6, Selected: 7}, keymap.ActionPageUp, l, 20)
	assert.Equal(t, ScrollState{TopLine: 3, Selected: 3}, st)
}

func TestNavigate_EmptyList(t *testing.T) {
	l := Layout{Height: 10, ListTop: 2}
	for _, a := range []keymap.Action{keymap.ActionHome, keymap.ActionEnd, keymap.ActionDown, keymap.ActionPageDown, keymap.ActionPageUp} {
		assert.Equal(t, ScrollState{}, Navigate(ScrollState{}, a, l, 0))
	}
}

func TestIndent(t *testing.T) {
	assert.Equal(t, 10, Indent(30, 10))
	assert.Equal(t, 4, Indent(9, 0))
	assert.Equal(t, 0, Indent(10, 10))
	assert.Equal(t, 0, Indent(10, 40))
	assert.Equal(t, 1, Indent(11, 8))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, ScrollState{TopLine: 3, Selected: 3}, ScrollState{TopLine: 3, Selected: 1}.Normalize(10))
	assert.Equal(t, ScrollState{TopLine: 4, Selected: 4}, ScrollState{TopLine: 7, Selected: 9}.Normalize(5))
	assert.Equal(t, ScrollState{}, ScrollState{TopLine: -2, Selected: -1}.Normalize(5))
	assert.Equal(t, ScrollState{}, ScrollState{TopLine: 2, Selected: 2}.Normalize(0))
}

func TestShow_LayoutCentersAndHighlights(t *testing.T) {
	s := term.NewMemory(12, 30, term.Code(term.KeyDown), term.Code(term.KeyEnter))
	c := Content{
		Title:   "Title",
		Body:    [][]string{{"first", "second"}, {"third"}},
		Choices: []string{"alpha", "bravo", "charlie"},
	}
	sel, err := Show(s, c, ScrollState{}, ModeList)
	require.NoError(t, err)
	assert.False(t, sel.Cancelled)
	assert.Equal(t, ScrollState{Selected: 1}, sel.State)

	// widest element is "charlie" (7) -> indent (30-7)/2 = 11
	frame := s.Frames[0]
	assert.Equal(t, strings.Repeat(" ", 11)+"Title", frame[0])
	assert.Equal(t, "", frame[1])
	assert.Equal(t, strings.Repeat(" ", 15)+"first", frame[2])
	assert.Equal(t, strings.Repeat(" ", 15)+"second", frame[3])
	assert.Equal(t, "", frame[4])
	assert.Equal(t, strings.Repeat(" ", 15)+"third", frame[5])
	assert.Equal(t, "", frame[6])
	assert.Equal(t, strings.Repeat(" ", 15)+"alpha", frame[7])

	// second frame: selection moved to bravo
	assert.Equal(t, term.StyleNormal, s.StyleAt(7, 15))
	assert.Equal(t, term.StyleEmphasis, s.StyleAt(8, 15))
	assert.Equal(t, term.StyleTitle, s.StyleAt(0, 11))
}

func TestShow_CancelKeys(t *testing.T) {
	for _, k := range []term.Key{term.Code(term.KeyEsc), term.Rune('q'), term.Rune('Q')} {
		for _, mode := range []Mode{ModeList, ModeInfo, ModeEdit} {
			s := term.NewMemory(10, 40, k)
			sel, err := Show(s, Content{Choices: items(3)}, ScrollState{}, mode)
			require.NoError(t, err)
			assert.True(t, sel.Cancelled, "%s in %s", k, mode)
		}
	}
}

func TestShow_InfoModeReturnsOnAnyKey(t *testing.T) {
	s := term.NewMemory(10, 40, term.Code(term.KeyDown))
	sel, err := Show(s, Content{Title: "help", Choices: items(3)}, ScrollState{}, ModeInfo)
	require.NoError(t, err)
	assert.False(t, sel.Cancelled)
	assert.Equal(t, ScrollState{}, sel.State)
	assert.Len(t, s.Frames, 1)
}

func TestShow_EmptyListIgnoresConfirm(t *testing.T) {
	s := term.NewMemory(10, 40, term.Code(term.KeyEnter), term.Code(term.KeyDown), term.Rune('q'))
	sel, err := Show(s, Content{Title: "nothing", Body: [][]string{{"here"}}}, ScrollState{}, ModeList)
	require.NoError(t, err)
	assert.True(t, sel.Cancelled)
	assert.Len(t, s.Frames, 3)
}

func TestShow_SurfaceErrorReturnsState(t *testing.T) {
	s := term.NewMemory(10, 40, term.Code(term.KeyDown))
	sel, err := Show(s, Content{Choices: items(5)}, ScrollState{}, ModeList)
	require.ErrorIs(t, err, term.ErrClosed)
	assert.Equal(t, 1, sel.State.Selected)
}

func TestShow_EditModeCaret(t *testing.T) {
	s := term.NewMemory(10, 40, term.Code(term.KeyEnter))
	c := Content{Choices: []string{"abc", "defgh"}}
	_, err := Show(s, c, ScrollState{Selected: 1}, ModeEdit)
	require.NoError(t, err)

	// maxWidth 5 -> indent (40-5)/2 = 17; caret after "defgh"
	require.Len(t, s.Carets, 1)
	assert.Equal(t, term.Caret{Row: 3, Col: 17 + 4 + 5, Mode: term.CursorBlock}, s.Carets[0])
	assert.Equal(t, term.CursorHidden, s.Cursor().Mode)
}

func TestShow_EditModeCaretOffSurface(t *testing.T) {
	s := term.NewMemory(10, 6, term.Code(term.KeyEnter))
	_, err := Show(s, Content{Choices: []string{"toolongchoice"}}, ScrollState{}, ModeEdit)
	require.NoError(t, err)
	assert.Equal(t, term.CursorHidden, s.Carets[0].Mode)
}

func TestShow_TransientMessageCountdown(t *testing.T) {
	idle := term.Rune('x')
	s := term.NewMemory(10, 20, idle, idle, idle, idle, idle, idle, term.Code(term.KeyEnter))
	c := Content{Title: "T", Error: []string{"boom"}, Choices: items(20)}

	sel, err := Show(s, c, ScrollState{Selected: 5}, ModeList)
	require.NoError(t, err)
	require.Len(t, s.Frames, 7)

	// first display plus five countdown frames show the message
	for i := 0; i < 6; i++ {
		assert.Equal(t, "boom", strings.TrimSpace(s.Frames[i][2]), "frame %d", i)
	}
	assert.NotContains(t, strings.Join(s.Frames[6], "\n"), "boom")

	// while shown, the list started two items further down
	assert.Equal(t, "item 02", strings.TrimSpace(s.Frames[0][4]))
	// afterwards the original top line is back
	assert.Equal(t, "item 00", strings.TrimSpace(s.Frames[6][2]))
	assert.Equal(t, ScrollState{TopLine: 0, Selected: 5}, sel.State)
}

func TestShow_TransientMessageNeverPassesSelection(t *testing.T) {
	s := term.NewMemory(10, 20, term.Code(term.KeyEnter))
	c := Content{Error: []string{"a", "", "b", "c"}, Choices: items(20)}
	sel, err := Show(s, c, ScrollState{Selected: 1}, ModeList)
	require.NoError(t, err)
	assert.Equal(t, ScrollState{TopLine: 1, Selected: 1}, sel.State)
}

func TestShow_MessageWithoutOverflowKeepsTopLine(t *testing.T) {
	s := term.NewMemory(20, 20, term.Code(term.KeyEnter))
	c := Content{Error: []string{"oops"}, Choices: items(3)}
	sel, err := Show(s, c, ScrollState{Selected: 2}, ModeList)
	require.NoError(t, err)
	assert.Equal(t, ScrollState{Selected: 2}, sel.State)
}

func TestShow_ResizeKeepsSelectionVisible(t *testing.T) {
	s := term.NewMemory(20, 30, term.Code(term.KeyEnd), term.Code(term.KeyEnter))
	s.BeforeKey = func(m *term.Memory, next term.Key) {
		if next.Code == term.KeyEnd {
			m.Resize(6, 30)
		}
	}
	sel, err := Show(s, Content{Choices: items(30)}, ScrollState{}, ModeList)
	require.NoError(t, err)
	// 6 rows with the list starting at row 2 leaves 4 visible rows
	assert.Equal(t, ScrollState{TopLine: 26, Selected: 29}, sel.State)
	assert.Equal(t, "item 29", strings.TrimSpace(s.LastFrame()[5]))
}

func TestErrorLines(t *testing.T) {
	err := fmt.Errorf("open /root/x: %w", errors.New("permission denied"))
	assert.Equal(t, []string{"open /root/x", "permission denied"}, ErrorLines(err))
	assert.Nil(t, ErrorLines(nil))
	// a leaf error keeps colons that belong to its text
	assert.Equal(t, []string{`File "a:b.txt" appears empty`}, ErrorLines(errors.New(`File "a:b.txt" appears empty`)))
	assert.Nil(t, NewMessage("", "  "))
}

package viewport

import (
	"github.com/interpretive-systems/diffwin/internal/ansi"
	"github.com/interpretive-systems/diffwin/internal/term"
)

// itemInset is the column offset of body, error and choice rows relative to
// the title.
const itemInset = 4

// Layout is the geometry of one menu frame.
type Layout struct {
	Height, Width int
	// Indent centres the widest element when it is narrower than the
	// surface.
	Indent int
	// ListTop is the first row available to choices.
	ListTop int
}

// Visible is the number of choice rows that fit below ListTop.
func (l Layout) Visible() int {
	if v := l.Height - l.ListTop; v > 0 {
		return v
	}
	return 0
}

// Indent returns the left indent that centres content of maxWidth columns
// on a surface width columns wide.
func Indent(width, maxWidth int) int {
	if maxWidth < width {
		return (width - maxWidth) / 2
	}
	return 0
}

func maxWidth(c Content, msg *TransientMessage) int {
	w := ansi.Width(c.Title)
	for _, section := range c.Body {
		if n := ansi.MaxWidth(section...); n > w {
			w = n
		}
	}
	if msg != nil {
		if n := ansi.MaxWidth(msg.Lines...); n > w {
			w = n
		}
	}
	if n := ansi.MaxWidth(c.Choices...); n > w {
		w = n
	}
	return w
}

// computeLayout walks the rows the way draw fills them: title on row 0, a
// blank row, each body section followed by a blank row, one more blank row,
// then the message lines and a blank separator.
func computeLayout(c Content, msg *TransientMessage, height, width int) Layout {
	l := Layout{Height: height, Width: width, Indent: Indent(width, maxWidth(c, msg))}
	row := 1
	for _, section := range c.Body {
		row += len(section) + 1
	}
	row++
	if msg != nil {
		row += msg.rows()
	}
	l.ListTop = row
	return l
}

// draw paints one frame. It does not flush.
func draw(s term.Surface, c Content, msg *TransientMessage, l Layout, st ScrollState) {
	s.Clear()
	s.WriteAt(0, l.Indent, c.Title, term.StyleTitle)
	col := l.Indent + itemInset
	row := 1
	for _, section := range c.Body {
		for _, line := range section {
			row++
			s.WriteAt(row, col, line, term.StyleNormal)
		}
		row++
	}
	row++
	if msg != nil {
		for _, line := range msg.Lines {
			s.WriteAt(row, col, line, term.StyleError)
			row++
		}
		row++
	}
	for i := st.TopLine; i < len(c.Choices) && row < l.Height; i++ {
		style := term.StyleNormal
		if i == st.Selected {
			style = term.StyleEmphasis
		}
		s.WriteAt(row, col, c.Choices[i], style)
		row++
	}
}

// caret returns where the caret goes for the selected choice, and false
// when that cell is off the surface.
func caret(c Content, l Layout, st ScrollState) (row, col int, ok bool) {
	if len(c.Choices) == 0 {
		return 0, 0, false
	}
	row = l.ListTop + st.Selected - st.TopLine
	col = l.Indent + itemInset + ansi.Width(c.Choices[st.Selected])
	if row < l.ListTop || row >= l.Height || col >= l.Width {
		return 0, 0, false
	}
	return row, col, true
}

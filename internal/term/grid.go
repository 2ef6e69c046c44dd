package term

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cell is one grid position. A zero Rune marks the trailing half of a wide
// character.
type Cell struct {
	Rune  rune
	Style Style
}

type grid struct {
	height, width int
	cells         [][]Cell
}

func newGrid(height, width int) grid {
	g := grid{}
	g.resize(height, width)
	return g
}

func (g *grid) resize(height, width int) {
	if height < 0 {
		height = 0
	}
	if width < 0 {
		width = 0
	}
	g.height, g.width = height, width
	g.cells = make([][]Cell, height)
	for i := range g.cells {
		g.cells[i] = make([]Cell, width)
	}
	g.clear()
}

func (g *grid) clear() {
	for _, row := range g.cells {
		for i := range row {
			row[i] = Cell{Rune: ' ', Style: StylePlain}
		}
	}
}

func (g *grid) write(row, col int, text string, style Style) {
	if row < 0 || row >= g.height {
		return
	}
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > g.width {
			return
		}
		if col >= 0 {
			g.cells[row][col] = Cell{Rune: r, Style: style}
			for i := 1; i < w; i++ {
				g.cells[row][col+i] = Cell{Style: style}
			}
		}
		col += w
	}
}

func (g *grid) line(row int) string {
	if row < 0 || row >= g.height {
		return ""
	}
	var b strings.Builder
	for _, c := range g.cells[row] {
		if c.Rune != 0 {
			b.WriteRune(c.Rune)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func (g *grid) at(row, col int) Cell {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return Cell{}
	}
	return g.cells[row][col]
}

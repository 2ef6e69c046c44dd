package ansi

import "github.com/charmbracelet/x/ansi"

// SliceHorizontal returns the part of s between visual columns start and
// start+width. Escape sequences are preserved.
func SliceHorizontal(s string, start, width int) string {
	if width <= 0 {
		return ""
	}
	if start <= 0 {
		return ansi.Truncate(s, width, "")
	}
	head := ansi.Truncate(s, start+width, "")
	return ansi.TruncateLeft(head, start, "")
}

// Cut returns the columns [start, stop) of s.
func Cut(s string, start, stop int) string {
	if start < 0 {
		start = 0
	}
	return SliceHorizontal(s, start, stop-start)
}

// MaxWidth returns the widest visual width among lines.
func MaxWidth(lines ...string) int {
	m := 0
	for _, l := range lines {
		if w := Width(l); w > m {
			m = w
		}
	}
	return m
}

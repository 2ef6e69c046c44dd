// Package ansi measures and slices terminal strings by visual column.
package ansi

import "github.com/charmbracelet/x/ansi"

// Width returns the number of terminal cells s occupies, excluding escape
// sequences and counting wide characters as two.
func Width(s string) int {
	return ansi.StringWidth(s)
}

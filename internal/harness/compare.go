package harness

import (
	"strings"
	"unicode"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Normalize splits text into lines, trims trailing whitespace and drops
// blank lines.
func Normalize(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, strings.TrimRightFunc(line, unicode.IsSpace))
	}
	return out
}

// Match reports whether actual and expected are the same lines.
func Match(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}
	for i := range actual {
		if actual[i] != expected[i] {
			return false
		}
	}
	return true
}

// LineDiff renders a line diff of actual against expected, one line per
// entry prefixed with "- ", "+ " or two spaces.
func LineDiff(actual, expected []string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(join(actual), join(expected))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	sb.WriteString("--- actual\n+++ expect\n")
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
		}
	}
	return sb.String()
}

func join(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// Package diffview turns unified diffs into side-by-side rows and pane
// buffers for the split viewer.
package diffview

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"
)

// RowKind represents the semantic type of a side-by-side row.
type RowKind int

const (
	RowContext RowKind = iota
	RowAdd
	RowDel
	RowReplace
	RowHunk
	RowMeta
)

// Row represents a single visual row for side-by-side rendering.
type Row struct {
	Left  string
	Right string
	Kind  RowKind
	Meta  string // header text of RowHunk and RowMeta rows
}

var metaPrefixes = []string{
	"diff --git ", "index ", "--- ", "+++ ",
	"new file mode", "deleted file mode", "old mode", "new mode",
	"similarity index", "rename from", "rename to", "Binary files ",
}

func isMeta(line string) bool {
	for _, p := range metaPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

var hunkHeader = regexp.MustCompile(`^@@ -\d+(?:,(\d+))? \+\d+(?:,(\d+))? @@`)

// hunkSize returns the old and new line counts of a hunk header. A header
// that does not parse yields -1 counts, i.e. the hunk runs until the next
// header.
func hunkSize(line string) (old, new int) {
	m := hunkHeader.FindStringSubmatch(line)
	if m == nil {
		return -1, -1
	}
	count := func(s string) int {
		if s == "" {
			return 1
		}
		n, _ := strconv.Atoi(s)
		return n
	}
	return count(m[1]), count(m[2])
}

// rowBuilder pairs deletions with the additions that follow them.
type rowBuilder struct {
	rows    []Row
	pending []string
	// lines still expected in the current hunk on each side
	oldLeft, newLeft int
}

func (b *rowBuilder) inHunk() bool {
	return b.oldLeft != 0 || b.newLeft != 0
}

func (b *rowBuilder) flush() {
	for _, dl := range b.pending {
		b.rows = append(b.rows, Row{Left: dl, Kind: RowDel})
	}
	b.pending = b.pending[:0]
}

func (b *rowBuilder) header(kind RowKind, line string) {
	b.flush()
	b.rows = append(b.rows, Row{Kind: kind, Meta: line})
}

func (b *rowBuilder) line(line string) {
	if line == "" {
		b.oldLeft--
		b.newLeft--
		b.flush()
		b.rows = append(b.rows, Row{Kind: RowContext})
		return
	}
	text := line[1:]
	switch line[0] {
	case ' ':
		b.oldLeft--
		b.newLeft--
		b.flush()
		b.rows = append(b.rows, Row{Left: text, Right: text, Kind: RowContext})
	case '-':
		b.oldLeft--
		b.pending = append(b.pending, text)
	case '+':
		b.newLeft--
		if len(b.pending) == 0 {
			b.rows = append(b.rows, Row{Right: text, Kind: RowAdd})
			return
		}
		dl := b.pending[0]
		b.pending = b.pending[1:]
		b.rows = append(b.rows, Row{Left: dl, Right: text, Kind: RowReplace})
	case '\\':
		// "\ No newline at end of file" belongs to no side
		b.header(RowMeta, line)
	}
}

// BuildRowsFromUnified parses a unified diff string into side-by-side rows.
// Within a hunk each deletion is paired with the next addition as a
// replacement; unpaired lines become left-only or right-only rows. Lines
// before the first hunk header that are not file headers are skipped.
func BuildRowsFromUnified(unified string) []Row {
	s := bufio.NewScanner(strings.NewReader(unified))
	s.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	b := &rowBuilder{rows: make([]Row, 0, 256)}
	for s.Scan() {
		line := s.Text()
		switch {
		case b.inHunk() && !strings.HasPrefix(line, "@@ ") && !strings.HasPrefix(line, "diff --git "):
			b.line(line)
		case strings.HasPrefix(line, "@@ "):
			b.header(RowHunk, line)
			b.oldLeft, b.newLeft = hunkSize(line)
		case isMeta(line):
			b.header(RowMeta, line)
			b.oldLeft, b.newLeft = 0, 0
		case strings.HasPrefix(line, `\`):
			b.header(RowMeta, line)
		}
	}
	b.flush()
	return b.rows
}

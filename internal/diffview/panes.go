package diffview

// Filler stands in for the missing side of an added or deleted row. The
// viewer drops blank lines, so each side needs visible text to stay aligned.
const Filler = "~"

// Panes renders rows into two equally long line buffers. Changed lines
// carry a "-" or "+" marker, context lines two spaces, and hunk and file
// headers appear on both sides.
func Panes(rows []Row) (left, right []string) {
	left = make([]string, 0, len(rows))
	right = make([]string, 0, len(rows))
	for _, r := range rows {
		var l, rt string
		switch r.Kind {
		case RowMeta, RowHunk:
			l, rt = r.Meta, r.Meta
		case RowContext:
			l, rt = "  "+r.Left, "  "+r.Right
		case RowReplace:
			l, rt = "- "+r.Left, "+ "+r.Right
		case RowDel:
			l, rt = "- "+r.Left, Filler
		case RowAdd:
			l, rt = Filler, "+ "+r.Right
		}
		left = append(left, l)
		right = append(right, rt)
	}
	return left, right
}

// SplitUnified parses a unified diff and returns its pane buffers.
func SplitUnified(unified string) (left, right []string) {
	return Panes(BuildRowsFromUnified(unified))
}

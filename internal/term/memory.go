package term

// Memory is an in-process Terminal backed by a cell grid and a scripted key
// queue. ReadKey returns ErrClosed once the script is exhausted.
type Memory struct {
	g    grid
	keys []Key

	cursorRow, cursorCol int
	cursor               CursorMode

	// Frames holds the text of every shown frame, oldest first.
	Frames [][]string
	// Carets records the caret after every shown frame.
	Carets []Caret
	// BeforeKey, when set, runs before each scripted key is returned.
	BeforeKey func(m *Memory, next Key)

	Acquired bool
	Releases int
}

// Caret is a cursor position and mode captured at Show.
type Caret struct {
	Row, Col int
	Mode     CursorMode
}

// NewMemory returns a height x width surface that replays keys.
func NewMemory(height, width int, keys ...Key) *Memory {
	return &Memory{g: newGrid(height, width), keys: keys}
}

// Push appends keys to the script.
func (m *Memory) Push(keys ...Key) {
	m.keys = append(m.keys, keys...)
}

// Resize changes the surface size and blanks it.
func (m *Memory) Resize(height, width int) {
	m.g.resize(height, width)
}

func (m *Memory) Acquire() error {
	m.Acquired = true
	return nil
}

func (m *Memory) Release() error {
	if m.Acquired {
		m.Releases++
	}
	m.Acquired = false
	return nil
}

func (m *Memory) Size() (int, int) { return m.g.height, m.g.width }

func (m *Memory) Clear() { m.g.clear() }

func (m *Memory) WriteAt(row, col int, text string, style Style) {
	m.g.write(row, col, text, style)
}

func (m *Memory) MoveCursor(row, col int) { m.cursorRow, m.cursorCol = row, col }

func (m *Memory) SetCursor(mode CursorMode) { m.cursor = mode }

func (m *Memory) Show() {
	lines := make([]string, m.g.height)
	for i := range lines {
		lines[i] = m.g.line(i)
	}
	m.Frames = append(m.Frames, lines)
	m.Carets = append(m.Carets, Caret{Row: m.cursorRow, Col: m.cursorCol, Mode: m.cursor})
}

func (m *Memory) ReadKey() (Key, error) {
	if len(m.keys) == 0 {
		return Key{}, ErrClosed
	}
	k := m.keys[0]
	if m.BeforeKey != nil {
		m.BeforeKey(m, k)
	}
	m.keys = m.keys[1:]
	return k, nil
}

// Line returns the current text of row with trailing blanks removed.
func (m *Memory) Line(row int) string { return m.g.line(row) }

// StyleAt returns the style of the cell at row, col.
func (m *Memory) StyleAt(row, col int) Style { return m.g.at(row, col).Style }

// Cursor returns the caret position and mode.
func (m *Memory) Cursor() Caret {
	return Caret{Row: m.cursorRow, Col: m.cursorCol, Mode: m.cursor}
}

// LastFrame returns the most recently shown frame, or nil.
func (m *Memory) LastFrame() []string {
	if len(m.Frames) == 0 {
		return nil
	}
	return m.Frames[len(m.Frames)-1]
}

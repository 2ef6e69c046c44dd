package term

import (
	"log"
	"os"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xterm "github.com/charmbracelet/x/term"
)

// frameMsg carries a fully rendered frame into the bubbletea program.
type frameMsg struct {
	view string
}

type keyEvent struct {
	key       Key
	interrupt bool
}

// teaModel only mirrors frames and forwards input; all state lives in
// Program so the caller can keep its blocking read loop.
type teaModel struct {
	p    *Program
	view string
}

func (m teaModel) Init() tea.Cmd { return nil }

func (m teaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.p.deliver(msg)
	case tea.WindowSizeMsg:
		m.p.setSize(msg.Height, msg.Width)
	case frameMsg:
		m.view = msg.view
	}
	return m, nil
}

func (m teaModel) View() string { return m.view }

// Program is a Terminal that runs a bubbletea program in the background and
// exposes it through the blocking Surface contract.
type Program struct {
	mu     sync.Mutex
	opts   []tea.ProgramOption
	styles map[Style]lipgloss.Style

	prog   *tea.Program
	done   chan struct{}
	events chan keyEvent

	height, width int
	g             grid

	cursorRow, cursorCol int
	cursor               CursorMode
}

// NewProgram returns an unacquired Program. Extra options are passed to
// tea.NewProgram after tea.WithAltScreen.
func NewProgram(theme Theme, opts ...tea.ProgramOption) *Program {
	styles := make(map[Style]lipgloss.Style)
	for s := StyleNormal; s <= StylePlain; s++ {
		styles[s] = theme.LipglossStyle(s)
	}
	return &Program{opts: opts, styles: styles}
}

func (p *Program) Acquire() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.prog != nil {
		return nil
	}
	p.height, p.width = 24, 80
	if w, h, err := xterm.GetSize(os.Stdout.Fd()); err == nil && w > 0 && h > 0 {
		p.height, p.width = h, w
	}
	p.g = newGrid(p.height, p.width)
	p.events = make(chan keyEvent, 64)
	p.done = make(chan struct{})
	p.cursor = CursorHidden

	opts := append([]tea.ProgramOption{tea.WithAltScreen()}, p.opts...)
	prog := tea.NewProgram(teaModel{p: p}, opts...)
	p.prog = prog
	done := p.done
	go func() {
		defer close(done)
		if _, err := prog.Run(); err != nil {
			log.Printf("bubbletea: %v", err)
		}
	}()
	return nil
}

// Release stops the program and waits for it to restore the terminal.
func (p *Program) Release() error {
	p.mu.Lock()
	prog, done := p.prog, p.done
	p.prog = nil
	p.mu.Unlock()

	if prog == nil {
		return nil
	}
	prog.Quit()
	<-done
	return nil
}

func (p *Program) setSize(height, width int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.height, p.width = height, width
}

func (p *Program) deliver(msg tea.KeyMsg) {
	p.mu.Lock()
	events := p.events
	p.mu.Unlock()
	for _, ev := range keysFromTea(msg) {
		select {
		case events <- ev:
		default:
			log.Printf("bubbletea: dropped key %s", ev.key)
		}
	}
}

func (p *Program) Size() (int, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.prog == nil {
		return 0, 0
	}
	return p.height, p.width
}

// syncGrid resizes the back buffer to the last reported size.
func (p *Program) syncGrid() {
	if p.g.height != p.height || p.g.width != p.width {
		p.g.resize(p.height, p.width)
	}
}

func (p *Program) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.syncGrid()
	p.g.clear()
}

func (p *Program) WriteAt(row, col int, text string, style Style) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.syncGrid()
	p.g.write(row, col, text, style)
}

func (p *Program) MoveCursor(row, col int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cursorRow, p.cursorCol = row, col
}

// SetCursor shows the caret as a reverse-video cell; bubbletea keeps the
// hardware cursor hidden.
func (p *Program) SetCursor(mode CursorMode) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cursor = mode
}

func (p *Program) Show() {
	p.mu.Lock()
	prog := p.prog
	view := p.render()
	p.mu.Unlock()
	if prog != nil {
		prog.Send(frameMsg{view: view})
	}
}

func (p *Program) render() string {
	var b strings.Builder
	var run strings.Builder
	runStyle, runCaret := StylePlain, false
	flush := func() {
		if run.Len() == 0 {
			return
		}
		st := p.styles[runStyle]
		if runCaret {
			st = st.Reverse(true)
		}
		b.WriteString(st.Render(run.String()))
		run.Reset()
	}
	for r := 0; r < p.g.height; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c, cell := range p.g.cells[r] {
			if cell.Rune == 0 {
				continue
			}
			caret := p.cursor != CursorHidden && r == p.cursorRow && c == p.cursorCol
			if cell.Style != runStyle || caret != runCaret {
				flush()
				runStyle, runCaret = cell.Style, caret
			}
			run.WriteRune(cell.Rune)
		}
		flush()
	}
	return b.String()
}

func (p *Program) ReadKey() (Key, error) {
	p.mu.Lock()
	events, done := p.events, p.done
	acquired := p.prog != nil
	p.mu.Unlock()
	if !acquired {
		return Key{}, ErrClosed
	}
	select {
	case ev := <-events:
		if ev.interrupt {
			return Key{}, ErrInterrupted
		}
		return ev.key, nil
	case <-done:
		return Key{}, ErrClosed
	}
}

var teaKeys = map[tea.KeyType]KeyCode{
	tea.KeyUp:        KeyUp,
	tea.KeyDown:      KeyDown,
	tea.KeyLeft:      KeyLeft,
	tea.KeyRight:     KeyRight,
	tea.KeyHome:      KeyHome,
	tea.KeyEnd:       KeyEnd,
	tea.KeyPgUp:      KeyPgUp,
	tea.KeyPgDown:    KeyPgDown,
	tea.KeyEnter:     KeyEnter,
	tea.KeyEsc:       KeyEsc,
	tea.KeyTab:       KeyTab,
	tea.KeyBackspace: KeyBackspace,
	tea.KeyDelete:    KeyDelete,
}

func keysFromTea(msg tea.KeyMsg) []keyEvent {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []keyEvent{{interrupt: true}}
	case tea.KeySpace:
		return []keyEvent{{key: Rune(' ')}}
	case tea.KeyRunes:
		out := make([]keyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			out = append(out, keyEvent{key: Rune(r)})
		}
		return out
	}
	if c, ok := teaKeys[msg.Type]; ok {
		return []keyEvent{{key: Code(c)}}
	}
	return []keyEvent{{key: Code(KeyUnknown)}}
}

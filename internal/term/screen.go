package term

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Screen is the tcell-backed Terminal.
type Screen struct {
	mu        sync.Mutex
	newScreen func() (tcell.Screen, error)
	screen    tcell.Screen
	theme     Theme

	cursorRow, cursorCol int
	cursor               CursorMode
}

// NewScreen returns a Screen for the controlling terminal. Nothing is touched
// until Acquire.
func NewScreen(theme Theme) *Screen {
	return &Screen{newScreen: tcell.NewScreen, theme: theme}
}

// NewScreenFrom wraps an existing tcell screen, e.g. a simulation screen.
func NewScreenFrom(s tcell.Screen, theme Theme) *Screen {
	return &Screen{
		newScreen: func() (tcell.Screen, error) { return s, nil },
		theme:     theme,
	}
}

// Acquire enters raw mode on the alternate screen with the cursor hidden.
// Acquiring an acquired Screen is a no-op.
func (s *Screen) Acquire() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.screen != nil {
		return nil
	}
	scr, err := s.newScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := scr.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	scr.HideCursor()
	scr.Clear()
	s.screen = scr
	s.cursor = CursorHidden
	return nil
}

// Release restores the terminal. Safe to call multiple times and without a
// prior Acquire.
func (s *Screen) Release() error {
	s.mu.Lock()
	scr := s.screen
	s.screen = nil
	s.mu.Unlock()

	if scr != nil {
		scr.Fini()
	}
	return nil
}

func (s *Screen) current() tcell.Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen
}

func (s *Screen) Size() (int, int) {
	scr := s.current()
	if scr == nil {
		return 0, 0
	}
	w, h := scr.Size()
	return h, w
}

func (s *Screen) Clear() {
	if scr := s.current(); scr != nil {
		scr.Clear()
	}
}

func (s *Screen) WriteAt(row, col int, text string, style Style) {
	scr := s.current()
	if scr == nil {
		return
	}
	w, h := scr.Size()
	if row < 0 || row >= h {
		return
	}
	st := s.theme.TcellStyle(style)
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if col+rw > w {
			return
		}
		if col >= 0 {
			scr.SetContent(col, row, r, nil, st)
		}
		col += rw
	}
}

func (s *Screen) MoveCursor(row, col int) {
	s.mu.Lock()
	s.cursorRow, s.cursorCol = row, col
	s.mu.Unlock()
	s.applyCursor()
}

func (s *Screen) SetCursor(mode CursorMode) {
	s.mu.Lock()
	s.cursor = mode
	s.mu.Unlock()
	s.applyCursor()
}

func (s *Screen) applyCursor() {
	s.mu.Lock()
	scr, mode, row, col := s.screen, s.cursor, s.cursorRow, s.cursorCol
	s.mu.Unlock()
	if scr == nil {
		return
	}
	switch mode {
	case CursorHidden:
		scr.HideCursor()
		return
	case CursorBlock:
		scr.SetCursorStyle(tcell.CursorStyleSteadyBlock)
	}
	scr.ShowCursor(col, row)
}

func (s *Screen) Show() {
	if scr := s.current(); scr != nil {
		scr.Show()
	}
}

// ReadKey blocks on the tcell event queue. Resize events only resynchronise
// the screen; the next frame picks up the new size.
func (s *Screen) ReadKey() (Key, error) {
	scr := s.current()
	if scr == nil {
		return Key{}, ErrClosed
	}
	for {
		switch ev := scr.PollEvent().(type) {
		case nil:
			return Key{}, ErrClosed
		case *tcell.EventResize:
			scr.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				return Key{}, ErrInterrupted
			}
			if k, ok := keyFromTcell(ev); ok {
				return k, nil
			}
		}
	}
}

var tcellKeys = map[tcell.Key]KeyCode{
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPgUp,
	tcell.KeyPgDn:       KeyPgDown,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyEscape:     KeyEsc,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
}

func keyFromTcell(ev *tcell.EventKey) (Key, bool) {
	if ev.Key() == tcell.KeyRune {
		return Rune(ev.Rune()), true
	}
	if c, ok := tcellKeys[ev.Key()]; ok {
		return Code(c), true
	}
	return Code(KeyUnknown), true
}

// Package term defines the rendering surface the viewport engine and the
// split-pane renderer draw into, plus its backends.
//
// A Surface is deliberately curses-shaped: size is queried on demand, text is
// written at absolute cells, and input is a single blocking key read. The
// tcell backend (Screen) is the default; Program bridges the same contract
// onto a bubbletea program; Memory is an in-process grid used by tests.
package term

import "errors"

var (
	// ErrClosed is returned by ReadKey when the surface was released or its
	// input source is exhausted.
	ErrClosed = errors.New("term: surface closed")

	// ErrInterrupted is returned by ReadKey when the user pressed ctrl+c.
	ErrInterrupted = errors.New("term: interrupted")
)

// Style names a semantic text style. Backends map it to colours through a
// Theme.
type Style int

const (
	StyleNormal   Style = iota // menu items
	StyleEmphasis              // selected menu item
	StyleTitle                 // titles, pane labels, END markers
	StyleMatch                 // rows equal on both panes
	StyleError                 // transient messages
	StylePlain                 // unhighlighted pane text
)

func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "normal"
	case StyleEmphasis:
		return "emphasis"
	case StyleTitle:
		return "title"
	case StyleMatch:
		return "match"
	case StyleError:
		return "error"
	case StylePlain:
		return "plain"
	default:
		return "unknown"
	}
}

// CursorMode controls caret visibility and shape.
type CursorMode int

const (
	CursorHidden CursorMode = iota
	CursorBlock
)

// Surface is a rectangular grid of cells with blocking key input.
type Surface interface {
	// Size reports the current height and width. It may change between
	// calls and must not be cached across frames.
	Size() (height, width int)
	Clear()
	// WriteAt draws text starting at row, col. Text extending past the right
	// edge is clipped; rows outside the surface are ignored.
	WriteAt(row, col int, text string, style Style)
	MoveCursor(row, col int)
	SetCursor(mode CursorMode)
	// Show flushes the frame to the output device.
	Show()
	// ReadKey blocks until the next key press.
	ReadKey() (Key, error)
}

// Terminal is a Surface with an exclusive acquire/release lifecycle.
// Release is idempotent and safe to call without a prior Acquire.
type Terminal interface {
	Surface
	Acquire() error
	Release() error
}

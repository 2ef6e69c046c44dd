// Package tui ties the terminal, the menu engine, the file picker and the
// diff viewer together behind a Window that owns the terminal.
package tui

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/interpretive-systems/diffwin/internal/session"
	"github.com/interpretive-systems/diffwin/internal/term"
)

// ErrNotAcquired is returned when a Window without AutoAcquire is used
// before Open.
var ErrNotAcquired = errors.New("tui: terminal not acquired")

// Window owns a terminal between Open and Close.
type Window struct {
	mu       sync.Mutex
	term     term.Terminal
	acquired bool

	autoAcquire bool
	opts        session.Options
	dir         string
}

// Option configures a Window.
type Option func(*Window)

// WithAutoAcquire makes the first drawing call open the terminal.
func WithAutoAcquire() Option {
	return func(w *Window) { w.autoAcquire = true }
}

// WithSessionOptions sets the viewer defaults.
func WithSessionOptions(o session.Options) Option {
	return func(w *Window) { w.opts = o }
}

// WithStartDir sets where the file picker starts browsing.
func WithStartDir(dir string) Option {
	return func(w *Window) { w.dir = dir }
}

// New returns a closed Window over t.
func New(t term.Terminal, opts ...Option) *Window {
	w := &Window{term: t, opts: session.DefaultOptions(), dir: "."}
	for _, o := range opts {
		o(w)
	}
	return w
}

// Open acquires the terminal. Opening an open Window does nothing.
func (w *Window) Open() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.acquired {
		return nil
	}
	if err := w.term.Acquire(); err != nil {
		return fmt.Errorf("acquire terminal: %w", err)
	}
	w.acquired = true
	log.Printf("tui: terminal acquired")
	return nil
}

// Close restores the terminal. It may be called any number of times, with
// or without a prior Open, and from another goroutine to abort a blocked
// key read.
func (w *Window) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.acquired {
		return nil
	}
	w.acquired = false
	log.Printf("tui: terminal released")
	if err := w.term.Release(); err != nil {
		return fmt.Errorf("release terminal: %w", err)
	}
	return nil
}

// Run opens the Window, calls fn and closes the Window on every path. A
// panic in fn is re-raised after the terminal has been restored.
func (w *Window) Run(fn func(*Window) error) (err error) {
	if err := w.Open(); err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			_ = w.Close()
			panic(r)
		}
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(w)
}

func (w *Window) surface() (term.Surface, error) {
	w.mu.Lock()
	acquired := w.acquired
	w.mu.Unlock()
	if acquired {
		return w.term, nil
	}
	if !w.autoAcquire {
		return nil, ErrNotAcquired
	}
	if err := w.Open(); err != nil {
		return nil, err
	}
	return w.term, nil
}

// ShowDiff runs the dual-pane viewer over left and right until the user
// quits it.
func (w *Window) ShowDiff(left, right []string) error {
	s, err := w.surface()
	if err != nil {
		return err
	}
	return session.New(left, right, w.opts).Run(s)
}

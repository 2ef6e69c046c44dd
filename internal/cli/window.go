package cli

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/interpretive-systems/diffwin/internal/config"
	"github.com/interpretive-systems/diffwin/internal/term"
	"github.com/interpretive-systems/diffwin/internal/tui"
)

func (a *app) terminal() term.Terminal {
	if a.cfg.Backend == config.BackendTea {
		var opts []tea.ProgramOption
		if a.ttyInput {
			opts = append(opts, tea.WithInputTTY())
		}
		return term.NewProgram(a.cfg.Colors, opts...)
	}
	return term.NewScreen(a.cfg.Colors)
}

// runWindow is openWindow for commands that end once the window closes:
// an interrupt is not an error.
func (a *app) runWindow(ctx context.Context, fn func(*tui.Window) error, opts ...tui.Option) error {
	err := a.openWindow(ctx, fn, opts...)
	if errors.Is(err, term.ErrInterrupted) {
		log.Printf("cli: interrupted: %v", err)
		return nil
	}
	return err
}

// openWindow opens a Window for fn and closes it on return or when the
// process is signalled. Both ctrl+c and a signal report term.ErrInterrupted.
func (a *app) openWindow(ctx context.Context, fn func(*tui.Window) error, opts ...tui.Option) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}
	opts = append([]tui.Option{tui.WithSessionOptions(cfg.SessionOptions())}, opts...)
	w := tui.New(a.newTerminal(a), opts...)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()
	go func() {
		<-ctx.Done()
		_ = w.Close()
	}()

	err = w.Run(fn)
	if errors.Is(err, term.ErrClosed) && ctx.Err() != nil {
		return term.ErrInterrupted
	}
	return err
}

func (a *app) menu(ctx context.Context) error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	return a.runWindow(ctx, (*tui.Window).MainMenu, tui.WithStartDir(dir))
}

func (a *app) show(ctx context.Context, left, right []string) error {
	return a.runWindow(ctx, func(w *tui.Window) error {
		return w.ShowDiff(left, right)
	})
}

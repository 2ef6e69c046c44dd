// Package cli wires the diffwin commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/interpretive-systems/diffwin/internal/config"
	"github.com/interpretive-systems/diffwin/internal/term"
)

// app carries the global flags and the loaded config across commands.
type app struct {
	configPath string
	debug      bool
	backend    string

	cfg     *config.Config
	logFile *os.File
	// ttyInput is set when stdin carries data, so the tea backend must read
	// keys from the controlling terminal instead.
	ttyInput bool

	newTerminal func(a *app) term.Terminal
	logDir      string
}

func newApp() *app {
	return &app{newTerminal: (*app).terminal, logDir: config.StateDir()}
}

func Execute() error {
	a := newApp()
	root := newRootCmd(a)
	err := root.ExecuteContext(context.Background())
	restoreLogging(a.logFile)
	if err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	return nil
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "diffwin [LEFT RIGHT]",
		Short: "Compare two text files side by side in the terminal",
		Long: "diffwin: view two text files in scrollable side-by-side panes.\n" +
			"Without arguments a menu lets you pick both files.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("expected LEFT and RIGHT files or no arguments, got %d argument(s)", len(args))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.logFile = setupLogging(a.debug, a.logDir)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				return a.viewFiles(cmd.Context(), args[0], args[1])
			}
			return a.menu(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config file (default: $XDG_CONFIG_HOME/diffwin/config.toml)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Write a debug log under $XDG_STATE_HOME/diffwin")
	root.PersistentFlags().StringVar(&a.backend, "backend", "", "Terminal backend: tcell or tea (overrides config)")

	root.AddCommand(newViewCmd(a))
	root.AddCommand(newRevCmd(a))
	root.AddCommand(newPatchCmd(a))
	root.AddCommand(newTestCmd(a))
	root.AddCommand(newKeysCmd())
	root.AddCommand(newConfigCmd(a))
	return root
}

// config loads the configuration once and applies flag overrides.
func (a *app) config() (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, err
	}
	if a.backend != "" {
		cfg.Backend = a.backend
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("--backend: %w", err)
		}
	}
	a.cfg = cfg
	return cfg, nil
}

func readAll(r io.Reader, name string) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return string(b), nil
}

// Package config loads diffwin settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/interpretive-systems/diffwin/internal/session"
	"github.com/interpretive-systems/diffwin/internal/term"
)

const appName = "diffwin"

// Backend names.
const (
	BackendTcell = "tcell"
	BackendTea   = "tea"
)

// View holds the viewer defaults.
type View struct {
	Highlight bool `toml:"highlight"`
	Locked    bool `toml:"locked"`
	Gap       int  `toml:"gap"`
}

// Config is the decoded configuration file.
type Config struct {
	Backend string     `toml:"backend"`
	Theme   string     `toml:"theme"`
	View    View       `toml:"view"`
	Colors  term.Theme `toml:"colors"`

	// Source is the file the config was read from, empty for defaults.
	Source string `toml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Backend: BackendTcell,
		Theme:   "dark",
		View:    View{Highlight: true, Locked: true, Gap: 2},
		Colors:  term.DefaultTheme(),
	}
}

func configHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// StateDir is where the debug log goes.
func StateDir() string {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, appName)
}

// DefaultPath is the config file used when none is given.
func DefaultPath() string {
	return filepath.Join(configHome(), appName, "config.toml")
}

// Load reads the config from explicit, or from DefaultPath when explicit is
// empty. A missing explicit file is an error; a missing default file
// yields Default().
func Load(explicit string) (*Config, error) {
	path := explicit
	if path == "" {
		path = DefaultPath()
	}
	cfg := Default()
	cfg.Colors = term.Theme{}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if explicit == "" && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		log.Printf("config: %s: ignoring unknown keys %s", path, strings.Join(names, ", "))
	}
	cfg.Colors = term.GetTheme(cfg.Theme).Merge(cfg.Colors)
	cfg.Source = path
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated and ranged values.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendTcell, BackendTea:
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", c.Backend, BackendTcell, BackendTea)
	}
	if c.View.Gap < 1 {
		return fmt.Errorf("view.gap must be at least 1, got %d", c.View.Gap)
	}
	return nil
}

// SessionOptions returns the viewer defaults.
func (c *Config) SessionOptions() session.Options {
	return session.Options{
		Highlight: c.View.Highlight,
		Locked:    c.View.Locked,
		Gap:       c.View.Gap,
	}
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// WriteDefault writes the default config to path, creating parent
// directories. An existing file is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	if err := Default().Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("write config: %w", err)
	}
	return f.Close()
}

package tui

import (
	"fmt"

	"github.com/interpretive-systems/diffwin/internal/keymap"
	"github.com/interpretive-systems/diffwin/internal/picker"
	"github.com/interpretive-systems/diffwin/internal/term"
	"github.com/interpretive-systems/diffwin/internal/viewport"
)

// Title heads every menu screen.
const Title = "diffwin - compare two text files side by side"

const anyKey = "Press the any key to return to the main menu . . . "

type menuItem int

const (
	itemLeft menuItem = iota
	itemRight
	itemDiff
	itemCommands
	itemQuit
)

var menuLabels = [...]string{
	itemLeft:     "Select the left-hand side file",
	itemRight:    "Select the right-hand side file",
	itemDiff:     "Show the diff between the files",
	itemCommands: "Show available commands for diff view",
	itemQuit:     "Quit",
}

var menuBody = [][]string{
	{"Pick two text files and compare them line by line"},
	{"Choose an option from the menu below:"},
}

func label(item menuItem, f *picker.File) string {
	if f == nil {
		return menuLabels[item]
	}
	return fmt.Sprintf("%s (set to %q)", menuLabels[item], f.Name)
}

func missingFiles(left, right *picker.File) string {
	switch {
	case left == nil && right == nil:
		return "Left- and Right- side files must be selected first!"
	case left == nil:
		return "Left- side file must be selected first!"
	case right == nil:
		return "Right- side file must be selected first!"
	}
	return ""
}

// MainMenu runs the menu-driven interface: pick the two sides, view the
// diff, list the viewer keys, quit.
func (w *Window) MainMenu() error {
	s, err := w.surface()
	if err != nil {
		return err
	}
	var (
		left, right *picker.File
		st          viewport.ScrollState
		errLines    []string
	)
	for {
		c := viewport.Content{
			Title: Title,
			Body:  menuBody,
			Error: errLines,
			Choices: []string{
				label(itemLeft, left),
				label(itemRight, right),
				menuLabels[itemDiff],
				menuLabels[itemCommands],
				menuLabels[itemQuit],
			},
		}
		sel, err := viewport.Show(s, c, st, viewport.ModeList)
		if err != nil {
			return err
		}
		if sel.Cancelled {
			return nil
		}
		st, errLines = sel.State, nil

		switch menuItem(st.Selected) {
		case itemLeft:
			if left, err = picker.Pick(s, Title, w.dir); err != nil {
				return err
			}
		case itemRight:
			if right, err = picker.Pick(s, Title, w.dir); err != nil {
				return err
			}
		case itemDiff:
			if msg := missingFiles(left, right); msg != "" {
				errLines = []string{msg}
				continue
			}
			if err := w.ShowDiff(left.Lines, right.Lines); err != nil {
				return err
			}
		case itemCommands:
			if err := commands(s); err != nil {
				return err
			}
		case itemQuit:
			return nil
		}
	}
}

// Commands shows the viewer key bindings until any key is pressed.
func (w *Window) Commands() error {
	s, err := w.surface()
	if err != nil {
		return err
	}
	return commands(s)
}

func commands(s term.Surface) error {
	c := viewport.Content{
		Title: Title,
		Body: [][]string{
			{"Commands available while the diff view is active:"},
			keymap.Diff().HelpLines(),
		},
		Choices: []string{anyKey},
	}
	_, err := viewport.Show(s, c, viewport.ScrollState{}, viewport.ModeInfo)
	return err
}

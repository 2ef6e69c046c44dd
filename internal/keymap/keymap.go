// Package keymap binds key names to the actions of the menu and the
// dual-pane viewer.
package keymap

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Action represents an action triggered by a key press.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionConfirm
	ActionHome
	ActionEnd
	ActionUp
	ActionDown
	ActionPageUp
	ActionPageDown
	ActionLeft
	ActionRight
	ActionToggleLock
	ActionToggleSide
	ActionToggleHighlight
	ActionShiftRight
	ActionShiftLeft
	ActionResetShift
)

type entry struct {
	binding key.Binding
	action  Action
}

// Map resolves keys to actions. The first matching binding wins.
type Map struct {
	entries []entry
}

func (m *Map) add(a Action, b key.Binding) {
	m.entries = append(m.entries, entry{binding: b, action: a})
}

// Lookup returns the action bound to k, or ActionNone.
func (m Map) Lookup(k fmt.Stringer) Action {
	for _, e := range m.entries {
		if key.Matches(k, e.binding) {
			return e.action
		}
	}
	return ActionNone
}

// Bindings returns the bindings in declaration order.
func (m Map) Bindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e.binding)
	}
	return out
}

// ShortHelp implements help.KeyMap.
func (m Map) ShortHelp() []key.Binding {
	var out []key.Binding
	for _, b := range m.Bindings() {
		if b.Help().Key != "" {
			out = append(out, b)
		}
	}
	return out
}

// FullHelp implements help.KeyMap.
func (m Map) FullHelp() [][]key.Binding {
	return [][]key.Binding{m.ShortHelp()}
}

// HelpLines renders the help entries as "description:  keys" with the
// descriptions right-aligned.
func (m Map) HelpLines() []string {
	bs := m.ShortHelp()
	w := 0
	for _, b := range bs {
		if n := len(b.Help().Desc); n > w {
			w = n
		}
	}
	lines := make([]string, 0, len(bs))
	for _, b := range bs {
		h := b.Help()
		lines = append(lines, strings.Repeat(" ", w-len(h.Desc))+h.Desc+":  "+h.Key)
	}
	return lines
}

func cancelBinding() key.Binding {
	return key.NewBinding(key.WithKeys("esc", "q", "Q"), key.WithHelp("escape, q, Q", "Quit"))
}

func navigation(m *Map) {
	m.add(ActionHome, key.NewBinding(key.WithKeys("home")))
	m.add(ActionEnd, key.NewBinding(key.WithKeys("end")))
	m.add(ActionUp, key.NewBinding(key.WithKeys("up")))
	m.add(ActionDown, key.NewBinding(key.WithKeys("down")))
	m.add(ActionPageUp, key.NewBinding(key.WithKeys("pgup")))
	m.add(ActionPageDown, key.NewBinding(key.WithKeys("pgdown")))
}

// Menu returns the bindings of a scrollable choice list.
func Menu() Map {
	var m Map
	m.add(ActionQuit, cancelBinding())
	m.add(ActionConfirm, key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "Select")))
	navigation(&m)
	return m
}

// Diff returns the bindings of the dual-pane viewer.
func Diff() Map {
	var m Map
	m.add(ActionQuit, cancelBinding())
	m.add(ActionToggleHighlight, key.NewBinding(key.WithKeys("d", "D", "h", "H"), key.WithHelp("d, D, h, H", "Toggle match highlighting")))
	m.add(ActionToggleLock, key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "Toggle left/right pane lock")))
	m.add(ActionToggleSide, key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "Toggle left/right pane scrolling")))
	m.add(ActionShiftRight, key.NewBinding(key.WithKeys("+"), key.WithHelp("+/-", "Move pane separator right/left")))
	m.add(ActionShiftLeft, key.NewBinding(key.WithKeys("-")))
	m.add(ActionResetShift, key.NewBinding(key.WithKeys("="), key.WithHelp("=", "Reset pane separator shift")))
	navigation(&m)
	m.add(ActionLeft, key.NewBinding(key.WithKeys("left")))
	m.add(ActionRight, key.NewBinding(key.WithKeys("right")))
	return m
}

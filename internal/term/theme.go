package term

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
)

// ColorPair is a foreground/background pair plus weight. Colours are names
// ("green"), ANSI palette indexes ("34") or hex ("#5fd700"); empty or
// "default" keeps the terminal colour.
type ColorPair struct {
	FG   string `toml:"fg"`
	BG   string `toml:"bg"`
	Bold bool   `toml:"bold"`
}

// Theme defines customizable colors for every Style.
type Theme struct {
	Normal   ColorPair `toml:"normal"`
	Emphasis ColorPair `toml:"emphasis"`
	Title    ColorPair `toml:"title"`
	Match    ColorPair `toml:"match"`
	Error    ColorPair `toml:"error"`
	Plain    ColorPair `toml:"plain"`
}

func darkTheme() Theme {
	return Theme{
		Normal:   ColorPair{FG: "green"},
		Emphasis: ColorPair{FG: "green", Bold: true},
		Title:    ColorPair{FG: "white", Bold: true},
		Match:    ColorPair{FG: "green", Bold: true},
		Error:    ColorPair{FG: "red", Bold: true},
	}
}

func lightTheme() Theme {
	return Theme{
		Normal:   ColorPair{FG: "22"},
		Emphasis: ColorPair{FG: "22", Bold: true},
		Title:    ColorPair{FG: "black", Bold: true},
		Match:    ColorPair{FG: "22", BG: "194", Bold: true},
		Error:    ColorPair{FG: "124", Bold: true},
	}
}

// GetTheme returns the requested base theme. Unknown names yield the dark
// theme.
func GetTheme(name string) Theme {
	switch name {
	case "light":
		return lightTheme()
	default:
		return darkTheme()
	}
}

// DefaultTheme is the dark theme.
func DefaultTheme() Theme {
	return darkTheme()
}

// Pair returns the colours for s.
func (t Theme) Pair(s Style) ColorPair {
	switch s {
	case StyleNormal:
		return t.Normal
	case StyleEmphasis:
		return t.Emphasis
	case StyleTitle:
		return t.Title
	case StyleMatch:
		return t.Match
	case StyleError:
		return t.Error
	default:
		return t.Plain
	}
}

// TcellStyle converts s into a tcell style.
func (t Theme) TcellStyle(s Style) tcell.Style {
	p := t.Pair(s)
	return tcell.StyleDefault.
		Foreground(tcellColor(p.FG)).
		Background(tcellColor(p.BG)).
		Bold(p.Bold)
}

// LipglossStyle converts s into a lipgloss style.
func (t Theme) LipglossStyle(s Style) lipgloss.Style {
	p := t.Pair(s)
	st := lipgloss.NewStyle().Bold(p.Bold)
	if c, ok := lipglossColor(p.FG); ok {
		st = st.Foreground(c)
	}
	if c, ok := lipglossColor(p.BG); ok {
		st = st.Background(c)
	}
	return st
}

// basic ANSI names shared by both backends
var ansiNames = map[string]int{
	"black":   0,
	"maroon":  1,
	"red":     1,
	"green":   2,
	"olive":   3,
	"yellow":  3,
	"navy":    4,
	"blue":    4,
	"purple":  5,
	"magenta": 5,
	"teal":    6,
	"cyan":    6,
	"silver":  7,
	"white":   7,
	"gray":    8,
	"grey":    8,
}

func tcellColor(name string) tcell.Color {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "default" {
		return tcell.ColorDefault
	}
	if n, err := strconv.Atoi(name); err == nil && n >= 0 && n < 256 {
		return tcell.PaletteColor(n)
	}
	if n, ok := ansiNames[name]; ok {
		return tcell.PaletteColor(n)
	}
	return tcell.GetColor(name)
}

func lipglossColor(name string) (lipgloss.TerminalColor, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "default" {
		return nil, false
	}
	if n, ok := ansiNames[name]; ok {
		return lipgloss.Color(strconv.Itoa(n)), true
	}
	return lipgloss.Color(name), true
}

// Merge returns t with every pair that u sets replaced by u's pair.
func (t Theme) Merge(u Theme) Theme {
	merge := func(dst *ColorPair, src ColorPair) {
		if src != (ColorPair{}) {
			*dst = src
		}
	}
	merge(&t.Normal, u.Normal)
	merge(&t.Emphasis, u.Emphasis)
	merge(&t.Title, u.Title)
	merge(&t.Match, u.Match)
	merge(&t.Error, u.Error)
	merge(&t.Plain, u.Plain)
	return t
}

package term

// KeyCode classifies a key press. Printable characters use KeyRune.
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDown
	KeyEnter
	KeyEsc
	KeyTab
	KeyBackspace
	KeyDelete
	KeyUnknown
)

var keyNames = map[KeyCode]string{
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPgUp:      "pgup",
	KeyPgDown:    "pgdown",
	KeyEnter:     "enter",
	KeyEsc:       "esc",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
}

// Key is a single key press.
type Key struct {
	Code KeyCode
	Rune rune
}

// Rune returns the key for a printable character.
func Rune(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// Code returns the key for a non-printable key code.
func Code(c KeyCode) Key {
	return Key{Code: c}
}

// String names the key the way bindings refer to it: "up", "pgdown",
// "space", "q", ...
func (k Key) String() string {
	if k.Code == KeyRune {
		if k.Rune == ' ' {
			return "space"
		}
		return string(k.Rune)
	}
	if n, ok := keyNames[k.Code]; ok {
		return n
	}
	return "unknown"
}

package editor

import "fmt"

type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyEnter
	KeyEsc
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

func (c KeyCode) String() string {
	switch c {
	case KeyRune:
		return "Rune"
	case KeyEnter:
		return "Enter"
	case KeyEsc:
		return "Esc"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	}
	return "<unknown key>"
}

// Key is one key press.  Rune is set only for KeyRune.
type Key struct {
	Code KeyCode
	Rune rune
}

func Rune(r rune) Key { return Key{Code: KeyRune, Rune: r} }

// Runes returns a key press for each rune of s.
func Runes(s string) []Key {
	var res []Key
	for _, r := range s {
		res = append(res, Rune(r))
	}
	return res
}

func (k Key) String() string {
	if k.Code == KeyRune {
		return fmt.Sprintf("%q", k.Rune)
	}
	return k.Code.String()
}

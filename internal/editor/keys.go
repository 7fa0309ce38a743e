package editor

import "strings"

// Key is one calculator key press.
type Key string

const (
	KeyDecimal    Key = "."
	KeyAdd        Key = "+"
	KeySubtract   Key = "-"
	KeyMultiply   Key = "*"
	KeyDivide     Key = "/"
	KeyOpenParen  Key = "("
	KeyCloseParen Key = ")"
	KeyPercent    Key = "%"
	KeyEquals     Key = "="
	KeyErase      Key = "erase"
	KeyClear      Key = "clear"
)

// Digit returns the key for decimal digit d (0-9).
func Digit(d int) Key { return Key(rune('0' + d)) }

// Valid reports whether k has a transition.
func (k Key) Valid() bool {
	_, ok := transitions[k]
	return ok
}

// KeyFromInput maps keyboard input to a Key. It accepts the key names
// themselves plus the usual keyboard aliases: Enter for "=", Backspace for
// erase, Escape or c for clear and x for multiplication.
func KeyFromInput(s string) (Key, bool) {
	switch strings.ToLower(s) {
	case "enter", "return", "=":
		return KeyEquals, true
	case "backspace", "erase":
		return KeyErase, true
	case "escape", "esc", "clear", "c":
		return KeyClear, true
	case "x", "*":
		return KeyMultiply, true
	}
	k := Key(s)
	if k.Valid() {
		return k, true
	}
	return "", false
}

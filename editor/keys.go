package editor

import "strings"

// Key is a keyboard key, named as DOM KeyboardEvent.key names it.
type Key string

const (
	KeyEnter      Key = "Enter"
	KeySpace      Key = " "
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyEscape     Key = "Escape"
)

// ParseKey accepts DOM key names and terminal key names ("up", "esc",
// "space"). Unknown keys return false.
func ParseKey(s string) (Key, bool) {
	if s == " " {
		return KeySpace, true
	}
	switch strings.ToLower(s) {
	case "enter", "return":
		return KeyEnter, true
	case "space", "spacebar":
		return KeySpace, true
	case "arrowup", "up":
		return KeyArrowUp, true
	case "arrowdown", "down":
		return KeyArrowDown, true
	case "arrowleft", "left":
		return KeyArrowLeft, true
	case "arrowright", "right":
		return KeyArrowRight, true
	case "escape", "esc":
		return KeyEscape, true
	}
	return "", false
}

package input

import "github.com/vovakirdan/term-snake/internal/core"

// MapKey translates a key event to a game action.
// Resize events and unbound keys map to ActionNone.
func MapKey(ev Event) core.Action {
	switch ev.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "w", "up", "k":
		return core.ActionUp
	case "s", "down", "j":
		return core.ActionDown
	case "a", "left", "h":
		return core.ActionLeft
	case "d", "right", "l":
		return core.ActionRight
	case "enter", " ":
		return core.ActionConfirm
	case "esc":
		return core.ActionBack
	case "p":
		return core.ActionPause
	case "r":
		return core.ActionRestart
	}
	return core.ActionNone
}

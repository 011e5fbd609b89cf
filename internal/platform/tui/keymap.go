package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sky-fight/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// GameKey is the meaning of one key press during play.
type GameKey struct {
	Actions         []core.Action // Actions to hold, ActionFocus included for shifted keys
	ToggleAutoFire  bool
	ToggleFocusLock bool
	Pause           bool
	Quit            bool
}

// Empty reports whether the key means nothing during play.
func (k GameKey) Empty() bool {
	return len(k.Actions) == 0 && !k.ToggleAutoFire && !k.ToggleFocusLock && !k.Pause && !k.Quit
}

// MapGameKey translates a key pressed while playing.
func (km *KeyMapper) MapGameKey(msg tea.KeyMsg) GameKey {
	switch msg.String() {
	case "ctrl+c", "q":
		return GameKey{Quit: true}
	case "p", "esc":
		return GameKey{Pause: true}
	case "x":
		return GameKey{ToggleAutoFire: true}
	case "c":
		return GameKey{ToggleFocusLock: true}

	case "left", "a":
		return hold(core.ActionLeft)
	case "right", "d":
		return hold(core.ActionRight)
	case "up", "w":
		return hold(core.ActionUp)
	case "down", "s":
		return hold(core.ActionDown)
	case "z", " ":
		return hold(core.ActionFire)

	// Shifted keys carry the precision modifier
	case "shift+left", "A":
		return hold(core.ActionLeft, core.ActionFocus)
	case "shift+right", "D":
		return hold(core.ActionRight, core.ActionFocus)
	case "shift+up", "W":
		return hold(core.ActionUp, core.ActionFocus)
	case "shift+down", "S":
		return hold(core.ActionDown, core.ActionFocus)
	case "Z":
		return hold(core.ActionFire, core.ActionFocus)
	}
	return GameKey{}
}

func hold(actions ...core.Action) GameKey {
	return GameKey{Actions: actions}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ", "z":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}

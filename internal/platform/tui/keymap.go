package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/road-racer/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// steeringKeys are passed to the game as raw keys so it can track them as held.
var steeringKeys = map[string]core.Key{
	"up":    "up",
	"down":  "down",
	"left":  "left",
	"right": "right",
	"w":     "w",
	"s":     "s",
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "enter":
		return core.ActionConfirm, false
	case "b":
		return core.ActionBack, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame records a key message in an input frame: the action and,
// for steering keys, the raw key.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	if k, ok := steeringKeys[msg.String()]; ok {
		frame.Press(k)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
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
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

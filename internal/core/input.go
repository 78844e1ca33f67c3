package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - steer up
	ActionDown           // S, Down arrow - steer down
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Key is the name of a physical key as reported by the terminal ("up", "w", ...).
type Key string

// InputFrame represents the input collected between two frames.
// Actions carry intent; Keys carry the raw key presses for games that poll a keyboard.
type InputFrame struct {
	Actions map[Action]bool
	Keys    map[Key]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Keys:    make(map[Key]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Press records a raw key press for this frame.
func (f *InputFrame) Press(k Key) {
	if f.Keys == nil {
		f.Keys = make(map[Key]bool)
	}
	f.Keys[k] = true
}

// Pressed returns the keys pressed this frame.
func (f InputFrame) Pressed() []Key {
	keys := make([]Key, 0, len(f.Keys))
	for k := range f.Keys {
		keys = append(keys, k)
	}
	return keys
}

// Clear resets all actions and keys for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Keys {
		delete(f.Keys, k)
	}
}

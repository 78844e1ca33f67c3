package engine

import (
	"time"

	"github.com/vovakirdan/road-racer/internal/core"
)

// KeyCode identifies a key by its terminal name.
type KeyCode = core.Key

// Keys the racer cares about. Any other terminal key name works too.
const (
	KeyUp   KeyCode = "up"
	KeyDown KeyCode = "down"
	KeyW    KeyCode = "w"
	KeyS    KeyCode = "s"
)

// DefaultHoldWindow is how long a key stays held after its last press.
const DefaultHoldWindow = 200 * time.Millisecond

// Keyboard tracks which keys are currently held.
//
// Terminals report key presses but never releases, so a key counts as held
// for a hold window after its most recent press. Auto-repeat keeps refreshing
// the window while the key is physically down.
type Keyboard struct {
	window time.Duration
	held   map[KeyCode]time.Duration // Remaining hold time per key
}

// NewKeyboard creates a keyboard with the given hold window.
func NewKeyboard(window time.Duration) *Keyboard {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &Keyboard{
		window: window,
		held:   make(map[KeyCode]time.Duration),
	}
}

// Press marks keys as held for a full hold window.
func (k *Keyboard) Press(keys ...KeyCode) {
	for _, key := range keys {
		k.held[key] = k.window
	}
}

// Release drops keys immediately.
func (k *Keyboard) Release(keys ...KeyCode) {
	for _, key := range keys {
		delete(k.held, key)
	}
}

// Pressed reports whether a key is held.
func (k *Keyboard) Pressed(key KeyCode) bool {
	_, ok := k.held[key]
	return ok
}

// PressedAny reports whether any of the keys is held.
func (k *Keyboard) PressedAny(keys ...KeyCode) bool {
	for _, key := range keys {
		if k.Pressed(key) {
			return true
		}
	}
	return false
}

// advance ages held keys by dt and releases expired ones.
func (k *Keyboard) advance(dt time.Duration) {
	for key, left := range k.held {
		left -= dt
		if left <= 0 {
			delete(k.held, key)
			continue
		}
		k.held[key] = left
	}
}

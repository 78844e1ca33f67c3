package engine

import (
	"fmt"
	"sort"
	"time"
)

// Engine is the per-frame context handed to logic functions.
type Engine struct {
	Keyboard *Keyboard
	Audio    AudioManager

	sprites   map[string]*Sprite
	texts     map[string]*Text
	detector  *collisionDetector
	events    []CollisionEvent
	delta     time.Duration
	elapsed   time.Duration
	frameNum  uint64
	sorted    []*Sprite
	sortDirty bool
}

func newEngine(audio AudioManager, holdWindow time.Duration) *Engine {
	if audio == nil {
		audio = NopAudio{}
	}
	return &Engine{
		Keyboard: NewKeyboard(holdWindow),
		Audio:    audio,
		sprites:  make(map[string]*Sprite),
		texts:    make(map[string]*Text),
		detector: newCollisionDetector(),
	}
}

// addSprite registers a sprite. Duplicate labels are a programming error.
func (e *Engine) addSprite(label string, kind Kind, preset SpritePreset) *Sprite {
	if _, exists := e.sprites[label]; exists {
		panic(fmt.Sprintf("engine: sprite %q already registered", label))
	}
	s := &Sprite{
		Label:  label,
		Kind:   kind,
		Preset: preset,
		Scale:  1,
	}
	e.sprites[label] = s
	e.sortDirty = true
	return s
}

// addText registers a text label. Duplicate labels are a programming error.
func (e *Engine) addText(label, value string) *Text {
	if _, exists := e.texts[label]; exists {
		panic(fmt.Sprintf("engine: text %q already registered", label))
	}
	t := &Text{Label: label, Value: value}
	e.texts[label] = t
	return t
}

// Sprite returns the sprite with the given label.
// It panics if the label was never registered.
func (e *Engine) Sprite(label string) *Sprite {
	s, ok := e.sprites[label]
	if !ok {
		panic(fmt.Sprintf("engine: sprite %q not registered", label))
	}
	return s
}

// Text returns the text with the given label.
// It panics if the label was never registered.
func (e *Engine) Text(label string) *Text {
	t, ok := e.texts[label]
	if !ok {
		panic(fmt.Sprintf("engine: text %q not registered", label))
	}
	return t
}

// Sprites returns all sprites ordered by label. The slice is shared; callers
// may mutate the sprites but must not keep the slice across frames.
func (e *Engine) Sprites() []*Sprite {
	if e.sortDirty {
		e.sorted = e.sorted[:0]
		for _, s := range e.sprites {
			e.sorted = append(e.sorted, s)
		}
		sort.Slice(e.sorted, func(i, j int) bool {
			return e.sorted[i].Label < e.sorted[j].Label
		})
		e.sortDirty = false
	}
	return e.sorted
}

// Texts returns all texts ordered by label.
func (e *Engine) Texts() []*Text {
	out := make([]*Text, 0, len(e.texts))
	for _, t := range e.texts {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// Delta returns the time elapsed since the previous frame.
func (e *Engine) Delta() time.Duration {
	return e.delta
}

// DeltaSeconds returns Delta in seconds.
func (e *Engine) DeltaSeconds() float64 {
	return e.delta.Seconds()
}

// Elapsed returns the total simulated time since Run.
func (e *Engine) Elapsed() time.Duration {
	return e.elapsed
}

// FrameCount returns how many frames have completed.
func (e *Engine) FrameCount() uint64 {
	return e.frameNum
}

// EmitCollision queues a collision event for the current frame.
func (e *Engine) EmitCollision(ev CollisionEvent) {
	e.events = append(e.events, ev)
}

// PendingCollisions returns the number of queued collision events.
func (e *Engine) PendingCollisions() int {
	return len(e.events)
}

// DrainCollisionEvents removes and returns all queued collision events in
// arrival order.
func (e *Engine) DrainCollisionEvents() []CollisionEvent {
	events := e.events
	e.events = nil
	return events
}

package engine

import (
	"time"

	"github.com/vovakirdan/road-racer/internal/core"
)

// LogicFunc is called once per frame with exclusive access to the game state.
type LogicFunc[S any] func(e *Engine, state *S)

// Option configures a Game.
type Option func(*options)

type options struct {
	audio      AudioManager
	holdWindow time.Duration
	maxDelta   time.Duration
}

// WithAudio sets the audio manager. Defaults to NopAudio.
func WithAudio(a AudioManager) Option {
	return func(o *options) { o.audio = a }
}

// WithHoldWindow sets how long a pressed key stays held.
func WithHoldWindow(d time.Duration) Option {
	return func(o *options) { o.holdWindow = d }
}

// WithMaxDelta caps the frame delta so a stalled terminal does not teleport sprites.
// Zero disables the cap.
func WithMaxDelta(d time.Duration) Option {
	return func(o *options) { o.maxDelta = d }
}

// Game owns the engine, the registered logic and the game state S.
type Game[S any] struct {
	engine   *Engine
	logic    []LogicFunc[S]
	state    S
	running  bool
	maxDelta time.Duration
}

// NewGame creates an empty game.
func NewGame[S any](opts ...Option) *Game[S] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return &Game[S]{
		engine:   newEngine(o.audio, o.holdWindow),
		maxDelta: o.maxDelta,
	}
}

// Engine exposes the engine for setup code and rendering.
func (g *Game[S]) Engine() *Engine {
	return g.engine
}

// AddSprite registers a sprite with scale 1 at the origin.
// It panics if the label is already taken.
func (g *Game[S]) AddSprite(label string, kind Kind, preset SpritePreset) *Sprite {
	return g.engine.addSprite(label, kind, preset)
}

// AddText registers a text label. It panics if the label is already taken.
func (g *Game[S]) AddText(label, value string) *Text {
	return g.engine.addText(label, value)
}

// AddLogic appends a per-frame function. Functions run in registration order.
func (g *Game[S]) AddLogic(fn LogicFunc[S]) {
	g.logic = append(g.logic, fn)
}

// Run installs the initial state and starts accepting frames.
func (g *Game[S]) Run(initial S) {
	g.state = initial
	g.running = true
}

// State returns a copy of the current game state.
func (g *Game[S]) State() S {
	return g.state
}

// Frame advances the game by dt: pressed keys are applied, collision events
// are generated from the current sprite positions, then every logic function
// runs in order. Frames before Run are ignored.
func (g *Game[S]) Frame(dt time.Duration, pressed ...core.Key) {
	if !g.running {
		return
	}
	if dt < 0 {
		dt = 0
	}
	if g.maxDelta > 0 && dt > g.maxDelta {
		dt = g.maxDelta
	}

	e := g.engine
	e.Keyboard.Press(pressed...)
	e.delta = dt
	e.elapsed += dt

	for _, ev := range e.detector.detect(e.Sprites()) {
		e.EmitCollision(ev)
	}

	for _, fn := range g.logic {
		fn(e, &g.state)
	}

	e.Keyboard.advance(dt)
	e.frameNum++
}

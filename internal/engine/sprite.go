// Package engine is the small 2D engine the racer runs on: a sprite and text
// registry, a polled keyboard, begin/end collision events, an audio hook and a
// frame loop that calls game logic functions in registration order.
//
// It knows nothing about any particular game. Games tag their sprites with a
// Kind of their own choosing and dispatch on it.
package engine

import (
	"github.com/vovakirdan/road-racer/internal/core"
)

// Kind is a game-defined sprite category, attached when the sprite is added.
type Kind uint8

// Sprite is a registered, mutable scene object.
type Sprite struct {
	Label       string
	Kind        Kind
	Preset      SpritePreset
	Translation core.Vec2
	Rotation    float64 // Radians, counter-clockwise
	Scale       float64
	Layer       float64 // Higher layers are drawn on top
	Collision   bool    // Whether the sprite takes part in collision detection
}

// Collider returns the sprite's world-space bounding box.
func (s *Sprite) Collider() core.Box {
	size := s.Preset.Size()
	return core.BoxAt(s.Translation, size.X*s.Scale/2, size.Y*s.Scale/2)
}

// SpritePreset names one of the built-in sprite images.
type SpritePreset int

const (
	RacingCarBlue SpritePreset = iota
	RacingCarBlack
	RacingCarGreen
	RacingCarRed
	RacingCarYellow
	RacingBarrierWhite
	RollingHoleStart
	RollingHoleEnd
)

type presetInfo struct {
	name  string
	size  core.Vec2 // Unscaled size in world units
	glyph rune
	color core.Color
}

var presets = map[SpritePreset]presetInfo{
	RacingCarBlue:      {"racing_car_blue", core.Vec2{X: 110, Y: 54}, '█', core.ColorBrightBlue},
	RacingCarBlack:     {"racing_car_black", core.Vec2{X: 110, Y: 54}, '█', core.ColorDarkGray},
	RacingCarGreen:     {"racing_car_green", core.Vec2{X: 110, Y: 54}, '█', core.ColorGreen},
	RacingCarRed:       {"racing_car_red", core.Vec2{X: 110, Y: 54}, '█', core.ColorRed},
	RacingCarYellow:    {"racing_car_yellow", core.Vec2{X: 110, Y: 54}, '█', core.ColorYellow},
	RacingBarrierWhite: {"racing_barrier_white", core.Vec2{X: 220, Y: 38}, '▀', core.ColorBrightWhite},
	RollingHoleStart:   {"rolling_hole_start", core.Vec2{X: 64, Y: 64}, '◉', core.ColorGray},
	RollingHoleEnd:     {"rolling_hole_end", core.Vec2{X: 64, Y: 64}, '○', core.ColorGray},
}

// String returns the preset's asset-style name.
func (p SpritePreset) String() string {
	if info, ok := presets[p]; ok {
		return info.name
	}
	return "unknown"
}

// Size returns the unscaled size of the preset in world units.
func (p SpritePreset) Size() core.Vec2 {
	return presets[p].size
}

// Glyph returns the rune and colour used to draw the preset in a terminal.
func (p SpritePreset) Glyph() (rune, core.Color) {
	info, ok := presets[p]
	if !ok {
		return '?', core.ColorDefault
	}
	return info.glyph, info.color
}

// Text is a registered, mutable text label drawn at a world position.
type Text struct {
	Label       string
	Value       string
	Translation core.Vec2
	Color       core.Color
}

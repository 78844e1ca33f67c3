// Package config provides YAML-based configuration loading and difficulty
// management for the racer.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// RacerConfig contains every tunable of the racing game. It is treated as
// immutable once loaded and is passed by value into the game logic.
type RacerConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Speeds     SpeedConfig      `yaml:"speeds"`
	Player     PlayerConfig     `yaml:"player"`
	Scene      SceneConfig      `yaml:"scene"`
	Audio      AudioConfig      `yaml:"audio"`
	Input      InputConfig      `yaml:"input"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig is the world-space play field.
type FieldConfig struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
}

// SpawnConfig controls where cars and obstacles appear.
type SpawnConfig struct {
	GenMinX       float64 `yaml:"gen_min_x"`      // Generation band, left edge
	GenMaxX       float64 `yaml:"gen_max_x"`      // Generation band, right edge (exclusive)
	LaneMargin    float64 `yaml:"lane_margin"`    // Shrinks the vertical band on both sides
	RecycleBuffer float64 `yaml:"recycle_buffer"` // Distance past MinX before a sprite is recycled
}

// SpeedConfig holds movement speeds in world units per second.
type SpeedConfig struct {
	Player    float64 `yaml:"player"`
	Road      float64 `yaml:"road"`
	Cars      float64 `yaml:"cars"`
	Obstacles float64 `yaml:"obstacles"`
}

// PlayerConfig defines the player car.
type PlayerConfig struct {
	X           float64 `yaml:"x"`
	Banking     float64 `yaml:"banking"` // Rotation per unit of steering direction
	Layer       float64 `yaml:"layer"`
	StartHealth int     `yaml:"start_health"`
}

// SceneConfig defines the static scenery laid out at start.
type SceneConfig struct {
	RoadLines      int     `yaml:"road_lines"`
	RoadLineStartX float64 `yaml:"road_line_start_x"`
	RoadLineScale  float64 `yaml:"road_line_scale"`
	Barriers       int     `yaml:"barriers"` // Per side
	BarrierScale   float64 `yaml:"barrier_scale"`
	Spacing        float64 `yaml:"spacing"`
	HealthTextX    float64 `yaml:"health_text_x"`
	HealthTextY    float64 `yaml:"health_text_y"`
}

// AudioConfig holds linear volumes in [0, 1].
type AudioConfig struct {
	MusicVolume  float64 `yaml:"music_volume"`
	ImpactVolume float64 `yaml:"impact_volume"`
}

// InputConfig tunes keyboard handling.
type InputConfig struct {
	HoldWindowMS int `yaml:"hold_window_ms"` // How long a key press counts as held
	MaxFrameMS   int `yaml:"max_frame_ms"`   // Cap on a single frame delta
}

// HoldWindow returns the hold window as a duration.
func (c InputConfig) HoldWindow() time.Duration {
	return time.Duration(c.HoldWindowMS) * time.Millisecond
}

// MaxFrame returns the frame delta cap as a duration.
func (c InputConfig) MaxFrame() time.Duration {
	return time.Duration(c.MaxFrameMS) * time.Millisecond
}

// ScoringConfig converts distance into points.
type ScoringConfig struct {
	UnitsPerPoint float64 `yaml:"units_per_point"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to scroll speeds at max difficulty
}

// Validate checks the config for values the game cannot run with.
func (c RacerConfig) Validate() error {
	f := c.Field
	switch {
	case f.MinX >= f.MaxX:
		return fmt.Errorf("%w: field.min_x (%g) must be below field.max_x (%g)", ErrInvalidConfig, f.MinX, f.MaxX)
	case f.MinY >= f.MaxY:
		return fmt.Errorf("%w: field.min_y (%g) must be below field.max_y (%g)", ErrInvalidConfig, f.MinY, f.MaxY)
	case c.Spawn.GenMinX >= c.Spawn.GenMaxX:
		return fmt.Errorf("%w: spawn.gen_min_x must be below spawn.gen_max_x", ErrInvalidConfig)
	case c.Spawn.GenMinX < f.MaxX:
		return fmt.Errorf("%w: spawn band must start right of the field", ErrInvalidConfig)
	case c.Spawn.LaneMargin < 0 || f.MinY+c.Spawn.LaneMargin >= f.MaxY-c.Spawn.LaneMargin:
		return fmt.Errorf("%w: spawn.lane_margin (%g) leaves no lane band", ErrInvalidConfig, c.Spawn.LaneMargin)
	case c.Spawn.RecycleBuffer < 0:
		return fmt.Errorf("%w: spawn.recycle_buffer must not be negative", ErrInvalidConfig)
	case c.Speeds.Player <= 0, c.Speeds.Road <= 0, c.Speeds.Cars <= 0, c.Speeds.Obstacles <= 0:
		return fmt.Errorf("%w: speeds must be positive", ErrInvalidConfig)
	case c.Player.StartHealth < 1 || c.Player.StartHealth > 5:
		return fmt.Errorf("%w: player.start_health (%d) must be within 1..5", ErrInvalidConfig, c.Player.StartHealth)
	case c.Scene.RoadLines < 0 || c.Scene.Barriers < 0:
		return fmt.Errorf("%w: scene counts must not be negative", ErrInvalidConfig)
	case c.Scene.Spacing <= 0:
		return fmt.Errorf("%w: scene.spacing must be positive", ErrInvalidConfig)
	case c.Audio.MusicVolume < 0 || c.Audio.MusicVolume > 1 || c.Audio.ImpactVolume < 0 || c.Audio.ImpactVolume > 1:
		return fmt.Errorf("%w: audio volumes must be within 0..1", ErrInvalidConfig)
	case c.Scoring.UnitsPerPoint <= 0:
		return fmt.Errorf("%w: scoring.units_per_point must be positive", ErrInvalidConfig)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset maps a CLI value to a preset. Unknown values yield "".
func ParseDifficultyPreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

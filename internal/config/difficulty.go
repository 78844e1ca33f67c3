package config

import (
	"math"
	"time"
)

// DifficultyManager calculates scroll speed scaling from score or elapsed time.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = clampF(cfg.InitialLevel, 0.0, 1.0)
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
// Disabled progression keeps the level at zero so base speeds apply unchanged.
func (d *DifficultyManager) Level(score int, elapsed time.Duration) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	if d.cfg.Progression.Type == "none" {
		return d.cfg.InitialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = elapsed.Seconds() / maxAt
	default:
		return d.cfg.InitialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.cfg.InitialLevel + progress*(1.0-d.cfg.InitialLevel)
}

// Speed scales a base speed: base at level 0, base * (1 + multiplier) at level 1.
func (d *DifficultyManager) Speed(base float64, score int, elapsed time.Duration) float64 {
	return base * (1.0 + d.Level(score, elapsed)*d.cfg.Scaling.SpeedMultiplier)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

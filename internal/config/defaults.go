package config

import (
	_ "embed"
)

//go:embed defaults/racer.yaml
var defaultRacerYAML []byte

// DefaultRacerConfig returns the built-in racer configuration.
func DefaultRacerConfig() RacerConfig {
	return RacerConfig{
		Field: FieldConfig{
			MinX: -675,
			MaxX: 675,
			MinY: -360,
			MaxY: 360,
		},
		Spawn: SpawnConfig{
			GenMinX:       700,
			GenMaxX:       1800,
			LaneMargin:    60,
			RecycleBuffer: 200,
		},
		Speeds: SpeedConfig{
			Player:    300,
			Road:      900,
			Cars:      250,
			Obstacles: 900,
		},
		Player: PlayerConfig{
			X:           -500,
			Banking:     0.15,
			Layer:       10,
			StartHealth: 5,
		},
		Scene: SceneConfig{
			RoadLines:      10,
			RoadLineStartX: -600,
			RoadLineScale:  0.1,
			Barriers:       10,
			BarrierScale:   0.7,
			Spacing:        150,
			HealthTextX:    550,
			HealthTextY:    320,
		},
		Audio: AudioConfig{
			MusicVolume:  0.05,
			ImpactVolume: 1.0,
		},
		Input: InputConfig{
			HoldWindowMS: 200,
			MaxFrameMS:   100,
		},
		Scoring: ScoringConfig{
			UnitsPerPoint: 100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 120,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRacerYAML
}

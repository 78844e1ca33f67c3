package racer

import "github.com/vovakirdan/road-racer/internal/engine"

// Variant describes which traffic a track spawns.
type Variant struct {
	ID        string
	Title     string
	Cars      []engine.SpritePreset
	Obstacles []engine.SpritePreset
	Music     engine.MusicPreset
}

// Variants are the registered tracks, in menu order.
var Variants = []Variant{
	{
		ID:    "racer",
		Title: "Road Racer",
		Cars: []engine.SpritePreset{
			engine.RacingCarBlack,
			engine.RacingCarGreen,
			engine.RacingCarRed,
			engine.RacingCarYellow,
		},
		Obstacles: []engine.SpritePreset{
			engine.RollingHoleStart,
			engine.RollingHoleEnd,
			engine.RollingHoleStart,
			engine.RollingHoleEnd,
		},
	},
	{
		ID:    "racer_traffic",
		Title: "Rush Hour",
		Cars: []engine.SpritePreset{
			engine.RacingCarBlack,
			engine.RacingCarGreen,
			engine.RacingCarRed,
			engine.RacingCarYellow,
		},
	},
	{
		ID:    "racer_potholes",
		Title: "Pothole Alley",
		Music: engine.MusicWhimsicalPopsicle,
		Obstacles: []engine.SpritePreset{
			engine.RollingHoleStart,
			engine.RollingHoleEnd,
			engine.RollingHoleStart,
			engine.RollingHoleEnd,
		},
	},
}

// LookupVariant finds a variant by ID.
func LookupVariant(id string) (Variant, bool) {
	for _, v := range Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

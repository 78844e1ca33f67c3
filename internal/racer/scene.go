package racer

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/road-racer/internal/config"
	"github.com/vovakirdan/road-racer/internal/core"
	"github.com/vovakirdan/road-racer/internal/engine"
)

// Labels of the sprites and texts that logic looks up directly.
const (
	PlayerLabel     = "player"
	HealthTextLabel = "health"
)

// Render layers, back to front.
const (
	layerRoad     = 0
	layerBarrier  = 1
	layerObstacle = 2
	layerCar      = 5
)

// Setup places every sprite of the scene and starts the variant's music. It panics if
// a label is registered twice.
func Setup(g *engine.Game[GameState], cfg config.RacerConfig, v Variant, rng *rand.Rand) {
	e := g.Engine()

	player := g.AddSprite(PlayerLabel, KindPlayer, engine.RacingCarBlue)
	player.Translation = core.NewVec2(cfg.Player.X, 0)
	player.Layer = cfg.Player.Layer
	player.Collision = true

	e.Audio.PlayMusic(v.Music, cfg.Audio.MusicVolume)

	sc := cfg.Scene
	for i := 0; i < sc.RoadLines; i++ {
		s := g.AddSprite(fmt.Sprintf("road_line%d", i), KindRoadLine, engine.RacingBarrierWhite)
		s.Scale = sc.RoadLineScale
		s.Translation.X = sc.RoadLineStartX + sc.Spacing*float64(i)
		s.Layer = layerRoad
	}

	for i := 0; i < sc.Barriers; i++ {
		x := cfg.Field.MinX + sc.Spacing*float64(i)

		top := g.AddSprite(fmt.Sprintf("barrier_top_%d", i), KindBarrier, engine.RacingBarrierWhite)
		top.Translation = core.NewVec2(x, cfg.Field.MaxY)
		top.Scale = sc.BarrierScale
		top.Layer = layerBarrier
		top.Collision = true

		bottom := g.AddSprite(fmt.Sprintf("barrier_bottom_%d", i), KindBarrier, engine.RacingBarrierWhite)
		bottom.Translation = core.NewVec2(x, cfg.Field.MinY)
		bottom.Scale = sc.BarrierScale
		bottom.Layer = layerBarrier
		bottom.Collision = true
	}

	for i, preset := range v.Cars {
		s := g.AddSprite(fmt.Sprintf("car%d", i), KindCar, preset)
		s.Translation = spawnPoint(cfg, rng)
		s.Layer = layerCar
		s.Collision = true
	}

	for i, preset := range v.Obstacles {
		s := g.AddSprite(fmt.Sprintf("obstacle%d", i), KindObstacle, preset)
		s.Translation = spawnPoint(cfg, rng)
		s.Layer = layerObstacle
		s.Collision = true
	}

	health := g.AddText(HealthTextLabel, healthText(cfg.Player.StartHealth))
	health.Translation = core.NewVec2(sc.HealthTextX, sc.HealthTextY)
	health.Color = core.ColorBrightWhite
}

// spawnPoint draws a position from the generation band and the lane band.
func spawnPoint(cfg config.RacerConfig, rng *rand.Rand) core.Vec2 {
	return core.NewVec2(
		uniform(rng, cfg.Spawn.GenMinX, cfg.Spawn.GenMaxX),
		uniform(rng, cfg.Field.MinY+cfg.Spawn.LaneMargin, cfg.Field.MaxY-cfg.Spawn.LaneMargin),
	)
}

// uniform returns a value in [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func healthText(health int) string {
	return fmt.Sprintf("Health: %d", health)
}

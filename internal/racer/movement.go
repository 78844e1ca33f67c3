package racer

import (
	"math/rand"

	"github.com/vovakirdan/road-racer/internal/config"
	"github.com/vovakirdan/road-racer/internal/engine"
)

// PlayerMovement steers the player car from the held keys. Leaving the
// vertical play field ends the run.
func PlayerMovement(cfg config.RacerConfig) engine.LogicFunc[GameState] {
	return func(e *engine.Engine, state *GameState) {
		direction := 0.0
		if e.Keyboard.PressedAny(engine.KeyUp, engine.KeyW) {
			direction += 1
		}
		if e.Keyboard.PressedAny(engine.KeyDown, engine.KeyS) {
			direction -= 1
		}

		player := e.Sprite(PlayerLabel)
		player.Translation.Y += direction * cfg.Speeds.Player * e.DeltaSeconds()
		player.Rotation = direction * cfg.Player.Banking

		if y := player.Translation.Y; y < cfg.Field.MinY || y > cfg.Field.MaxY {
			*state = Transition(*state, EventOffRoad)
		}
	}
}

// RoadMovement scrolls the scenery and traffic to the left. Road lines and
// barriers wrap by the field width; cars and obstacles that fall behind are
// respawned in the generation band. A nil difficulty uses base speeds.
func RoadMovement(cfg config.RacerConfig, rng *rand.Rand, difficulty *config.DifficultyManager) engine.LogicFunc[GameState] {
	return func(e *engine.Engine, state *GameState) {
		dt := e.DeltaSeconds()
		road := cfg.Speeds.Road
		cars := cfg.Speeds.Cars
		obstacles := cfg.Speeds.Obstacles
		if difficulty != nil {
			score := Score(*state, cfg)
			road = difficulty.Speed(road, score, e.Elapsed())
			cars = difficulty.Speed(cars, score, e.Elapsed())
			obstacles = difficulty.Speed(obstacles, score, e.Elapsed())
		}

		state.Distance += road * dt

		recycleAt := cfg.Field.MinX - cfg.Spawn.RecycleBuffer
		for _, s := range e.Sprites() {
			switch s.Kind {
			case KindRoadLine, KindBarrier:
				s.Translation.X -= road * dt
				if s.Translation.X < cfg.Field.MinX {
					s.Translation.X += 2 * cfg.Field.MaxX
				}
			case KindCar:
				s.Translation.X -= cars * dt
				if s.Translation.X < recycleAt {
					s.Translation = spawnPoint(cfg, rng)
				}
			case KindObstacle:
				s.Translation.X -= obstacles * dt
				if s.Translation.X < recycleAt {
					s.Translation = spawnPoint(cfg, rng)
				}
			}
		}
	}
}

// Score converts the distance driven into points.
func Score(s GameState, cfg config.RacerConfig) int {
	if cfg.Scoring.UnitsPerPoint <= 0 {
		return 0
	}
	return int(s.Distance / cfg.Scoring.UnitsPerPoint)
}

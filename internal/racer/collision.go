package racer

import (
	"github.com/vovakirdan/road-racer/internal/config"
	"github.com/vovakirdan/road-racer/internal/engine"
)

// CollisionLogic drains the frame's collision events. Every newly begun
// collision involving the player costs one health point and plays an impact.
func CollisionLogic(cfg config.RacerConfig) engine.LogicFunc[GameState] {
	return func(e *engine.Engine, state *GameState) {
		for _, ev := range e.DrainCollisionEvents() {
			if !ev.Pair.EitherContains(PlayerLabel) || ev.State.IsEnd() {
				continue
			}
			if state.Health == 0 {
				continue
			}
			*state = Transition(*state, EventHit)
			e.Text(HealthTextLabel).Value = healthText(int(state.Health))
			e.Audio.PlaySFX(engine.SfxImpact3, cfg.Audio.ImpactVolume)
		}
	}
}

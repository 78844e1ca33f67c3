package racer

import "github.com/vovakirdan/road-racer/internal/engine"

// Sprite kinds used by the racer. Movement dispatches on these instead of
// inspecting labels.
const (
	KindPlayer engine.Kind = iota + 1
	KindRoadLine
	KindBarrier
	KindCar
	KindObstacle
)

package racer

import (
	"math"
	"math/rand"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/road-racer/internal/config"
	"github.com/vovakirdan/road-racer/internal/core"
	"github.com/vovakirdan/road-racer/internal/engine"
)

type recordingAudio struct {
	music []engine.MusicPreset
	sfx   []engine.SfxPreset
	vols  []float64
	stops int
}

func (a *recordingAudio) PlayMusic(m engine.MusicPreset, _ float64) { a.music = append(a.music, m) }
func (a *recordingAudio) StopMusic()                                { a.stops++ }
func (a *recordingAudio) PlaySFX(s engine.SfxPreset, vol float64) {
	a.sfx = append(a.sfx, s)
	a.vols = append(a.vols, vol)
}

func newSession(t *testing.T, audio engine.AudioManager) *engine.Game[GameState] {
	t.Helper()
	return engine.NewGame[GameState](engine.WithAudio(audio))
}

func hit(label string) engine.CollisionEvent {
	return engine.CollisionEvent{Pair: engine.NewCollisionPair(PlayerLabel, label), State: engine.CollisionBegin}
}

func TestTransition(t *testing.T) {
	tests := []struct {
		name  string
		in    GameState
		ev    Event
		want  GameState
		phase Phase
	}{
		{"hit decrements", GameState{Health: 5}, EventHit, GameState{Health: 4}, PhasePlaying},
		{"last hit loses", GameState{Health: 1}, EventHit, GameState{Health: 0, Lost: true}, PhaseLost},
		{"hit at zero stays zero", GameState{Lost: true}, EventHit, GameState{Lost: true}, PhaseLost},
		{"off road zeroes", GameState{Health: 4}, EventOffRoad, GameState{Lost: true, OffRoad: true}, PhaseLost},
		{"off road after loss keeps reason", GameState{Lost: true}, EventOffRoad, GameState{Lost: true}, PhaseLost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transition(tt.in, tt.ev)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.phase, got.Phase())
		})
	}
}

func TestNewGameStateClampsHealth(t *testing.T) {
	assert.Equal(t, uint8(5), NewGameState(9).Health)
	assert.Equal(t, uint8(3), NewGameState(3).Health)
	assert.True(t, NewGameState(0).Lost)
}

func TestSetupPlacesScene(t *testing.T) {
	cfg := config.DefaultRacerConfig()
	audio := &recordingAudio{}
	g := newSession(t, audio)
	v, ok := LookupVariant("racer")
	require.True(t, ok)

	Setup(g, cfg, v, rand.New(rand.NewSource(1)))
	e := g.Engine()

	player := e.Sprite(PlayerLabel)
	assert.Equal(t, core.NewVec2(-500, 0), player.Translation)
	assert.Equal(t, 10.0, player.Layer)
	assert.True(t, player.Collision)
	assert.Equal(t, KindPlayer, player.Kind)

	assert.Equal(t, []engine.MusicPreset{engine.MusicClassy8Bit}, audio.music)

	counts := map[engine.Kind]int{}
	for _, s := range e.Sprites() {
		counts[s.Kind]++
	}
	assert.Equal(t, map[engine.Kind]int{
		KindPlayer:   1,
		KindRoadLine: 10,
		KindBarrier:  20,
		KindCar:      4,
		KindObstacle: 4,
	}, counts)

	for i := 0; i < 10; i++ {
		line := e.Sprite("road_line" + itoa(i))
		assert.InDelta(t, -600+150*float64(i), line.Translation.X, 1e-9)
		assert.Equal(t, 0.1, line.Scale)
		assert.False(t, line.Collision)

		top := e.Sprite("barrier_top_" + itoa(i))
		bottom := e.Sprite("barrier_bottom_" + itoa(i))
		assert.InDelta(t, -675+150*float64(i), top.Translation.X, 1e-9)
		assert.Equal(t, 360.0, top.Translation.Y)
		assert.Equal(t, -360.0, bottom.Translation.Y)
		assert.Equal(t, 0.7, top.Scale)
		assert.True(t, bottom.Collision)
	}

	for _, s := range e.Sprites() {
		if s.Kind != KindCar && s.Kind != KindObstacle {
			continue
		}
		assertInSpawnBand(t, cfg, s)
	}
	assert.Equal(t, 5.0, e.Sprite("car0").Layer)
	assert.Equal(t, 2.0, e.Sprite("obstacle0").Layer)

	health := e.Text(HealthTextLabel)
	assert.Equal(t, "Health: 5", health.Value)
	assert.Equal(t, core.NewVec2(550, 320), health.Translation)
}

func TestSetupVariants(t *testing.T) {
	tests := []struct {
		id        string
		cars      int
		obstacles int
	}{
		{"racer", 4, 4},
		{"racer_traffic", 4, 0},
		{"racer_potholes", 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			v, ok := LookupVariant(tt.id)
			require.True(t, ok)
			g := newSession(t, nil)
			Setup(g, config.DefaultRacerConfig(), v, rand.New(rand.NewSource(2)))

			var cars, obstacles int
			for _, s := range g.Engine().Sprites() {
				switch s.Kind {
				case KindCar:
					cars++
				case KindObstacle:
					obstacles++
				}
			}
			assert.Equal(t, tt.cars, cars)
			assert.Equal(t, tt.obstacles, obstacles)
		})
	}

	_, ok := LookupVariant("nope")
	assert.False(t, ok)
}

func TestSetupTwicePanics(t *testing.T) {
	g := newSession(t, nil)
	cfg := config.DefaultRacerConfig()
	rng := rand.New(rand.NewSource(3))
	Setup(g, cfg, Variants[0], rng)

	assert.PanicsWithValue(t, `engine: sprite "player" already registered`, func() {
		Setup(g, cfg, Variants[0], rng)
	})
}

func TestPlayerMovement(t *testing.T) {
	tests := []struct {
		name     string
		keys     []core.Key
		wantY    float64
		wantBank float64
	}{
		{"idle", nil, 0, 0},
		{"up arrow", []core.Key{engine.KeyUp}, 30, 0.15},
		{"w", []core.Key{engine.KeyW}, 30, 0.15},
		{"down arrow", []core.Key{engine.KeyDown}, -30, -0.15},
		{"s", []core.Key{engine.KeyS}, -30, -0.15},
		{"up and down cancel", []core.Key{engine.KeyUp, engine.KeyS}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newSession(t, nil)
			g.AddSprite(PlayerLabel, KindPlayer, engine.RacingCarBlue)
			g.AddLogic(PlayerMovement(config.DefaultRacerConfig()))
			g.Run(NewGameState(5))

			g.Frame(100*time.Millisecond, tt.keys...)

			player := g.Engine().Sprite(PlayerLabel)
			assert.InDelta(t, tt.wantY, player.Translation.Y, 1e-9)
			assert.InDelta(t, tt.wantBank, player.Rotation, 1e-9)
			assert.Equal(t, uint8(5), g.State().Health)
		})
	}
}

func TestPlayerOffRoadForcesZeroHealth(t *testing.T) {
	for _, start := range []float64{355, -355} {
		g := newSession(t, nil)
		player := g.AddSprite(PlayerLabel, KindPlayer, engine.RacingCarBlue)
		player.Translation.Y = start
		g.AddLogic(PlayerMovement(config.DefaultRacerConfig()))
		g.Run(NewGameState(5))

		key := engine.KeyUp
		if start < 0 {
			key = engine.KeyDown
		}
		g.Frame(100*time.Millisecond, key)

		s := g.State()
		assert.Zero(t, s.Health)
		assert.True(t, s.Lost)
		assert.True(t, s.OffRoad)
		assert.Equal(t, PhaseLost, s.Phase())
	}
}

func TestRoadLineWrap(t *testing.T) {
	cfg := config.DefaultRacerConfig()
	g := newSession(t, nil)
	line := g.AddSprite("road_line0", KindRoadLine, engine.RacingBarrierWhite)
	line.Translation.X = -680
	g.AddLogic(RoadMovement(cfg, rand.New(rand.NewSource(1)), nil))
	g.Run(NewGameState(5))

	g.Frame(10 * time.Millisecond)

	// -680 - 9 + 1350
	assert.InDelta(t, 661.0, line.Translation.X, 1e-9)
	assert.GreaterOrEqual(t, line.Translation.X, cfg.Field.MinX)
}

func TestRoadLineAboveMinXDoesNotWrap(t *testing.T) {
	cfg := config.DefaultRacerConfig()
	g := newSession(t, nil)
	line := g.AddSprite("road_line0", KindRoadLine, engine.RacingBarrierWhite)
	line.Translation.X = -660
	g.AddLogic(RoadMovement(cfg, rand.New(rand.NewSource(1)), nil))
	g.Run(NewGameState(5))

	g.Frame(10 * time.Millisecond)

	assert.InDelta(t, -669.0, line.Translation.X, 1e-9)
}

func TestScenerySpacingSurvivesWrapping(t *testing.T) {
	cfg := config.DefaultRacerConfig()
	g := newSession(t, nil)
	Setup(g, cfg, Variants[0], rand.New(rand.NewSource(4)))
	g.AddLogic(RoadMovement(cfg, rand.New(rand.NewSource(5)), nil))
	g.Run(NewGameState(5))

	e := g.Engine()
	for i := 0; i < 500; i++ {
		g.Frame(16 * time.Millisecond)
		for _, s := range e.Sprites() {
			if s.Kind == KindRoadLine || s.Kind == KindBarrier {
				require.GreaterOrEqual(t, s.Translation.X, cfg.Field.MinX, "frame %d %s", i, s.Label)
			}
		}
	}

	// Ten lines spaced 150 apart over a 1350 span wrap onto a 150 grid.
	base := e.Sprite("road_line0").Translation.X
	for i := 1; i < 10; i++ {
		x := e.Sprite("road_line" + itoa(i)).Translation.X
		steps := (x - base) / 150
		assert.InDelta(t, math.Round(steps), steps, 1e-6)
	}
}

func TestTrafficRecycling(t *testing.T) {
	cfg := config.DefaultRacerConfig()

	for seed := int64(0); seed < 50; seed++ {
		g := newSession(t, nil)
		car := g.AddSprite("car0", KindCar, engine.RacingCarRed)
		car.Translation = core.NewVec2(-870, 0)
		hole := g.AddSprite("obstacle0", KindObstacle, engine.RollingHoleStart)
		hole.Translation = core.NewVec2(-870, 0)
		g.AddLogic(RoadMovement(cfg, rand.New(rand.NewSource(seed)), nil))
		g.Run(NewGameState(5))

		g.Frame(100 * time.Millisecond)

		assertInSpawnBand(t, cfg, car)
		assertInSpawnBand(t, cfg, hole)
	}
}

func TestSetupPlaysVariantMusic(t *testing.T) {
	tests := []struct {
		id   string
		want engine.MusicPreset
	}{
		{"racer", engine.MusicClassy8Bit},
		{"racer_traffic", engine.MusicClassy8Bit},
		{"racer_potholes", engine.MusicWhimsicalPopsicle},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			audio := &recordingAudio{}
			g := newSession(t, audio)
			v, ok := LookupVariant(tt.id)
			require.True(t, ok)

			Setup(g, config.DefaultRacerConfig(), v, rand.New(rand.NewSource(1)))

			assert.Equal(t, []engine.MusicPreset{tt.want}, audio.music)
		})
	}
}

func TestTrafficInsideRecycleBufferKeepsMoving(t *testing.T) {
	cfg := config.DefaultRacerConfig()
	g := newSession(t, nil)
	car := g.AddSprite("car0", KindCar, engine.RacingCarRed)
	car.Translation = core.NewVec2(-800, 60)
	g.AddLogic(RoadMovement(cfg, rand.New(rand.NewSource(1)), nil))
	g.Run(NewGameState(5))

	g.Frame(10 * time.Millisecond)

	assert.InDelta(t, -802.5, car.Translation.X, 1e-9)
	assert.Equal(t, 60.0, car.Translation.Y)
}

func TestTrafficSpeeds(t *testing.T) {
	cfg := config.DefaultRacerConfig()
	g := newSession(t, nil)
	car := g.AddSprite("car0", KindCar, engine.RacingCarRed)
	hole := g.AddSprite("obstacle0", KindObstacle, engine.RollingHoleStart)
	barrier := g.AddSprite("barrier_top_0", KindBarrier, engine.RacingBarrierWhite)
	player := g.AddSprite(PlayerLabel, KindPlayer, engine.RacingCarBlue)
	player.Translation.X = -500
	g.AddLogic(RoadMovement(cfg, rand.New(rand.NewSource(1)), nil))
	g.Run(NewGameState(5))

	g.Frame(100 * time.Millisecond)

	assert.InDelta(t, -25.0, car.Translation.X, 1e-9)
	assert.InDelta(t, -90.0, hole.Translation.X, 1e-9)
	assert.InDelta(t, -90.0, barrier.Translation.X, 1e-9)
	assert.Equal(t, -500.0, player.Translation.X)
	assert.InDelta(t, 90.0, g.State().Distance, 1e-9)
}

func TestDifficultyScalesScrollSpeed(t *testing.T) {
	cfg := config.DefaultRacerConfig()
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = 1
	cfg.Difficulty.Progression.Type = "none"
	cfg.Difficulty.Scaling.SpeedMultiplier = 0.5

	g := newSession(t, nil)
	car := g.AddSprite("car0", KindCar, engine.RacingCarRed)
	g.AddLogic(RoadMovement(cfg, rand.New(rand.NewSource(1)), config.NewDifficultyManager(cfg.Difficulty)))
	g.Run(NewGameState(5))

	g.Frame(100 * time.Millisecond)

	assert.InDelta(t, -37.5, car.Translation.X, 1e-9)
	assert.InDelta(t, 135.0, g.State().Distance, 1e-9)
}

func TestHealthScenario(t *testing.T) {
	cfg := config.DefaultRacerConfig()
	audio := &recordingAudio{}
	g := newSession(t, audio)
	g.AddSprite(PlayerLabel, KindPlayer, engine.RacingCarBlue)
	g.AddText(HealthTextLabel, healthText(5))
	g.AddLogic(CollisionLogic(cfg))
	g.Run(NewGameState(5))
	e := g.Engine()

	for i := 0; i < 3; i++ {
		e.EmitCollision(hit("car" + itoa(i)))
	}
	g.Frame(16 * time.Millisecond)

	assert.Equal(t, uint8(2), g.State().Health)
	assert.Equal(t, "Health: 2", e.Text(HealthTextLabel).Value)
	assert.Len(t, audio.sfx, 3)

	for i := 0; i < 5; i++ {
		e.EmitCollision(hit("obstacle" + itoa(i)))
	}
	g.Frame(16 * time.Millisecond)

	assert.Zero(t, g.State().Health)
	assert.True(t, g.State().Lost)
	assert.Equal(t, "Health: 0", e.Text(HealthTextLabel).Value)
	assert.Len(t, audio.sfx, 5)

	e.EmitCollision(hit("car9"))
	g.Frame(16 * time.Millisecond)

	assert.Zero(t, g.State().Health)
	assert.Len(t, audio.sfx, 5)
	assert.Equal(t, 0, e.PendingCollisions())
	for i, s := range audio.sfx {
		assert.Equal(t, engine.SfxImpact3, s)
		assert.Equal(t, 1.0, audio.vols[i])
	}
}

func TestCollisionIgnoresEndAndBystanders(t *testing.T) {
	audio := &recordingAudio{}
	g := newSession(t, audio)
	g.AddSprite(PlayerLabel, KindPlayer, engine.RacingCarBlue)
	g.AddText(HealthTextLabel, healthText(5))
	g.AddLogic(CollisionLogic(config.DefaultRacerConfig()))
	g.Run(NewGameState(5))
	e := g.Engine()

	e.EmitCollision(engine.CollisionEvent{Pair: engine.NewCollisionPair(PlayerLabel, "car0"), State: engine.CollisionEnd})
	e.EmitCollision(engine.CollisionEvent{Pair: engine.NewCollisionPair("car0", "obstacle1"), State: engine.CollisionBegin})
	e.EmitCollision(engine.CollisionEvent{Pair: engine.NewCollisionPair("player_two", "car1"), State: engine.CollisionBegin})
	g.Frame(16 * time.Millisecond)

	assert.Equal(t, uint8(5), g.State().Health)
	assert.Equal(t, "Health: 5", e.Text(HealthTextLabel).Value)
	assert.Empty(t, audio.sfx)
}

func TestHealthNeverBelowZero(t *testing.T) {
	for n := 0; n <= 8; n++ {
		g := newSession(t, nil)
		g.AddSprite(PlayerLabel, KindPlayer, engine.RacingCarBlue)
		g.AddText(HealthTextLabel, healthText(5))
		g.AddLogic(CollisionLogic(config.DefaultRacerConfig()))
		g.Run(NewGameState(5))

		for i := 0; i < n; i++ {
			g.Engine().EmitCollision(hit("car0"))
		}
		g.Frame(0)

		assert.Equal(t, uint8(max(0, 5-n)), g.State().Health, "after %d hits", n)
	}
}

func TestRealCollisionCostsHealth(t *testing.T) {
	cfg := config.DefaultRacerConfig()
	audio := &recordingAudio{}
	g := newSession(t, audio)
	player := g.AddSprite(PlayerLabel, KindPlayer, engine.RacingCarBlue)
	player.Translation.X = -500
	player.Collision = true
	car := g.AddSprite("car0", KindCar, engine.RacingCarRed)
	car.Translation.X = -500
	car.Collision = true
	g.AddText(HealthTextLabel, healthText(5))
	g.AddLogic(CollisionLogic(cfg))
	g.Run(NewGameState(5))

	g.Frame(16 * time.Millisecond)
	g.Frame(16 * time.Millisecond)

	// Overlapping for two frames is still one begin event.
	assert.Equal(t, uint8(4), g.State().Health)
	assert.Len(t, audio.sfx, 1)
}

func assertInSpawnBand(t *testing.T, cfg config.RacerConfig, s *engine.Sprite) {
	t.Helper()
	x, y := s.Translation.X, s.Translation.Y
	assert.GreaterOrEqual(t, x, cfg.Spawn.GenMinX, s.Label)
	assert.Less(t, x, cfg.Spawn.GenMaxX, s.Label)
	assert.GreaterOrEqual(t, y, cfg.Field.MinY+cfg.Spawn.LaneMargin, s.Label)
	assert.Less(t, y, cfg.Field.MaxY-cfg.Spawn.LaneMargin, s.Label)
}

func itoa(i int) string {
	return strconv.Itoa(i)
}

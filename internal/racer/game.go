// Package racer implements a top-down endless road race. The player steers
// a car up and down while road markings, barriers, cars and potholes scroll
// past; every crash costs one health point.
package racer

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/road-racer/internal/config"
	"github.com/vovakirdan/road-racer/internal/core"
	"github.com/vovakirdan/road-racer/internal/engine"
	"github.com/vovakirdan/road-racer/internal/registry"
)

// End reasons reported through core.GameState.
const (
	EndCrashed = "crashed"
	EndOffRoad = "off_road"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParseDifficultyPreset(preset)
}

// Game adapts a racer session to the registry and TUI platform.
type Game struct {
	variant    Variant
	cfg        config.RacerConfig
	runtime    core.RuntimeConfig
	sim        *engine.Game[GameState]
	difficulty *config.DifficultyManager
	audio      engine.AudioManager
	logger     *log.Logger
	paused     bool
	ended      bool // Game over has been handled
}

// New creates a game for a variant. Audio defaults to silence and the
// logger discards everything.
func New(v Variant) *Game {
	return &Game{
		variant: v,
		audio:   engine.NopAudio{},
		logger:  log.New(io.Discard),
	}
}

// SetAudio sets the audio manager used from the next Reset on.
func (g *Game) SetAudio(a engine.AudioManager) {
	if a == nil {
		a = engine.NopAudio{}
	}
	g.audio = a
}

// SetLogger sets the debug logger.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l.WithPrefix(g.variant.ID)
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title
}

// Summary describes the traffic on the track.
func (g *Game) Summary() string {
	v := g.variant
	switch {
	case len(v.Cars) > 0 && len(v.Obstacles) > 0:
		return fmt.Sprintf("%d cars, %d potholes", len(v.Cars), len(v.Obstacles))
	case len(v.Cars) > 0:
		return fmt.Sprintf("%d cars", len(v.Cars))
	case len(v.Obstacles) > 0:
		return fmt.Sprintf("%d potholes", len(v.Obstacles))
	default:
		return "empty road"
	}
}

// Config returns the config of the current run.
func (g *Game) Config() config.RacerConfig {
	return g.cfg
}

// Engine exposes the running engine. It is nil before Reset.
func (g *Game) Engine() *engine.Engine {
	if g.sim == nil {
		return nil
	}
	return g.sim.Engine()
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRacer(configPath)
	if err != nil {
		g.logger.Warn("using default config", "error", err)
		cfg = config.DefaultRacerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.start(cfg)
}

// ResetWith restarts the game with an explicit config instead of loading one.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.RacerConfig) {
	g.runtime = runtime
	g.start(cfg)
}

func (g *Game) start(cfg config.RacerConfig) {
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.paused = false
	g.ended = false

	seed := g.runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g.audio.StopMusic()
	sim := engine.NewGame[GameState](
		engine.WithAudio(g.audio),
		engine.WithHoldWindow(cfg.Input.HoldWindow()),
		engine.WithMaxDelta(cfg.Input.MaxFrame()),
	)
	Setup(sim, cfg, g.variant, rng)
	sim.AddLogic(PlayerMovement(cfg))
	sim.AddLogic(RoadMovement(cfg, rng, g.difficulty))
	sim.AddLogic(CollisionLogic(cfg))
	sim.Run(NewGameState(cfg.Player.StartHealth))
	g.sim = sim

	g.logger.Debug("run started", "seed", seed, "health", cfg.Player.StartHealth,
		"cars", len(g.variant.Cars), "obstacles", len(g.variant.Obstacles))
}

// Step advances the game by one frame of length dt.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if g.sim == nil || g.ended {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	before := g.sim.State().Health
	g.sim.Frame(dt, in.Pressed()...)
	s := g.sim.State()

	if s.Health < before {
		g.logger.Debug("hit", "health", s.Health, "frame", g.sim.Engine().FrameCount())
	}
	if s.Lost {
		g.ended = true
		g.audio.StopMusic()
		g.audio.PlaySFX(engine.SfxJingle, g.cfg.Audio.ImpactVolume)
		if s.OffRoad {
			g.logger.Debug("left the road", "frame", g.sim.Engine().FrameCount())
		}
		g.logger.Debug("game over", "score", Score(s, g.cfg), "elapsed", g.sim.Engine().Elapsed())
	}

	return core.StepResult{State: g.State()}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}

	f := g.cfg.Field
	g.sim.Engine().Render(dst, engine.Viewport{MinX: f.MinX, MaxX: f.MaxX, MinY: f.MinY, MaxY: f.MaxY})

	s := g.sim.State()
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", Score(s, g.cfg)), core.ColorBrightYellow)

	// Show difficulty level if progression is enabled
	if g.difficulty.IsEnabled() {
		speed := g.difficulty.Speed(g.cfg.Speeds.Road, Score(s, g.cfg), g.sim.Engine().Elapsed())
		levelText := fmt.Sprintf(" Spd: %.0f ", speed)
		dst.DrawText(dst.Width()-len(levelText)-2, dst.Height()-1, levelText)
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if s.Lost {
		title := "CRASHED"
		if s.OffRoad {
			title = "OFF THE ROAD"
		}
		g.drawCenteredMessage(dst, title, fmt.Sprintf("Score: %d  |  Press R to restart", Score(s, g.cfg)))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	s := g.sim.State()
	gs := core.GameState{
		Score:    Score(s, g.cfg),
		Health:   int(s.Health),
		GameOver: s.Lost,
		Paused:   g.paused,
	}
	if s.Lost {
		gs.EndReason = EndCrashed
		if s.OffRoad {
			gs.EndReason = EndOffRoad
		}
	}
	return gs
}

// Elapsed returns the simulated time of the current run.
func (g *Game) Elapsed() time.Duration {
	if g.sim == nil {
		return 0
	}
	return g.sim.Engine().Elapsed()
}

// Register every variant with the registry
func init() {
	for _, v := range Variants {
		v := v
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

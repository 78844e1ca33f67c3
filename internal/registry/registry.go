// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/road-racer/internal/core"
)

// Game is the interface every playable track implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "racer", "racer_traffic").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Rush Hour").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by dt, the wall time since the last frame.
	// Input carries platform-level actions (Pause, etc.) and the raw keys
	// pressed since the last frame.
	// Returns the result of this frame including current game state.
	Step(in core.InputFrame, dt time.Duration) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, health, game over, paused).
	State() core.GameState
}

// Summarizer is implemented by games that can describe their track in a
// few words for listings ("4 cars, 4 potholes").
type Summarizer interface {
	Summary() string
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID      string
	Title   string
	Summary string // Empty unless the game implements Summarizer
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

// ErrUnknownGame is returned by Create for IDs nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Metadata comes from a throwaway instance
	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if sm, ok := g.(Summarizer); ok {
		info.Summary = sm.Summary()
	}
	infos[id] = info
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

package racer

// MaxHealth is the highest health a run can start with.
const MaxHealth = 5

// Phase is the lifecycle phase of a run.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Event is something that happened to the player during a frame.
type Event int

const (
	// EventHit is a newly begun collision involving the player.
	EventHit Event = iota
	// EventOffRoad means the player left the vertical play field.
	EventOffRoad
)

func (e Event) String() string {
	switch e {
	case EventHit:
		return "hit"
	case EventOffRoad:
		return "off_road"
	default:
		return "unknown"
	}
}

// GameState is owned by the frame loop and handed to each logic function.
type GameState struct {
	Health   uint8
	Lost     bool
	Distance float64 // World units scrolled since the start of the run
	OffRoad  bool    // Set when the run ended by leaving the road
}

// NewGameState returns the state a run starts in.
func NewGameState(health int) GameState {
	if health < 0 {
		health = 0
	}
	if health > MaxHealth {
		health = MaxHealth
	}
	return GameState{Health: uint8(health), Lost: health == 0}
}

// Phase derives the lifecycle phase from the state.
func (s GameState) Phase() Phase {
	if s.Lost {
		return PhaseLost
	}
	return PhasePlaying
}

// Transition applies an event to a state and returns the result.
// Health never goes below zero and PhaseLost is terminal.
func Transition(s GameState, ev Event) GameState {
	switch ev {
	case EventHit:
		if s.Health > 0 {
			s.Health--
		}
	case EventOffRoad:
		if s.Health > 0 {
			s.OffRoad = true
		}
		s.Health = 0
	}
	if s.Health == 0 {
		s.Lost = true
	}
	return s
}

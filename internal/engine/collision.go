package engine

import "sort"

// CollisionState tells whether two sprites started or stopped overlapping.
type CollisionState int

const (
	CollisionBegin CollisionState = iota
	CollisionEnd
)

// IsBegin reports whether the event marks the start of an overlap.
func (s CollisionState) IsBegin() bool { return s == CollisionBegin }

// IsEnd reports whether the event marks the end of an overlap.
func (s CollisionState) IsEnd() bool { return s == CollisionEnd }

func (s CollisionState) String() string {
	if s == CollisionBegin {
		return "begin"
	}
	return "end"
}

// CollisionPair is an unordered pair of sprite labels, stored sorted.
type CollisionPair [2]string

// NewCollisionPair builds a pair in canonical order.
func NewCollisionPair(a, b string) CollisionPair {
	if b < a {
		a, b = b, a
	}
	return CollisionPair{a, b}
}

// EitherContains reports whether either label of the pair equals label.
func (p CollisionPair) EitherContains(label string) bool {
	return p[0] == label || p[1] == label
}

// CollisionEvent is produced once when a pair starts overlapping and once
// when it stops.
type CollisionEvent struct {
	Pair  CollisionPair
	State CollisionState
}

// collisionDetector remembers which pairs overlapped last frame.
type collisionDetector struct {
	active map[CollisionPair]bool
}

func newCollisionDetector() *collisionDetector {
	return &collisionDetector{active: make(map[CollisionPair]bool)}
}

// detect compares the current overlaps against the previous frame and returns
// begin events followed by end events, each sorted by pair.
// sprites must be sorted by label.
func (d *collisionDetector) detect(sprites []*Sprite) []CollisionEvent {
	current := make(map[CollisionPair]bool)
	var events []CollisionEvent

	for i, a := range sprites {
		if !a.Collision {
			continue
		}
		boxA := a.Collider()
		for _, b := range sprites[i+1:] {
			if !b.Collision || !boxA.Overlaps(b.Collider()) {
				continue
			}
			pair := NewCollisionPair(a.Label, b.Label)
			current[pair] = true
			if !d.active[pair] {
				events = append(events, CollisionEvent{Pair: pair, State: CollisionBegin})
			}
		}
	}

	var ended []CollisionPair
	for pair := range d.active {
		if !current[pair] {
			ended = append(ended, pair)
		}
	}
	sort.Slice(ended, func(i, j int) bool {
		if ended[i][0] != ended[j][0] {
			return ended[i][0] < ended[j][0]
		}
		return ended[i][1] < ended[j][1]
	})
	for _, pair := range ended {
		events = append(events, CollisionEvent{Pair: pair, State: CollisionEnd})
	}

	d.active = current
	return events
}

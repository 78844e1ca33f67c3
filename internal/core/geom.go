// Package core provides fundamental types and utilities for the racer.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Vec2 is a point or offset in world space. Y grows upwards.
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a vector from its components.
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Box is a world-space axis-aligned bounding box given by its center and half extents.
type Box struct {
	Center Vec2
	Half   Vec2
}

// BoxAt builds a box centered at c with half extents (hw, hh).
func BoxAt(c Vec2, hw, hh float64) Box {
	return Box{Center: c, Half: Vec2{X: hw, Y: hh}}
}

// Overlaps reports whether two boxes intersect. Touching edges do not count.
func (b Box) Overlaps(o Box) bool {
	if b.Center.X+b.Half.X <= o.Center.X-o.Half.X || o.Center.X+o.Half.X <= b.Center.X-b.Half.X {
		return false
	}
	if b.Center.Y+b.Half.Y <= o.Center.Y-o.Half.Y || o.Center.Y+o.Half.Y <= b.Center.Y-b.Half.Y {
		return false
	}
	return true
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Package core provides fundamental types and utilities shared by the
// shooter simulation and its frontends. It contains no external
// dependencies (especially no Bubble Tea or Ebitengine) to keep game logic
// pure and testable.
package core

// Rect is an axis-aligned bounding box in integer pixel coordinates.
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

// CenterX returns the x-coordinate of the horizontal center.
func (r Rect) CenterX() int {
	return r.X + r.W/2
}

// Contains reports whether the point lies inside the rectangle, edges
// included.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// Overlaps reports whether two rectangles overlap using closed intervals:
// the x-ranges [X, Right] and y-ranges [Y, Bottom] must both intersect.
// Touching edges count as overlap.
func (r Rect) Overlaps(other Rect) bool {
	if r.X > other.Right() || other.X > r.Right() {
		return false
	}
	if r.Y > other.Bottom() || other.Y > r.Bottom() {
		return false
	}
	return true
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Package core provides fundamental types shared by the simulation engine
// and the terminal platform. It contains no external dependencies
// (especially no Bubble Tea) to keep the game logic pure and testable.
package core

// Vec2 is an integer 2D vector, used both for grid cells and for headings.
type Vec2 struct {
	X, Y int
}

// Headings are the four unit vectors a snake can travel along.
var (
	DirUp    = Vec2{X: 0, Y: -1}
	DirDown  = Vec2{X: 0, Y: 1}
	DirLeft  = Vec2{X: -1, Y: 0}
	DirRight = Vec2{X: 1, Y: 0}
)

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Opposite reports whether o points exactly the other way.
func (v Vec2) Opposite(o Vec2) bool {
	return v.X == -o.X && v.Y == -o.Y
}

// IsZero reports whether the vector is the zero vector.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vec2) String() string {
	switch v {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}

// Rect represents an axis-aligned rectangle on the grid.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

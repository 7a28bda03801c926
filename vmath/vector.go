package vmath

import "fmt"

// Vec2 is an integer grid coordinate, also used for headings
type Vec2 struct {
	X, Y int
}

// V builds a Vec2
func V(x, y int) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by k
func (v Vec2) Scale(k int) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Neg returns the reversed vector
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// IsAxisAligned reports whether exactly one component is nonzero
func (v Vec2) IsAxisAligned() bool {
	return (v.X == 0) != (v.Y == 0)
}

// Length returns the Manhattan length, which equals the Euclidean length for axis-aligned vectors
func (v Vec2) Length() int {
	return AbsInt(v.X) + AbsInt(v.Y)
}

// Negative reports whether the vector points toward decreasing x or y
func (v Vec2) Negative() bool {
	return v.X < 0 || v.Y < 0
}

// Rotate turns an axis-aligned vector by 90 degrees
// turn = +1 rotates left, turn = -1 rotates right (screen coordinates, y grows downward)
func (v Vec2) Rotate(turn int) Vec2 {
	if v.X == 0 {
		return Vec2{X: turn * v.Y, Y: 0}
	}
	return Vec2{X: 0, Y: -turn * v.X}
}

// Within reports whether o lies within d on both axes independently
func (v Vec2) Within(o Vec2, d int) bool {
	return AbsInt(v.X-o.X) <= d && AbsInt(v.Y-o.Y) <= d
}

// Snap rounds both components to the nearest multiple of unit
func (v Vec2) Snap(unit int) Vec2 {
	return Vec2{X: SnapInt(v.X, unit), Y: SnapInt(v.Y, unit)}
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

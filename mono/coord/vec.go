// Package coord provides integer 2D vectors and inclusive axis-aligned boxes.
//
// All operations return new values; nothing mutates in place.
package coord

import "fmt"

// Vec2 is a point or a size delta.
type Vec2 struct {
	X, Y int
}

// V is shorthand for Vec2{x, y}.
func V(x, y int) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale multiplies both components by k. k must not be zero.
func (v Vec2) Scale(k int) Vec2 {
	if k == 0 {
		panic("coord: Vec2.Scale by zero")
	}
	return Vec2{v.X * k, v.Y * k}
}

// Div divides both components by k, truncating toward zero. k must not be zero.
func (v Vec2) Div(k int) Vec2 {
	if k == 0 {
		panic("coord: Vec2.Div by zero")
	}
	return Vec2{v.X / k, v.Y / k}
}

func (v Vec2) String() string { return fmt.Sprintf("(%d,%d)", v.X, v.Y) }

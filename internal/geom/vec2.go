// Package geom holds the small amount of 2D vector math the movement code needs.
package geom

import (
	"fmt"
	"math"
)

// Vec2 is a 2D world-space vector.
type Vec2 struct {
	X float64
	Y float64
}

// Zero is the origin.
var Zero = Vec2{}

func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// ClampSymmetric clamps each axis of v into [-ext, ext].
func (v Vec2) ClampSymmetric(ext Vec2) Vec2 {
	return Vec2{
		X: Clamp(v.X, -ext.X, ext.X),
		Y: Clamp(v.Y, -ext.Y, ext.Y),
	}
}

// Within reports whether |v.X| <= ext.X and |v.Y| <= ext.Y.
func (v Vec2) Within(ext Vec2) bool {
	return math.Abs(v.X) <= ext.X && math.Abs(v.Y) <= ext.Y
}

func (v Vec2) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

// ApproxEqual compares both axes within eps.
func (v Vec2) ApproxEqual(o Vec2, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", v.X, v.Y)
}

// Clamp limits x to [lo, hi]. lo must not exceed hi.
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

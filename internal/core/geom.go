// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

import "math"

// Vec2 is a point or velocity in world units. World space is y-up.
type Vec2 struct {
	X, Y float64
}

// V returns a Vec2 with the given components.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Bearing returns the aiming angle in degrees from one point to another,
// measured from the vertical axis: atan(dx/dy). A target straight above or
// below gives 0.
//
// When both points share a y coordinate the ratio is undefined; the bearing
// is then ±90 following the sign of dx (90 when the points coincide).
func Bearing(from, to Vec2) float64 {
	dx := to.X - from.X
	dy := to.Y - from.Y
	if dy == 0 {
		if dx < 0 {
			return -90
		}
		return 90
	}
	return math.Atan(dx/dy) * 180 / math.Pi
}

// Heading converts a rotation in degrees (0 = straight up, clockwise positive)
// and a signed speed into a velocity vector.
func Heading(degrees, speed float64) Vec2 {
	rad := degrees * math.Pi / 180
	return Vec2{
		X: speed * math.Sin(rad),
		Y: speed * math.Cos(rad),
	}
}

// Rect represents an axis-aligned box in screen cells.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

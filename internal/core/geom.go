// Package core provides fundamental types and utilities for the starfield platform.
// It contains no terminal dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is a 2D vector in screen-space pixels (y grows downward).
type Vec2 = mgl64.Vec2

// Distance returns the Euclidean distance between two positions.
func Distance(a, b Vec2) float64 {
	return a.Sub(b).Len()
}

// FromAngle creates a vector pointing along angle (radians) with the given magnitude.
func FromAngle(angle, magnitude float64) Vec2 {
	return Vec2{math.Cos(angle) * magnitude, math.Sin(angle) * magnitude}
}

// ClampLength rescales v to max when its length exceeds max. Direction is preserved.
func ClampLength(v Vec2, max float64) Vec2 {
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Mul(max / l)
}

// Circle is the collision shape shared by every entity.
type Circle struct {
	Center Vec2
	Radius float64
}

// Overlaps reports whether the two circles intersect.
// Touching circles (distance == r1+r2) do not overlap.
func (c Circle) Overlaps(other Circle) bool {
	return Distance(c.Center, other.Center) < c.Radius+other.Radius
}

// CheckCollision returns true if a and b overlap. The result is symmetric.
func CheckCollision(a, b Circle) bool {
	return a.Overlaps(b)
}

// RandomBetween returns a uniform value in [min, max).
func RandomBetween(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

// Rect represents an axis-aligned box in screen cells, used for overlays.
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

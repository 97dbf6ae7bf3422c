// Package geom provides 2D vector math and circle collision predicates.
package geom

import "math"

// Vec is a 2D point or velocity. Operations return new values; a Vec is
// never mutated in place.
type Vec struct {
	X, Y float64
}

// Add returns the sum of two vectors.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the difference between two vectors.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies the vector by a scalar.
func (v Vec) Scale(f float64) Vec {
	return Vec{X: v.X * f, Y: v.Y * f}
}

// Len returns the Euclidean magnitude of the vector.
func (v Vec) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LenSquared returns the magnitude squared.
// Use this when comparing distances to avoid the sqrt cost.
func (v Vec) LenSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Vec) float64 {
	return b.Sub(a).Len()
}

// CirclesOverlap reports whether two circles overlap. Touching circles
// (distance exactly equal to the sum of radii) do not count as overlapping.
func CirclesOverlap(a Vec, ra float64, b Vec, rb float64) bool {
	minDist := ra + rb
	return b.Sub(a).LenSquared() < minDist*minDist
}

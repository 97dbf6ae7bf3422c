// Package object defines the entities that live in the playfield: the
// player craft, its projectiles, and the drifting obstacles.
package object

import "github.com/driftblast/driftblast/internal/geom"

// Virtual playfield dimensions. All simulation math happens in this fixed
// logical coordinate space; renderers scale it to whatever display they have.
const (
	PlayfieldWidth  = 800
	PlayfieldHeight = 600
)

// Entity is the capability shared by everything the simulation moves:
// a circular body with a position, a velocity, and a per-frame tick.
// Position advances by exactly the current velocity once per tick.
type Entity interface {
	Pos() geom.Vec
	Vel() geom.Vec
	Radius() float64
	Tick()
}

// Collides reports whether the bounding circles of two entities overlap.
// The test is symmetric: Collides(a, b) == Collides(b, a).
func Collides(a, b Entity) bool {
	return geom.CirclesOverlap(a.Pos(), a.Radius(), b.Pos(), b.Radius())
}

package object

import (
	"math"
	"math/rand"

	"github.com/driftblast/driftblast/internal/geom"
)

// Tier is an obstacle's size class. It determines the collision radius and
// what the obstacle breaks into when destroyed.
type Tier int

const (
	TierSmall Tier = iota + 1
	TierMedium
	TierLarge
)

var tierRadii = map[Tier]float64{
	TierLarge:  40,
	TierMedium: 20,
	TierSmall:  10,
}

// String returns the tier name for logs and test output.
func (t Tier) String() string {
	switch t {
	case TierLarge:
		return "large"
	case TierMedium:
		return "medium"
	case TierSmall:
		return "small"
	default:
		return "unknown"
	}
}

// outlineVertices is the number of points in an obstacle's outline polygon.
const outlineVertices = 10

// fragmentMaxSpeed bounds the per-axis velocity of spawned obstacles:
// uniform in [-fragmentMaxSpeed, fragmentMaxSpeed].
const fragmentMaxSpeed = 2.0

// Obstacle is a drifting rock. Its irregular outline is generated once at
// creation and never mutated; the outline is cosmetic, collision uses the
// tier radius.
type Obstacle struct {
	P, V    geom.Vec
	Tier    Tier
	Outline []geom.Vec // Vertex offsets from center, clockwise
}

// NewObstacle creates an obstacle of the given tier at p with a random
// drift velocity.
func NewObstacle(p geom.Vec, tier Tier) *Obstacle {
	radius := tierRadii[tier]

	// Evenly spaced vertices with ±50% radial jitter.
	outline := make([]geom.Vec, outlineVertices)
	for i := range outline {
		angle := float64(i) * 2 * math.Pi / outlineVertices
		dist := radius * (0.5 + rand.Float64())
		outline[i] = geom.Vec{X: math.Sin(angle) * dist, Y: -math.Cos(angle) * dist}
	}

	return &Obstacle{
		P:       p,
		V:       randDrift(),
		Tier:    tier,
		Outline: outline,
	}
}

func randDrift() geom.Vec {
	return geom.Vec{
		X: (rand.Float64()*2 - 1) * fragmentMaxSpeed,
		Y: (rand.Float64()*2 - 1) * fragmentMaxSpeed,
	}
}

// Pos returns the obstacle's center position.
func (o *Obstacle) Pos() geom.Vec { return o.P }

// Vel returns the obstacle's velocity.
func (o *Obstacle) Vel() geom.Vec { return o.V }

// Radius returns the collision radius for the obstacle's tier.
func (o *Obstacle) Radius() float64 { return tierRadii[o.Tier] }

// Tick integrates position. Wrapping is applied externally by the
// simulation controller.
func (o *Obstacle) Tick() {
	o.P = o.P.Add(o.V)
}

// Fragment returns the obstacles this one breaks into when destroyed:
// two of the next smaller tier at the parent's exact position, each with
// an independently randomized velocity. Small obstacles return nil.
func (o *Obstacle) Fragment() []*Obstacle {
	var child Tier
	switch o.Tier {
	case TierLarge:
		child = TierMedium
	case TierMedium:
		child = TierSmall
	default:
		return nil
	}
	return []*Obstacle{
		NewObstacle(o.P, child),
		NewObstacle(o.P, child),
	}
}

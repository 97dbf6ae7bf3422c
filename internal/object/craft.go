package object

import (
	"math"

	"github.com/driftblast/driftblast/internal/geom"
)

// Craft tuning. Rotation and thrust are applied once per frame while the
// corresponding control is held.
const (
	CraftRadius  = 10.0 // Collision radius
	RotateStep   = 0.1  // Radians per frame
	ThrustAccel  = 0.1  // Velocity gained per frame of thrust
	ShotCooldown = 15   // Frames between shots
)

// Craft is the player-controlled ship.
type Craft struct {
	P, V  geom.Vec
	Angle float64 // Radians, unbounded; 0 points "up" with screen Y down

	// ThrustActive is set by Thrust for the frame the impulse was applied
	// and consumed by renderers (exhaust mark). The simulation resets it
	// at the start of every update.
	ThrustActive bool

	// Cooldown is the number of frames until the next shot is allowed.
	Cooldown int
}

// NewCraft creates a craft at rest at the given position, facing up.
func NewCraft(p geom.Vec) *Craft {
	return &Craft{P: p}
}

// Pos returns the craft's center position.
func (c *Craft) Pos() geom.Vec { return c.P }

// Vel returns the craft's velocity.
func (c *Craft) Vel() geom.Vec { return c.V }

// Radius returns the craft's collision radius.
func (c *Craft) Radius() float64 { return CraftRadius }

// Facing returns the unit vector the craft points along. With screen
// coordinates (Y down), angle 0 faces up and the angle grows clockwise.
func (c *Craft) Facing() geom.Vec {
	return geom.Vec{X: math.Sin(c.Angle), Y: -math.Cos(c.Angle)}
}

// RotateLeft turns the craft counter-clockwise by one rotation step.
func (c *Craft) RotateLeft() {
	c.Angle -= RotateStep
}

// RotateRight turns the craft clockwise by one rotation step.
func (c *Craft) RotateRight() {
	c.Angle += RotateStep
}

// Thrust adds one frame of acceleration along the facing vector and flags
// the craft as thrusting for this frame.
func (c *Craft) Thrust() {
	c.ThrustActive = true
	c.V = c.V.Add(c.Facing().Scale(ThrustAccel))
}

// TryShoot fires a projectile from the craft's position along its facing
// vector. Returns nil while the cooldown is still running; firing on
// cooldown is a silent no-op, not an error.
func (c *Craft) TryShoot() *Projectile {
	if c.Cooldown > 0 {
		return nil
	}
	c.Cooldown = ShotCooldown
	return NewProjectile(c.P, c.Facing().Scale(ProjectileSpeed))
}

// Tick advances the craft by one frame: integrates position and counts
// the shot cooldown down, floored at zero.
func (c *Craft) Tick() {
	c.P = c.P.Add(c.V)
	if c.Cooldown > 0 {
		c.Cooldown--
	}
}

package object

import "github.com/driftblast/driftblast/internal/geom"

// Projectile tuning.
const (
	ProjectileSpeed  = 5.0 // Units per frame
	ProjectileRadius = 2.0 // Collision radius
	ProjectileLife   = 90  // Frames before self-expiry
)

// Projectile is a shot fired by the craft. Unlike the craft and obstacles
// it never wraps around the playfield: leaving the bounds expires it.
type Projectile struct {
	P, V    geom.Vec
	Life    int
	Expired bool
}

// NewProjectile creates a projectile with a full lifespan.
func NewProjectile(p, v geom.Vec) *Projectile {
	return &Projectile{P: p, V: v, Life: ProjectileLife}
}

// Pos returns the projectile's position.
func (p *Projectile) Pos() geom.Vec { return p.P }

// Vel returns the projectile's velocity.
func (p *Projectile) Vel() geom.Vec { return p.V }

// Radius returns the projectile's collision radius.
func (p *Projectile) Radius() float64 { return ProjectileRadius }

// Tick integrates position and burns one frame of lifespan. The projectile
// expires when its life runs out or it leaves the playfield.
func (p *Projectile) Tick() {
	p.P = p.P.Add(p.V)
	p.Life--
	if p.Life <= 0 || p.outOfBounds() {
		p.Expired = true
	}
}

func (p *Projectile) outOfBounds() bool {
	return p.P.X < 0 || p.P.X > PlayfieldWidth || p.P.Y < 0 || p.P.Y > PlayfieldHeight
}

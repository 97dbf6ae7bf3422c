package object

import (
	"math"
	"testing"

	"github.com/driftblast/driftblast/internal/geom"
)

func TestCraftRotation(t *testing.T) {
	c := NewCraft(geom.Vec{X: 100, Y: 100})

	c.RotateRight()
	if math.Abs(c.Angle-RotateStep) > 1e-9 {
		t.Errorf("after RotateRight, angle = %v, want %v", c.Angle, RotateStep)
	}

	c.RotateLeft()
	c.RotateLeft()
	if math.Abs(c.Angle+RotateStep) > 1e-9 {
		t.Errorf("after RotateLeft x2, angle = %v, want %v", c.Angle, -RotateStep)
	}

	// No clamping: the angle may grow past 2π.
	for i := 0; i < 100; i++ {
		c.RotateRight()
	}
	if c.Angle < 2*math.Pi {
		t.Errorf("angle should be unbounded, got %v", c.Angle)
	}
}

func TestCraftThrust(t *testing.T) {
	c := NewCraft(geom.Vec{X: 100, Y: 100})

	// Angle 0 faces up on screen: the impulse is (0, -ThrustAccel).
	c.Thrust()
	if !c.ThrustActive {
		t.Error("Thrust should set ThrustActive")
	}
	if math.Abs(c.V.X) > 1e-9 || math.Abs(c.V.Y+ThrustAccel) > 1e-9 {
		t.Errorf("velocity after thrust = %+v, want (0, %v)", c.V, -ThrustAccel)
	}

	// Facing right (angle π/2) the impulse is along +X.
	c2 := NewCraft(geom.Vec{})
	c2.Angle = math.Pi / 2
	c2.Thrust()
	if math.Abs(c2.V.X-ThrustAccel) > 1e-9 || math.Abs(c2.V.Y) > 1e-9 {
		t.Errorf("velocity after thrust at π/2 = %+v, want (%v, 0)", c2.V, ThrustAccel)
	}
}

func TestCraftTickIntegratesVelocity(t *testing.T) {
	c := NewCraft(geom.Vec{X: 10, Y: 20})
	c.V = geom.Vec{X: 3, Y: -2}

	c.Tick()

	want := geom.Vec{X: 13, Y: 18}
	if c.P != want {
		t.Errorf("position after tick = %+v, want %+v", c.P, want)
	}
}

func TestCraftShootCooldown(t *testing.T) {
	c := NewCraft(geom.Vec{X: 400, Y: 300})

	p := c.TryShoot()
	if p == nil {
		t.Fatal("first shot should fire")
	}
	if p.P != c.P {
		t.Errorf("projectile spawns at craft position, got %+v", p.P)
	}
	if math.Abs(p.V.Len()-ProjectileSpeed) > 1e-9 {
		t.Errorf("projectile speed = %v, want %v", p.V.Len(), ProjectileSpeed)
	}

	if c.TryShoot() != nil {
		t.Error("second shot in the same frame should be blocked")
	}

	// One tick later the cooldown is still running.
	c.Tick()
	if c.TryShoot() != nil {
		t.Error("shot on the next frame should still be blocked")
	}

	// After the full cooldown the craft can fire again.
	for i := 0; i < ShotCooldown; i++ {
		c.Tick()
	}
	if c.TryShoot() == nil {
		t.Error("shot after cooldown should fire")
	}
}

func TestCraftCooldownFloorsAtZero(t *testing.T) {
	c := NewCraft(geom.Vec{})
	for i := 0; i < ShotCooldown*2; i++ {
		c.Tick()
	}
	if c.Cooldown != 0 {
		t.Errorf("cooldown = %d, want 0", c.Cooldown)
	}
}

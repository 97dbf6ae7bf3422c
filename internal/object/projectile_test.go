package object

import (
	"testing"

	"github.com/driftblast/driftblast/internal/geom"
)

func TestProjectileTickIntegratesVelocity(t *testing.T) {
	p := NewProjectile(geom.Vec{X: 100, Y: 100}, geom.Vec{X: 5, Y: -3})

	p.Tick()

	want := geom.Vec{X: 105, Y: 97}
	if p.P != want {
		t.Errorf("position after tick = %+v, want %+v", p.P, want)
	}
	if p.Expired {
		t.Error("in-bounds projectile with life left should not expire")
	}
}

func TestProjectileExpiresWhenLifeRunsOut(t *testing.T) {
	p := NewProjectile(geom.Vec{X: 400, Y: 300}, geom.Vec{})
	p.Life = 1

	p.Tick()

	if !p.Expired {
		t.Error("projectile with 1 frame of life should expire after one tick even at rest")
	}
}

func TestProjectileExpiresOutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		pos  geom.Vec
		vel  geom.Vec
	}{
		{"right edge", geom.Vec{X: PlayfieldWidth - 1, Y: 300}, geom.Vec{X: 5}},
		{"left edge", geom.Vec{X: 1, Y: 300}, geom.Vec{X: -5}},
		{"bottom edge", geom.Vec{X: 400, Y: PlayfieldHeight - 1}, geom.Vec{Y: 5}},
		{"top edge", geom.Vec{X: 400, Y: 1}, geom.Vec{Y: -5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProjectile(tt.pos, tt.vel)

			p.Tick()

			if !p.Expired {
				t.Error("projectile leaving the playfield should expire")
			}
			// Projectiles never wrap: the out-of-bounds position stands.
			want := tt.pos.Add(tt.vel)
			if p.P != want {
				t.Errorf("position = %+v, want %+v (no wrapping)", p.P, want)
			}
		})
	}
}

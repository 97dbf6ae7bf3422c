package sim

import (
	"testing"

	"github.com/driftblast/driftblast/internal/geom"
	"github.com/driftblast/driftblast/internal/object"
)

// stillObstacle builds an obstacle at rest so tests control all motion.
func stillObstacle(p geom.Vec, tier object.Tier) *object.Obstacle {
	o := object.NewObstacle(p, tier)
	o.V = geom.Vec{}
	return o
}

func TestNewState(t *testing.T) {
	s := NewState()

	if s.Lives != InitialLives {
		t.Errorf("lives = %d, want %d", s.Lives, InitialLives)
	}
	if s.Score != 0 || s.Level != 1 || s.Over {
		t.Errorf("unexpected initial bookkeeping: score=%d level=%d over=%v", s.Score, s.Level, s.Over)
	}

	center := geom.Vec{X: object.PlayfieldWidth / 2, Y: object.PlayfieldHeight / 2}
	if s.Craft.P != center {
		t.Errorf("craft at %+v, want centered at %+v", s.Craft.P, center)
	}
	if s.Craft.V != (geom.Vec{}) || s.Craft.Angle != 0 {
		t.Errorf("craft should start at rest facing up: vel=%+v angle=%v", s.Craft.V, s.Craft.Angle)
	}

	// Initial wave: level + WaveBase large obstacles, clear of the craft.
	if len(s.Obstacles) != 1+WaveBase {
		t.Errorf("initial wave has %d obstacles, want %d", len(s.Obstacles), 1+WaveBase)
	}
	for _, o := range s.Obstacles {
		if o.Tier != object.TierLarge {
			t.Errorf("initial obstacle tier = %v, want large", o.Tier)
		}
		if d := geom.Dist(o.P, s.Craft.P); d <= SafeSpawnRadius {
			t.Errorf("obstacle spawned %v from craft, want > %v", d, SafeSpawnRadius)
		}
	}
}

func TestWrappingCraftAndObstacles(t *testing.T) {
	tests := []struct {
		name string
		pos  geom.Vec
		want geom.Vec
	}{
		{"x below zero", geom.Vec{X: -1, Y: 300}, geom.Vec{X: object.PlayfieldWidth - 1, Y: 300}},
		{"x past width", geom.Vec{X: object.PlayfieldWidth + 1, Y: 300}, geom.Vec{X: 1, Y: 300}},
		{"y below zero", geom.Vec{X: 400, Y: -1}, geom.Vec{X: 400, Y: object.PlayfieldHeight - 1}},
		{"y past height", geom.Vec{X: 400, Y: object.PlayfieldHeight + 1}, geom.Vec{X: 400, Y: 1}},
	}
	for _, tt := range tests {
		t.Run("craft "+tt.name, func(t *testing.T) {
			s := &State{
				Craft:     object.NewCraft(tt.pos),
				Lives:     InitialLives,
				Level:     1,
				Obstacles: []*object.Obstacle{stillObstacle(geom.Vec{X: 200, Y: 150}, object.TierSmall)},
			}
			s.Step(Input{})
			if s.Craft.P != tt.want {
				t.Errorf("craft wrapped to %+v, want %+v", s.Craft.P, tt.want)
			}
		})
		t.Run("obstacle "+tt.name, func(t *testing.T) {
			o := stillObstacle(tt.pos, object.TierSmall)
			s := &State{
				Craft:     object.NewCraft(geom.Vec{X: 400, Y: 300}),
				Lives:     InitialLives,
				Level:     1,
				Obstacles: []*object.Obstacle{o},
			}
			// Keep the craft clear of the wrapped obstacle.
			if geom.Dist(s.Craft.P, tt.want) < 100 {
				s.Craft.P = geom.Vec{X: 100, Y: 500}
			}
			s.Step(Input{})
			if o.P != tt.want {
				t.Errorf("obstacle wrapped to %+v, want %+v", o.P, tt.want)
			}
		})
	}
}

func TestProjectilesDoNotWrap(t *testing.T) {
	s := &State{
		Craft:     object.NewCraft(geom.Vec{X: 400, Y: 300}),
		Lives:     InitialLives,
		Level:     1,
		Obstacles: []*object.Obstacle{stillObstacle(geom.Vec{X: 100, Y: 100}, object.TierSmall)},
		Projectiles: []*object.Projectile{
			object.NewProjectile(geom.Vec{X: object.PlayfieldWidth - 1, Y: 500}, geom.Vec{X: 5}),
		},
	}

	s.Step(Input{})

	if len(s.Projectiles) != 0 {
		t.Error("out-of-bounds projectile should expire and be pruned, not wrap")
	}
}

func TestScoreAccounting(t *testing.T) {
	// One projectile parked on each tier; destroying large, medium, and
	// small pays 20 + 50 + 100 = 170.
	large := stillObstacle(geom.Vec{X: 100, Y: 100}, object.TierLarge)
	medium := stillObstacle(geom.Vec{X: 400, Y: 100}, object.TierMedium)
	small := stillObstacle(geom.Vec{X: 700, Y: 100}, object.TierSmall)

	s := &State{
		Craft:     object.NewCraft(geom.Vec{X: 400, Y: 500}),
		Lives:     InitialLives,
		Level:     1,
		Obstacles: []*object.Obstacle{large, medium, small},
		Projectiles: []*object.Projectile{
			object.NewProjectile(geom.Vec{X: 100, Y: 100}, geom.Vec{}),
			object.NewProjectile(geom.Vec{X: 400, Y: 100}, geom.Vec{}),
			object.NewProjectile(geom.Vec{X: 700, Y: 100}, geom.Vec{}),
		},
	}

	s.Step(Input{})

	if s.Score != 170 {
		t.Errorf("score = %d, want 170", s.Score)
	}
	if len(s.Projectiles) != 0 {
		t.Errorf("%d projectiles left, want all expired and pruned", len(s.Projectiles))
	}
	// Large -> 2 medium, medium -> 2 small, small -> nothing.
	if len(s.Obstacles) != 4 {
		t.Errorf("%d obstacles after fragmentation, want 4", len(s.Obstacles))
	}
}

func TestFragmentsReplaceObstacleSameFrame(t *testing.T) {
	parent := stillObstacle(geom.Vec{X: 100, Y: 100}, object.TierLarge)
	s := &State{
		Craft:     object.NewCraft(geom.Vec{X: 600, Y: 500}),
		Lives:     InitialLives,
		Level:     1,
		Obstacles: []*object.Obstacle{parent},
		Projectiles: []*object.Projectile{
			object.NewProjectile(geom.Vec{X: 100, Y: 100}, geom.Vec{}),
		},
	}

	s.Step(Input{})

	if len(s.Obstacles) != 2 {
		t.Fatalf("%d obstacles, want 2 medium fragments", len(s.Obstacles))
	}
	for _, f := range s.Obstacles {
		if f.Tier != object.TierMedium {
			t.Errorf("fragment tier = %v, want medium", f.Tier)
		}
	}
}

func TestCraftHitRespawnsWithLivesLeft(t *testing.T) {
	hit := stillObstacle(geom.Vec{X: 100, Y: 100}, object.TierLarge)
	other := stillObstacle(geom.Vec{X: 700, Y: 500}, object.TierLarge)
	s := &State{
		Craft:     object.NewCraft(geom.Vec{X: 100, Y: 100}),
		Lives:     InitialLives,
		Level:     1,
		Obstacles: []*object.Obstacle{hit, other},
	}
	s.Craft.Angle = 1.5
	s.Craft.V = geom.Vec{X: 2, Y: 2}

	s.Step(Input{})

	if s.Lives != InitialLives-1 {
		t.Errorf("lives = %d, want %d", s.Lives, InitialLives-1)
	}
	if s.Over {
		t.Error("game should not end with lives remaining")
	}

	center := geom.Vec{X: object.PlayfieldWidth / 2, Y: object.PlayfieldHeight / 2}
	if s.Craft.P != center || s.Craft.V != (geom.Vec{}) || s.Craft.Angle != 0 {
		t.Errorf("craft should respawn centered at rest facing up: pos=%+v vel=%+v angle=%v",
			s.Craft.P, s.Craft.V, s.Craft.Angle)
	}

	// The respawn resets only the craft; obstacles stay where they are.
	if len(s.Obstacles) != 2 {
		t.Errorf("%d obstacles after respawn, want 2", len(s.Obstacles))
	}
}

func TestCraftHitOnLastLifeEndsGame(t *testing.T) {
	pos := geom.Vec{X: 100, Y: 100}
	s := &State{
		Craft:     object.NewCraft(pos),
		Lives:     1,
		Level:     1,
		Obstacles: []*object.Obstacle{stillObstacle(pos, object.TierLarge)},
	}

	s.Step(Input{})

	if !s.Over {
		t.Fatal("losing the last life should end the game")
	}
	// No respawn on game over.
	if s.Craft.P != pos {
		t.Errorf("craft moved to %+v on game over, want untouched at %+v", s.Craft.P, pos)
	}
}

func TestGameOverIsTerminal(t *testing.T) {
	pos := geom.Vec{X: 100, Y: 100}
	s := &State{
		Craft:     object.NewCraft(pos),
		Lives:     1,
		Level:     1,
		Obstacles: []*object.Obstacle{stillObstacle(pos, object.TierLarge)},
	}
	s.Step(Input{})
	if !s.Over {
		t.Fatal("setup should end the game")
	}

	score, level, obstacles := s.Score, s.Level, len(s.Obstacles)
	for i := 0; i < 10; i++ {
		s.Step(Input{Left: true, Thrust: true, Fire: true})
	}

	if !s.Over {
		t.Error("Over must never revert")
	}
	if s.Score != score || s.Level != level || len(s.Obstacles) != obstacles {
		t.Error("ticks after game over must not mutate state")
	}
	if s.Craft.P != pos {
		t.Errorf("craft moved after game over: %+v", s.Craft.P)
	}
}

func TestFireCooldownGating(t *testing.T) {
	s := &State{
		Craft:     object.NewCraft(geom.Vec{X: 400, Y: 300}),
		Lives:     InitialLives,
		Level:     1,
		Obstacles: []*object.Obstacle{stillObstacle(geom.Vec{X: 60, Y: 60}, object.TierSmall)},
	}

	s.Step(Input{Fire: true})
	if len(s.Projectiles) != 1 {
		t.Fatalf("after first fire: %d projectiles, want 1", len(s.Projectiles))
	}

	s.Step(Input{Fire: true})
	if len(s.Projectiles) != 1 {
		t.Errorf("firing on cooldown produced a projectile: %d total", len(s.Projectiles))
	}
}

func TestLevelProgression(t *testing.T) {
	s := &State{
		Craft: object.NewCraft(geom.Vec{X: 400, Y: 300}),
		Lives: InitialLives,
		Level: 1,
	}

	s.Step(Input{})

	if s.Level != 2 {
		t.Fatalf("level = %d, want 2", s.Level)
	}
	if len(s.Obstacles) != 2+WaveBase {
		t.Errorf("new wave has %d obstacles, want %d", len(s.Obstacles), 2+WaveBase)
	}
	for _, o := range s.Obstacles {
		if o.Tier != object.TierLarge {
			t.Errorf("wave obstacle tier = %v, want large", o.Tier)
		}
		if d := geom.Dist(o.P, s.Craft.P); d <= SafeSpawnRadius {
			t.Errorf("wave obstacle %v from craft, want > %v", d, SafeSpawnRadius)
		}
	}
}

func TestThrustFlagVisibleForOneFrame(t *testing.T) {
	s := &State{
		Craft:     object.NewCraft(geom.Vec{X: 400, Y: 300}),
		Lives:     InitialLives,
		Level:     1,
		Obstacles: []*object.Obstacle{stillObstacle(geom.Vec{X: 60, Y: 60}, object.TierSmall)},
	}

	s.Step(Input{Thrust: true})
	if !s.Snapshot().Thrusting {
		t.Error("renderer should see the thrust flag on the frame it fired")
	}

	s.Step(Input{})
	if s.Snapshot().Thrusting {
		t.Error("thrust flag should reset on the next update")
	}
}

func TestInputApplication(t *testing.T) {
	s := &State{
		Craft:     object.NewCraft(geom.Vec{X: 400, Y: 300}),
		Lives:     InitialLives,
		Level:     1,
		Obstacles: []*object.Obstacle{stillObstacle(geom.Vec{X: 60, Y: 60}, object.TierSmall)},
	}

	s.Step(Input{Right: true})
	if s.Craft.Angle != object.RotateStep {
		t.Errorf("angle = %v, want %v", s.Craft.Angle, object.RotateStep)
	}

	s.Step(Input{Left: true})
	s.Step(Input{Left: true})
	if s.Craft.Angle != -object.RotateStep {
		t.Errorf("angle = %v, want %v", s.Craft.Angle, -object.RotateStep)
	}
}

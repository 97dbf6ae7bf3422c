// Package sim owns the game state and runs the fixed per-tick update
// pipeline: input application, integration, wrapping, collision
// resolution, lifecycle pruning, and level progression.
package sim

import (
	"math"
	"math/rand"

	"github.com/driftblast/driftblast/internal/geom"
	"github.com/driftblast/driftblast/internal/input"
	"github.com/driftblast/driftblast/internal/object"
)

// Input is the per-frame input snapshot consumed by Step.
type Input = input.Snapshot

// State is the complete simulation state. It exclusively owns all
// entities; renderers only ever see value snapshots.
type State struct {
	Craft       *object.Craft
	Obstacles   []*object.Obstacle
	Projectiles []*object.Projectile
	Score       int
	Lives       int
	Level       int
	Over        bool
}

// NewState creates a fresh game: full lives, level 1, the craft centered
// and at rest, and an initial wave of large obstacles.
func NewState() *State {
	s := &State{
		Craft: object.NewCraft(playfieldCenter()),
		Lives: InitialLives,
		Level: 1,
	}
	s.spawnWave()
	return s
}

func playfieldCenter() geom.Vec {
	return geom.Vec{X: object.PlayfieldWidth / 2, Y: object.PlayfieldHeight / 2}
}

// Step advances the simulation by one tick. Once Over is set the state is
// terminal and Step does nothing; callers may keep rendering the final
// snapshot.
func (s *State) Step(in Input) {
	if s.Over {
		return
	}

	// The thrust flag from the previous tick has been consumed by the
	// renderer by now; reset it before reading new input.
	s.Craft.ThrustActive = false

	// 1. Input application.
	if in.Left {
		s.Craft.RotateLeft()
	}
	if in.Right {
		s.Craft.RotateRight()
	}
	if in.Thrust {
		s.Craft.Thrust()
	}
	if in.Fire {
		if p := s.Craft.TryShoot(); p != nil {
			s.Projectiles = append(s.Projectiles, p)
		}
	}

	// 2. Integration.
	s.Craft.Tick()
	for _, o := range s.Obstacles {
		o.Tick()
	}
	for _, p := range s.Projectiles {
		p.Tick()
	}

	// 3. Wrapping. Projectiles are exempt: they self-expire instead.
	s.Craft.P = wrap(s.Craft.P)
	for _, o := range s.Obstacles {
		o.P = wrap(o.P)
	}

	// 4. Craft-obstacle collisions.
	if s.resolveCraftHit() {
		return
	}

	// 5. Projectile-obstacle collisions: destroyed obstacles are replaced
	// by their fragments within the same frame.
	s.resolveShots()

	// 6. Prune expired projectiles.
	s.pruneProjectiles()

	// 7. Level progression.
	if len(s.Obstacles) == 0 {
		s.Level++
		s.spawnWave()
	}
}

// wrap applies toroidal position correction: leaving one edge of the
// playfield re-enters the opposite edge.
func wrap(p geom.Vec) geom.Vec {
	p.X = math.Mod(p.X, object.PlayfieldWidth)
	if p.X < 0 {
		p.X += object.PlayfieldWidth
	}
	p.Y = math.Mod(p.Y, object.PlayfieldHeight)
	if p.Y < 0 {
		p.Y += object.PlayfieldHeight
	}
	return p
}

// resolveCraftHit checks the craft against every obstacle. A hit costs a
// life; with lives left the craft respawns centered, at rest, facing up,
// and the obstacles stay where they are. Running out of lives ends the
// game, and the game-over frame does not advance further. Reports whether
// the game just ended.
func (s *State) resolveCraftHit() bool {
	for _, o := range s.Obstacles {
		if !object.Collides(s.Craft, o) {
			continue
		}
		s.Lives--
		if s.Lives <= 0 {
			s.Over = true
			return true
		}
		s.Craft = object.NewCraft(playfieldCenter())
		return false
	}
	return false
}

// resolveShots tests every live projectile against every obstacle. On
// overlap the projectile expires, the obstacle is replaced by its
// fragments, and the destroyed tier is scored. Fragments spawned this
// frame are not re-tested until the next tick.
func (s *State) resolveShots() {
	kept := s.Obstacles[:0]
	var spawned []*object.Obstacle

	for _, o := range s.Obstacles {
		hit := false
		for _, p := range s.Projectiles {
			if p.Expired {
				continue
			}
			if object.Collides(p, o) {
				p.Expired = true
				hit = true
				break
			}
		}
		if !hit {
			kept = append(kept, o)
			continue
		}
		s.Score += tierScore(o.Tier)
		spawned = append(spawned, o.Fragment()...)
	}

	s.Obstacles = append(kept, spawned...)
}

func tierScore(t object.Tier) int {
	switch t {
	case object.TierLarge:
		return ScoreLargeObstacle
	case object.TierMedium:
		return ScoreMediumObstacle
	case object.TierSmall:
		return ScoreSmallObstacle
	default:
		return 0
	}
}

func (s *State) pruneProjectiles() {
	kept := s.Projectiles[:0]
	for _, p := range s.Projectiles {
		if !p.Expired {
			kept = append(kept, p)
		}
	}
	s.Projectiles = kept
}

// spawnWave populates the playfield with Level+WaveBase large obstacles,
// each placed at least SafeSpawnRadius away from the craft.
func (s *State) spawnWave() {
	count := s.Level + WaveBase
	for i := 0; i < count; i++ {
		s.Obstacles = append(s.Obstacles, object.NewObstacle(s.placeAwayFromCraft(), object.TierLarge))
	}
}

// placeAwayFromCraft samples uniform playfield positions, rejecting any
// within SafeSpawnRadius of the craft. The retry count is bounded; a
// pathological configuration falls back to the last sample.
func (s *State) placeAwayFromCraft() geom.Vec {
	var p geom.Vec
	for i := 0; i < maxPlacementAttempts; i++ {
		p = geom.Vec{
			X: rand.Float64() * object.PlayfieldWidth,
			Y: rand.Float64() * object.PlayfieldHeight,
		}
		if geom.Dist(p, s.Craft.P) > SafeSpawnRadius {
			break
		}
	}
	return p
}

package sim

import "github.com/driftblast/driftblast/internal/geom"

// Snapshot is a value copy of the state a renderer needs for one frame.
// Presentation adapters hold no entity state across frames; they read a
// fresh snapshot after every tick.
type Snapshot struct {
	CraftPos    geom.Vec
	CraftAngle  float64
	CraftRadius float64
	Thrusting   bool
	Obstacles   []ObstacleShape
	Projectiles []geom.Vec
	Score       int
	Lives       int
	Level       int
	Over        bool
}

// ObstacleShape is the drawable form of an obstacle: its center plus the
// outline offsets. The outline slice is shared, not copied; it is
// immutable after the obstacle is created.
type ObstacleShape struct {
	Pos     geom.Vec
	Outline []geom.Vec
}

// Snapshot builds the render view of the current state.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		CraftPos:    s.Craft.P,
		CraftAngle:  s.Craft.Angle,
		CraftRadius: s.Craft.Radius(),
		Thrusting:   s.Craft.ThrustActive,
		Obstacles:   make([]ObstacleShape, len(s.Obstacles)),
		Projectiles: make([]geom.Vec, len(s.Projectiles)),
		Score:       s.Score,
		Lives:       s.Lives,
		Level:       s.Level,
		Over:        s.Over,
	}
	for i, o := range s.Obstacles {
		snap.Obstacles[i] = ObstacleShape{Pos: o.P, Outline: o.Outline}
	}
	for i, p := range s.Projectiles {
		snap.Projectiles[i] = p.P
	}
	return snap
}

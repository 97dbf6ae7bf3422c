package sim

// Game tuning. All tunable simulation parameters are centralized here.

// Scoring. Reward grows as pieces get smaller: close-range shots on
// fragments pay more than the first hit on a large rock.
const (
	ScoreLargeObstacle  = 20
	ScoreMediumObstacle = 50
	ScoreSmallObstacle  = 100
)

// Lives
const InitialLives = 3

// Waves
const (
	// WaveBase is added to the level to size each obstacle wave.
	WaveBase = 3

	// SafeSpawnRadius is the minimum distance between the craft and a
	// freshly placed obstacle.
	SafeSpawnRadius = 100.0

	// maxPlacementAttempts bounds the rejection sampling for obstacle
	// placement. If the safety radius ever covered the whole playfield the
	// sampler would loop forever; past the bound the last sample is
	// accepted as-is.
	maxPlacementAttempts = 64
)

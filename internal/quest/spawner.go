package quest

import (
	"math/rand"

	"github.com/vovakirdan/jerrys-quest/internal/config"
)

// Spawner places the next platform to the right of the last one.
// Gaps never exceed the distance a single jump can cover, so the level is
// always traversable without any pathfinding.
type Spawner struct {
	rng    *rand.Rand
	cfg    config.SpawnerConfig
	minGap float64
	maxGap float64
}

// NewSpawner creates a spawner drawing from rng.
// cfg must have passed config.Validate.
func NewSpawner(cfg config.QuestConfig, rng *rand.Rand) *Spawner {
	minGap, maxGap := cfg.GapRange()
	return &Spawner{
		rng:    rng,
		cfg:    cfg.Spawner,
		minGap: minGap,
		maxGap: maxGap,
	}
}

// GapRange returns the horizontal gap bounds in use.
func (s *Spawner) GapRange() (float64, float64) {
	return s.minGap, s.maxGap
}

// Next returns a new platform following last.
func (s *Spawner) Next(last Platform) Platform {
	gap := s.uniform(s.minGap, s.maxGap)

	kind := PlatformSmall
	if s.rng.Intn(2) == 1 {
		kind = PlatformBig
	}

	// Vertical step is bounded relative to last and clamped to the playable
	// band. A previous platform outside the band collapses the range onto
	// the nearest band edge.
	lo := max(last.Pos.Y-s.cfg.MaxStep, s.cfg.MinY)
	hi := min(last.Pos.Y+s.cfg.MaxStep, s.cfg.MaxY)
	lo = min(lo, s.cfg.MaxY)
	hi = max(hi, s.cfg.MinY)
	y := s.uniform(lo, hi)

	return NewPlatform(last.Right()+gap, y, kind)
}

// uniform returns a value in [lo, hi], or lo when the range is empty.
func (s *Spawner) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return min(lo+s.rng.Float64()*(hi-lo), hi)
}

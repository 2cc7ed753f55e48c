package intercept

import "math/rand"

// Spawner is the fixed-interval spawn timer.
type Spawner struct {
	Timer float64 // Seconds accumulated since the last spawn
}

// Advance adds dt to the timer. It reports true, and resets the timer, once
// the accumulated time exceeds interval.
func (s *Spawner) Advance(dt, interval float64) bool {
	s.Timer += dt
	if s.Timer > interval {
		s.Timer = 0
		return true
	}
	return false
}

// spawnEntity creates an entity at the right edge of the world with a
// uniformly random vertical offset.
func spawnEntity(rng *rand.Rand, worldW, worldH, w, h float64) Entity {
	return Entity{
		X: worldW,
		Y: rng.Float64() * maxY(worldH, h),
		W: w,
		H: h,
	}
}

package intercept

import (
	"math/rand"

	"github.com/vovakirdan/drop-arcade/internal/config"
	"github.com/vovakirdan/drop-arcade/internal/core"
)

// Params are the per-variant constants of the simulation.
type Params struct {
	PlayerX, PlayerY float64 // Starting position
	PlayerW, PlayerH float64
	PlayerSpeed      float64

	EntityW, EntityH float64
	EntitySpeed      float64 // Leftward world units per second

	SpawnInterval    float64 // Seconds between spawns
	LegacyWidthClamp bool
}

// ParamsFromConfig extracts simulation parameters from a variant config.
func ParamsFromConfig(cfg config.VariantConfig) Params {
	return Params{
		PlayerX:          cfg.Player.X,
		PlayerY:          cfg.Player.Y,
		PlayerW:          cfg.Player.Width,
		PlayerH:          cfg.Player.Height,
		PlayerSpeed:      cfg.Player.Speed,
		EntityW:          cfg.Entity.Width,
		EntityH:          cfg.Entity.Height,
		EntitySpeed:      cfg.Entity.Speed,
		SpawnInterval:    cfg.Spawn.Interval,
		LegacyWidthClamp: cfg.LegacyWidthClamp,
	}
}

// State is everything that changes during a session.
type State struct {
	Player   Player
	Entities Pool
	Spawner  Spawner
	Score    int
}

// Sim advances a State. It holds the constants and the RNG; all mutable
// game data lives in the State passed to Step.
type Sim struct {
	params Params
	rng    *rand.Rand
}

// NewSim creates a simulation with a deterministic RNG.
func NewSim(p Params, seed int64) *Sim {
	return &Sim{
		params: p,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Params returns the simulation constants.
func (s *Sim) Params() Params {
	return s.params
}

// NewState returns a fresh session: player at its start position, no
// entities, zero score.
func (s *Sim) NewState() State {
	st := State{
		Player: Player{
			X:     s.params.PlayerX,
			Y:     s.params.PlayerY,
			W:     s.params.PlayerW,
			H:     s.params.PlayerH,
			Speed: s.params.PlayerSpeed,
		},
	}
	st.Player.UpdateRect()
	return st
}

// Step advances st by dt seconds. It never fails; a negative or non-finite
// dt is treated as zero. The returned events describe spawns, hits and
// despawns in the order they happened.
func (s *Sim) Step(st *State, in core.InputFrame, dt float64, vp core.Viewport) []core.Event {
	dt = core.SanitizeDelta(dt)
	worldW, worldH := vp.WorldWidth(), vp.WorldHeight()
	var events []core.Event

	// Input: keys first, a held pointer overrides them for this frame.
	p := &st.Player
	p.Move(in.Has(core.ActionUp), in.Has(core.ActionDown), dt)
	if in.Pointer.Active {
		_, wy := vp.Unproject(in.Pointer.X, in.Pointer.Y)
		p.SetCenterY(wy)
	}

	p.Clamp(worldH, s.params.LegacyWidthClamp)
	p.UpdateRect()

	// Walk backwards so RemoveAt only moves entities already visited.
	for i := st.Entities.Len() - 1; i >= 0; i-- {
		e := st.Entities.At(i)
		e.X -= s.params.EntitySpeed * dt
		x, y := e.X, e.Y

		switch {
		case e.Y < -e.H || e.X < -e.W:
			st.Entities.RemoveAt(i)
			events = append(events, core.Event{Kind: core.EventDespawn, X: x, Y: y})
		case p.Rect().Overlaps(e.Rect()):
			st.Score++
			st.Entities.RemoveAt(i)
			events = append(events, core.Event{Kind: core.EventHit, X: x, Y: y})
		}
	}

	if st.Spawner.Advance(dt, s.params.SpawnInterval) {
		e := spawnEntity(s.rng, worldW, worldH, s.params.EntityW, s.params.EntityH)
		st.Entities.Add(e)
		events = append(events, core.Event{Kind: core.EventSpawn, X: e.X, Y: e.Y})
	}

	return events
}

package intercept

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/drop-arcade/internal/core"
)

// testViewport is an 8x5 world shown on an 800x500 window: 100px per unit.
func testViewport() *core.FitViewport {
	vp := core.NewFitViewport(8, 5, 1)
	vp.Update(800, 500)
	return vp
}

func classicParams() Params {
	return Params{
		PlayerW:       1,
		PlayerH:       1,
		PlayerSpeed:   4,
		EntityW:       1,
		EntityH:       1,
		EntitySpeed:   2,
		SpawnInterval: 1,
	}
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func countKind(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestStepEndToEndCatch(t *testing.T) {
	p := classicParams()
	p.PlayerY = 2
	sim := NewSim(p, 1)
	st := sim.NewState()
	st.Entities.Add(Entity{X: 8, Y: 2, W: 1, H: 1})
	vp := testViewport()

	wantScore := []int{0, 0, 0, 1}
	for step, want := range wantScore {
		events := sim.Step(&st, core.NewInputFrame(), 1, vp)
		if st.Score != want {
			t.Fatalf("after step %d score = %d, expected %d", step+1, st.Score, want)
		}
		hits := countKind(events, core.EventHit)
		if want == 1 && hits != 1 {
			t.Errorf("step %d should report exactly one hit, got %d", step+1, hits)
		}
		if want == 0 && hits != 0 {
			t.Errorf("step %d reported a hit too early", step+1)
		}
	}

	for _, e := range st.Entities.Items() {
		if e.Y == 2 && e.X <= 0 {
			t.Errorf("caught entity still in the pool: %+v", e)
		}
	}
}

func TestStepEntityPassesAboveAndDespawns(t *testing.T) {
	p := classicParams()
	p.SpawnInterval = math.MaxFloat64 // keep the pool to the single entity
	sim := NewSim(p, 1)
	st := sim.NewState()
	st.Entities.Add(Entity{X: 8, Y: 5 - 1, W: 1, H: 1})
	vp := testViewport()

	despawned := false
	for step := 0; step < 10 && !despawned; step++ {
		events := sim.Step(&st, core.NewInputFrame(), 1, vp)
		despawned = countKind(events, core.EventDespawn) == 1
	}

	if !despawned {
		t.Fatal("entity should leave through the left edge")
	}
	if st.Score != 0 {
		t.Errorf("score = %d, expected 0 for an entity that never touched the player", st.Score)
	}
	if st.Entities.Len() != 0 {
		t.Errorf("pool should be empty, has %d", st.Entities.Len())
	}
}

func TestStepDespawnBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		entity  Entity
		removed bool
	}{
		{"fully left of world", Entity{X: -1.01, Y: 3, W: 1, H: 1}, true},
		{"right edge exactly at 0", Entity{X: -1, Y: 3, W: 1, H: 1}, false},
		{"below the world", Entity{X: 4, Y: -1.5, W: 1, H: 1}, true},
		{"top edge exactly at 0", Entity{X: 4, Y: -1, W: 1, H: 1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sim := NewSim(classicParams(), 1)
			st := sim.NewState()
			st.Player.X = 100 // out of the way
			st.Entities.Add(tc.entity)

			events := sim.Step(&st, core.NewInputFrame(), 0, testViewport())
			got := countKind(events, core.EventDespawn) == 1
			if got != tc.removed {
				t.Errorf("removed = %v, expected %v", got, tc.removed)
			}
		})
	}
}

func TestStepExitCheckedBeforeCollision(t *testing.T) {
	p := classicParams()
	p.PlayerX = -3 // player sits outside the world, where entities despawn
	sim := NewSim(p, 1)
	st := sim.NewState()
	st.Entities.Add(Entity{X: -2.5, Y: 0, W: 1, H: 1})

	events := sim.Step(&st, core.NewInputFrame(), 0, testViewport())

	if countKind(events, core.EventDespawn) != 1 || countKind(events, core.EventHit) != 0 {
		t.Errorf("events = %+v, expected one despawn and no hit", events)
	}
	if st.Score != 0 {
		t.Errorf("score = %d, exit must win over collision", st.Score)
	}
}

func TestStepZeroDeltaChangesNothing(t *testing.T) {
	for _, dt := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		sim := NewSim(classicParams(), 7)
		st := sim.NewState()
		st.Player.Y = 2
		st.Spawner.Timer = 0.9
		st.Entities.Add(Entity{X: 5, Y: 1, W: 1, H: 1})
		st.Entities.Add(Entity{X: 3, Y: 4, W: 1, H: 1})

		before := append([]Entity(nil), st.Entities.Items()...)

		for _, in := range []core.InputFrame{core.NewInputFrame(), input(core.ActionUp), input(core.ActionDown)} {
			events := sim.Step(&st, in, dt, testViewport())
			if len(events) != 0 {
				t.Errorf("dt=%v: expected no events, got %+v", dt, events)
			}
		}

		if st.Player.Y != 2 {
			t.Errorf("dt=%v: player moved to %f", dt, st.Player.Y)
		}
		if st.Score != 0 || st.Spawner.Timer != 0.9 {
			t.Errorf("dt=%v: score=%d timer=%f, expected 0 and 0.9", dt, st.Score, st.Spawner.Timer)
		}
		for i, e := range st.Entities.Items() {
			if e != before[i] {
				t.Errorf("dt=%v: entity %d moved from %+v to %+v", dt, i, before[i], e)
			}
		}
	}
}

func TestStepPlayerMovement(t *testing.T) {
	tests := []struct {
		name  string
		in    core.InputFrame
		wantY float64
	}{
		{"no input", core.NewInputFrame(), 2},
		{"up", input(core.ActionUp), 2.4},
		{"down", input(core.ActionDown), 1.6},
		{"up wins over down", input(core.ActionUp, core.ActionDown), 2.4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sim := NewSim(classicParams(), 1)
			st := sim.NewState()
			st.Player.Y = 2

			sim.Step(&st, tc.in, 0.1, testViewport())
			if math.Abs(st.Player.Y-tc.wantY) > 1e-9 {
				t.Errorf("player Y = %f, expected %f", st.Player.Y, tc.wantY)
			}
			if st.Player.Rect().Y != st.Player.Y {
				t.Errorf("rect not refreshed: rect Y = %f, player Y = %f", st.Player.Rect().Y, st.Player.Y)
			}
		})
	}
}

func TestStepPointerOverridesKeys(t *testing.T) {
	sim := NewSim(classicParams(), 1)
	st := sim.NewState()
	st.Player.Y = 2

	in := input(core.ActionUp)
	in.Pointer = core.Pointer{Active: true, X: 50, Y: 400} // world y = 1

	sim.Step(&st, in, 0.5, testViewport())
	if math.Abs(st.Player.Y-0.5) > 1e-9 {
		t.Errorf("player Y = %f, expected 0.5 (center on pointer at y=1)", st.Player.Y)
	}

	// Pointer placement applies even when no time has passed.
	in.Pointer = core.Pointer{Active: true, X: 50, Y: 100} // world y = 4
	sim.Step(&st, core.InputFrame{Pointer: in.Pointer}, 0, testViewport())
	if math.Abs(st.Player.Y-3.5) > 1e-9 {
		t.Errorf("player Y = %f, expected 3.5", st.Player.Y)
	}
}

func TestStepPlayerAlwaysInBounds(t *testing.T) {
	priors := []float64{-100, -0.1, 0, 2, 3.999, 4, 10, 1e9}
	deltas := []float64{0, 0.016, 1, 100}
	inputs := map[string]core.InputFrame{
		"none":            core.NewInputFrame(),
		"up":              input(core.ActionUp),
		"down":            input(core.ActionDown),
		"both":            input(core.ActionUp, core.ActionDown),
		"pointer top":     {Pointer: core.Pointer{Active: true, X: 10, Y: 0}},
		"pointer bottom":  {Pointer: core.Pointer{Active: true, X: 10, Y: 500}},
		"pointer offside": {Pointer: core.Pointer{Active: true, X: 10, Y: -9000}},
	}

	vp := testViewport()
	for name, in := range inputs {
		for _, prior := range priors {
			for _, dt := range deltas {
				sim := NewSim(classicParams(), 1)
				st := sim.NewState()
				st.Player.Y = prior

				sim.Step(&st, in, dt, vp)
				if st.Player.Y < 0 || st.Player.Y > 5-1 {
					t.Errorf("%s, prior=%g, dt=%g: player Y = %f outside [0, 4]", name, prior, dt, st.Player.Y)
				}
			}
		}
	}
}

func TestStepLegacyWidthClampDivergence(t *testing.T) {
	tests := []struct {
		name      string
		w, h      float64
		fixedMax  float64
		legacyMax float64
		legacyOOB bool // legacy mode lets the top edge leave the world
	}{
		{"square player: identical", 1, 1, 4, 4, false},
		{"wide player: legacy stops short", 1, 0.5, 4.5, 4, false},
		{"tall player: legacy overshoots", 0.5, 1, 4, 4.5, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, legacy := range []bool{false, true} {
				p := classicParams()
				p.PlayerW, p.PlayerH = tc.w, tc.h
				p.LegacyWidthClamp = legacy
				sim := NewSim(p, 1)
				st := sim.NewState()
				st.Player.Y = 100

				sim.Step(&st, core.NewInputFrame(), 0, testViewport())

				want := tc.fixedMax
				if legacy {
					want = tc.legacyMax
				}
				if st.Player.Y != want {
					t.Errorf("legacy=%v: clamped Y = %f, expected %f", legacy, st.Player.Y, want)
				}
				top := st.Player.Y + st.Player.H
				if oob := top > 5; oob != (legacy && tc.legacyOOB) {
					t.Errorf("legacy=%v: top edge %f out of world = %v", legacy, top, oob)
				}
			}
		})
	}
}

func TestStepOversizedObjects(t *testing.T) {
	p := classicParams()
	p.PlayerH = 7
	p.EntityH = 6
	p.SpawnInterval = 0.5
	sim := NewSim(p, 3)
	st := sim.NewState()
	st.Player.Y = 3

	events := sim.Step(&st, core.NewInputFrame(), 1, testViewport())

	if st.Player.Y != 0 {
		t.Errorf("player taller than the world should clamp to 0, got %f", st.Player.Y)
	}
	if countKind(events, core.EventSpawn) != 1 {
		t.Fatalf("expected a spawn, got %+v", events)
	}
	if e := st.Entities.Items()[0]; e.Y != 0 {
		t.Errorf("entity taller than the world should spawn at y=0, got %f", e.Y)
	}
}

func TestStepSpawnTimer(t *testing.T) {
	tests := []struct {
		name      string
		deltas    []float64
		spawnStep int // 0-based index of the step that spawns, -1 for none
	}{
		{"sum exactly 1.0 does not spawn", []float64{0.25, 0.25, 0.25, 0.25}, -1},
		{"first step past 1.0 spawns", []float64{0.25, 0.25, 0.25, 0.25, 0.25}, 4},
		{"single long frame", []float64{1.5}, 0},
		{"uneven frames", []float64{0.3, 0.3, 0.3, 0.3}, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sim := NewSim(classicParams(), 1)
			st := sim.NewState()
			st.Player.X = 100 // nothing gets caught

			spawns := 0
			for i, dt := range tc.deltas {
				events := sim.Step(&st, core.NewInputFrame(), dt, testViewport())
				n := countKind(events, core.EventSpawn)
				spawns += n
				if n == 1 {
					if i != tc.spawnStep {
						t.Errorf("spawned at step %d, expected %d", i, tc.spawnStep)
					}
					if st.Spawner.Timer != 0 {
						t.Errorf("timer = %f after spawn, expected 0", st.Spawner.Timer)
					}
				}
			}

			wantSpawns := 1
			if tc.spawnStep < 0 {
				wantSpawns = 0
			}
			if spawns != wantSpawns {
				t.Errorf("spawns = %d, expected %d", spawns, wantSpawns)
			}
		})
	}
}

func TestStepSpawnPlacement(t *testing.T) {
	sim := NewSim(classicParams(), 99)
	st := sim.NewState()
	st.Player.X = 100

	for i := 0; i < 200; i++ {
		events := sim.Step(&st, core.NewInputFrame(), 1.01, testViewport())
		for _, e := range events {
			if e.Kind != core.EventSpawn {
				continue
			}
			if e.X != 8 {
				t.Fatalf("spawn x = %f, expected world width 8", e.X)
			}
			if e.Y < 0 || e.Y > 4 {
				t.Fatalf("spawn y = %f outside [0, 4]", e.Y)
			}
		}
	}
}

func TestStepScoreMonotonic(t *testing.T) {
	sim := NewSim(classicParams(), 2024)
	st := sim.NewState()
	vp := testViewport()
	rng := rand.New(rand.NewSource(5))

	prev := 0
	for i := 0; i < 2000; i++ {
		in := core.NewInputFrame()
		switch rng.Intn(4) {
		case 0:
			in.Set(core.ActionUp)
		case 1:
			in.Set(core.ActionDown)
		case 2:
			in.Pointer = core.Pointer{Active: true, X: 0, Y: rng.Float64() * 500}
		}

		events := sim.Step(&st, in, rng.Float64()*0.2, vp)
		if st.Score < prev {
			t.Fatalf("score decreased from %d to %d at step %d", prev, st.Score, i)
		}
		if got := st.Score - prev; got != countKind(events, core.EventHit) {
			t.Fatalf("step %d: score grew by %d but %d hits were reported", i, got, countKind(events, core.EventHit))
		}
		prev = st.Score
	}
}

func TestStepMultipleHitsInOneFrame(t *testing.T) {
	p := classicParams()
	p.PlayerH = 5
	sim := NewSim(p, 1)
	st := sim.NewState()
	for y := 0.0; y < 5; y++ {
		st.Entities.Add(Entity{X: 0.5, Y: y, W: 1, H: 1})
	}
	st.Entities.Add(Entity{X: 6, Y: 1, W: 1, H: 1}) // not reached yet

	events := sim.Step(&st, core.NewInputFrame(), 0, testViewport())

	if st.Score != 5 || countKind(events, core.EventHit) != 5 {
		t.Errorf("score = %d, hits = %d, expected 5 each", st.Score, countKind(events, core.EventHit))
	}
	if st.Entities.Len() != 1 || st.Entities.Items()[0].X != 6 {
		t.Errorf("only the distant entity should remain, pool = %+v", st.Entities.Items())
	}
}

func TestStepDeterminism(t *testing.T) {
	run := func() State {
		sim := NewSim(classicParams(), 12345)
		st := sim.NewState()
		for i := 0; i < 600; i++ {
			in := core.NewInputFrame()
			if i%40 < 20 {
				in.Set(core.ActionUp)
			} else {
				in.Set(core.ActionDown)
			}
			sim.Step(&st, in, 1.0/60, testViewport())
		}
		return st
	}

	a, b := run(), run()
	if a.Score != b.Score || a.Entities.Len() != b.Entities.Len() {
		t.Fatalf("runs diverged: score %d vs %d, entities %d vs %d",
			a.Score, b.Score, a.Entities.Len(), b.Entities.Len())
	}
	for i := range a.Entities.Items() {
		if a.Entities.Items()[i] != b.Entities.Items()[i] {
			t.Errorf("entity %d differs: %+v vs %+v", i, a.Entities.Items()[i], b.Entities.Items()[i])
		}
	}
}

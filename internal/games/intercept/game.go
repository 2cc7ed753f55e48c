// Package intercept implements the drop-catcher and laser-blocker games.
// Both are the same simulation: a sprite on the left edge moves vertically
// to intercept objects drifting in from the right. Variants differ only in
// configuration.
package intercept

import (
	"sync"

	"github.com/vovakirdan/drop-arcade/internal/config"
	"github.com/vovakirdan/drop-arcade/internal/core"
	"github.com/vovakirdan/drop-arcade/internal/registry"
)

var (
	configMu   sync.RWMutex
	configPath string
)

// SetConfigPath sets a custom config file used by games created afterwards.
func SetConfigPath(path string) {
	configMu.Lock()
	defer configMu.Unlock()
	configPath = path
}

func currentConfigPath() string {
	configMu.RLock()
	defer configMu.RUnlock()
	return configPath
}

// Game adapts the simulation to the registry.Game interface.
type Game struct {
	cfg       config.VariantConfig
	loadErr   error
	sim       *Sim
	state     State
	paused    bool
	tickCount int
}

// New creates a game for the given variant with its embedded defaults.
// The variant's full configuration is loaded on Reset.
func New(cfg config.VariantConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.cfg.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.cfg.Title
}

// LoadErr returns the error from the last config load, if any.
// The game falls back to its embedded defaults when loading fails.
func (g *Game) LoadErr() error {
	return g.loadErr
}

// Reset loads the variant config and starts a fresh session.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.Load(g.cfg.ID, currentConfigPath())
	g.loadErr = err
	if err == nil {
		g.cfg = cfg
	}

	g.sim = NewSim(ParamsFromConfig(g.cfg), rc.Seed)
	g.state = g.sim.NewState()
	g.paused = false
	g.tickCount = 0
}

// Manifest returns the world size and assets for the current config.
func (g *Game) Manifest() core.Manifest {
	return manifestFromConfig(g.cfg)
}

// Step advances the game by one frame.
func (g *Game) Step(f core.Frame) core.StepResult {
	if g.sim == nil {
		g.Reset(core.DefaultConfig())
	}

	// Handle pause toggle
	if f.Input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	vp := f.Viewport
	if vp == nil {
		vp = worldView{w: g.cfg.World.Width, h: g.cfg.World.Height}
	}

	g.tickCount++
	events := g.sim.Step(&g.state, f.Input, f.Delta, vp)

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state. Sessions never end on their own.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.state.Score,
		Paused: g.paused,
	}
}

// worldView is used when the host supplies no viewport: screen units equal
// world units, with the screen's y axis pointing down.
type worldView struct{ w, h float64 }

func (v worldView) WorldWidth() float64  { return v.w }
func (v worldView) WorldHeight() float64 { return v.h }

func (v worldView) Unproject(sx, sy float64) (float64, float64) {
	return sx, v.h - sy
}

// Register every variant that ships with an embedded default.
func init() {
	for _, id := range config.Variants() {
		cfg, err := config.Default(id)
		if err != nil {
			panic(err)
		}
		registry.Register(id, func() registry.Game {
			return New(cfg)
		})
	}
}

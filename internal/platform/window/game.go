// Package window runs a game in a desktop window using Ebitengine.
package window

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/drop-arcade/internal/core"
	"github.com/vovakirdan/drop-arcade/internal/registry"
)

// pixelsPerUnit sets the initial window size from the world size.
const pixelsPerUnit = 100

// Options configures a window session.
type Options struct {
	Config core.RuntimeConfig
	Logger *log.Logger
	Muted  bool
}

// Game adapts a registry.Game to ebiten.Game.
type Game struct {
	game     registry.Game
	opts     Options
	logger   *log.Logger
	manifest core.Manifest

	view   *core.FitViewport
	clock  *core.FrameClock
	scenes core.SceneMachine
	state  core.GameState

	textures  textureSet
	audio     core.AudioSink
	mixer     *Mixer
	started   bool
	closeOnce sync.Once
}

// NewGame resets game and prepares a window host for it.
func NewGame(game registry.Game, opts Options) *Game {
	if opts.Config.Seed == 0 {
		opts.Config.Seed = time.Now().UnixNano()
	}
	if opts.Config.TickRate <= 0 {
		opts.Config.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(opts.Config)
	m := game.Manifest()

	return &Game{
		game:     game,
		opts:     opts,
		logger:   logger.With("game", game.ID()),
		manifest: m,
		view:     core.NewFitViewport(m.WorldW, m.WorldH, 1),
		clock:    core.NewFrameClock(opts.Config.TickRate),
		audio:    core.NopAudio{},
	}
}

// Update advances one frame. It returns ebiten.Termination when the
// player quits.
func (g *Game) Update() error {
	in := readInput()
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	dt := g.clock.Tick(time.Now())

	if g.scenes.Current() == core.SceneMenu {
		if g.scenes.Advance(in) {
			g.startGameplay()
		}
		return nil
	}

	result := g.game.Step(core.Frame{Input: in, Delta: dt, Viewport: g.view})
	g.state = result.State
	for range result.Hits() {
		g.audio.PlaySound(g.manifest.HitSound)
	}
	return nil
}

// startGameplay acquires textures and audio for the session.
func (g *Game) startGameplay() {
	g.textures = newTextureSet(g.manifest.Textures)
	if !g.opts.Muted {
		g.mixer = NewMixer(g.manifest.Sounds, g.logger)
		g.audio = g.mixer
	}
	if g.manifest.Music != "" {
		g.audio.LoopMusic(g.manifest.Music, g.manifest.MusicVolume)
	}
	g.started = true
	g.clock.Reset()
	g.logger.Info("gameplay started", "textures", len(g.textures))
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	c := &ImageCanvas{dst: screen, view: g.view, textures: g.textures}
	if g.scenes.Current() == core.SceneMenu {
		core.DrawSplash(c, g.manifest)
		return
	}
	g.game.Render(c)
}

// Layout uses the window's full size and fits the world inside it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.view.Update(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// State returns the last reported game state.
func (g *Game) State() core.GameState {
	return g.state
}

// Close releases the session's textures and audio exactly once.
func (g *Game) Close() {
	g.closeOnce.Do(func() {
		if !g.started {
			return
		}
		g.audio.StopMusic()
		if g.mixer != nil {
			g.mixer.Close()
		}
		g.textures.release()
		g.logger.Info("session closed", "score", g.state.Score)
	})
}

// Run opens a window for game and blocks until it is closed.
func Run(game registry.Game, opts Options) error {
	g := NewGame(game, opts)
	defer g.Close()

	ebiten.SetWindowSize(int(g.manifest.WorldW*pixelsPerUnit), int(g.manifest.WorldH*pixelsPerUnit))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.opts.Config.TickRate)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run %s window: %w", game.ID(), err)
	}
	return nil
}

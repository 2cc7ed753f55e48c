package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/drop-arcade/internal/core"
	"github.com/vovakirdan/drop-arcade/internal/registry"
)

// cellAspect is the width of a terminal cell divided by its height.
const cellAspect = 0.5

// Options configures a terminal game session.
type Options struct {
	Config core.RuntimeConfig
	Logger *log.Logger

	// Bell receives the terminal bell for sound effects. Nil mutes them.
	Bell io.Writer

	// AllowBack makes the back key end the game without quitting the
	// program, so a menu can take over.
	AllowBack bool
}

// Model is the Bubble Tea model for one game: splash screen, then gameplay.
type Model struct {
	id     uint64
	game   registry.Game
	opts   Options
	logger *log.Logger
	keys   KeyMap
	help   help.Model

	manifest core.Manifest
	screen   *core.Screen
	view     *core.FitViewport
	canvas   *ScreenCanvas
	clock    *core.FrameClock
	input    *HeldInput
	scenes   *core.SceneMachine
	audio    core.AudioSink
	sess     *session

	state    core.GameState
	quitting bool
	back     bool
}

// NewModel creates a model for game and resets the game.
func NewModel(game registry.Game, opts Options) Model {
	// Use time-based seed if not specified
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
	manifest := game.Manifest()

	m := Model{
		id:       modelIDs.Add(1),
		game:     game,
		opts:     opts,
		logger:   logger.With("game", game.ID()),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		manifest: manifest,
		screen:   core.NewScreen(0, 0),
		view:     core.NewFitViewport(manifest.WorldW, manifest.WorldH, cellAspect),
		clock:    core.NewFrameClock(opts.Config.TickRate),
		input:    NewHeldInput(),
		scenes:   &core.SceneMachine{},
		state:    game.State(),
	}
	m.audio = NewBellSink(opts.Bell, m.logger, manifest.Sounds)
	m.canvas = NewScreenCanvas(m.screen, m.view, manifest.Textures)
	m.resize(opts.Config.ScreenW, opts.Config.ScreenH)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.id, m.opts.Config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.input.Mouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.ID != m.id {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.Close()
		if m.opts.AllowBack {
			m.back = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	m.input.Press(m.keys.MapKey(msg), time.Now())
	return m, nil
}

// handleTick runs one frame: input, update, and (via View) render.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.back {
		return m, nil
	}

	in := m.input.Frame(now)
	dt := m.clock.Tick(now)

	if m.scenes.Current() == core.SceneMenu {
		if m.scenes.Advance(in) {
			m.startGameplay()
		}
		return m, tickCmd(m.id, m.opts.Config.TickRate)
	}

	result := m.game.Step(core.Frame{Input: in, Delta: dt, Viewport: m.view})
	m.state = result.State
	if result.Hits() > 0 {
		m.sess.Hit()
	}

	return m, tickCmd(m.id, m.opts.Config.TickRate)
}

// startGameplay acquires session assets when the splash is dismissed.
func (m *Model) startGameplay() {
	m.sess = openSession(m.manifest, m.audio, m.logger)
	m.input.Reset()
	m.clock.Reset()
	m.logger.Info("gameplay started")
}

// resize fits the world into the terminal, keeping the last row for help.
func (m *Model) resize(width, height int) {
	playH := core.Max(height-1, 0)
	m.screen.Resize(width, playH)
	m.view.Update(width, playH)
	m.help.Width = width
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.scenes.Current() == core.SceneMenu {
		drawSplash(m.canvas, m.manifest)
	} else {
		m.game.Render(m.canvas)
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Close releases the session's assets. It is safe to call more than once.
func (m Model) Close() {
	m.sess.Close()
}

// State returns the last reported game state.
func (m Model) State() core.GameState {
	return m.state
}

// Scene returns the active scene.
func (m Model) Scene() core.Scene {
	return m.scenes.Current()
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to leave the game.
func (m Model) BackToMenu() bool {
	return m.back
}

// Run starts a Bubble Tea program for game and blocks until it exits.
func Run(game registry.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.Close()
	}
	if err != nil {
		return fmt.Errorf("run %s: %w", game.ID(), err)
	}
	return nil
}

package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in host units (cells or pixels)
	ScreenH  int   // Screen height in host units
	TickRate int   // Host frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Frame is everything a game needs to advance by one rendered frame.
type Frame struct {
	Input    InputFrame
	Delta    float64  // Elapsed seconds since the previous frame
	Viewport Viewport // Screen to world conversion, owned by the host
}

// EventKind identifies a side effect produced by a simulation step.
type EventKind int

const (
	EventSpawn   EventKind = iota // An entity entered the world
	EventHit                      // An entity was intercepted by the player
	EventDespawn                  // An entity left the world untouched
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventSpawn:
		return "spawn"
	case EventHit:
		return "hit"
	case EventDespawn:
		return "despawn"
	default:
		return "unknown"
	}
}

// Event is a side effect the platform may react to (play a sound, log).
type Event struct {
	Kind EventKind
	X, Y float64 // World position of the entity involved
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Hits counts the EventHit entries in the result.
func (r StepResult) Hits() int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == EventHit {
			n++
		}
	}
	return n
}

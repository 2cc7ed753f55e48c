package core

// Scene is the top-level screen a host is showing.
type Scene int

const (
	SceneMenu     Scene = iota // Splash with a "tap to begin" prompt
	SceneGameplay              // Running simulation
)

// String returns a human-readable name for the scene.
func (s Scene) String() string {
	switch s {
	case SceneMenu:
		return "menu"
	case SceneGameplay:
		return "gameplay"
	default:
		return "unknown"
	}
}

// SceneMachine moves from the menu into gameplay on the first input.
// The transition is one-way.
type SceneMachine struct {
	scene Scene
}

// Current returns the active scene.
func (m *SceneMachine) Current() Scene {
	return m.scene
}

// Advance feeds one frame of input and reports whether the scene changed.
func (m *SceneMachine) Advance(in InputFrame) bool {
	if m.scene != SceneMenu || !in.Any() {
		return false
	}
	m.scene = SceneGameplay
	return true
}

// DrawSplash renders the menu scene for a game's manifest.
func DrawSplash(dst Canvas, m Manifest) {
	dst.Clear()
	dst.DrawTextCentered(m.SplashTitle, m.WorldH/2+1.5)
	dst.DrawTextCentered(m.SplashPrompt, m.WorldH/2-1.5)
}

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/drop-arcade/internal/core"
)

// holdWindow is how long a movement key counts as held after its last
// press or auto-repeat. Terminals report presses only, never releases.
const holdWindow = 150 * time.Millisecond

// HeldInput accumulates terminal events between ticks and produces one
// InputFrame per tick. Movement keys stay active for holdWindow after the
// last press; every other action fires once.
type HeldInput struct {
	held    map[core.Action]time.Time
	pending core.InputFrame
	pointer core.Pointer
}

// NewHeldInput creates an empty input tracker.
func NewHeldInput() *HeldInput {
	return &HeldInput{
		held:    make(map[core.Action]time.Time),
		pending: core.NewInputFrame(),
	}
}

// Press records a key action at time now.
func (h *HeldInput) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionNone:
		return
	case core.ActionUp, core.ActionDown:
		// Opposite directions cancel so a quick reversal is not blocked by
		// the still-held previous key.
		delete(h.held, core.ActionUp)
		delete(h.held, core.ActionDown)
		h.held[a] = now
	}
	h.pending.Set(a)
}

// Mouse records a mouse event in cell coordinates. The pointer is active
// while the left button is down.
func (h *HeldInput) Mouse(msg tea.MouseMsg) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return
	}

	switch msg.Action {
	case tea.MouseActionPress, tea.MouseActionMotion:
		// Cell centres, so a click on row 0 is inside the top cell.
		h.pointer = core.Pointer{Active: true, X: float64(msg.X) + 0.5, Y: float64(msg.Y) + 0.5}
		h.pending.Pointer = h.pointer
	case tea.MouseActionRelease:
		h.pointer = core.Pointer{}
	}
}

// Frame returns the input for a tick at time now and starts a new one.
func (h *HeldInput) Frame(now time.Time) core.InputFrame {
	f := h.pending.Clone()
	for a, last := range h.held {
		if now.Sub(last) <= holdWindow {
			f.Set(a)
		} else {
			delete(h.held, a)
		}
	}
	if h.pointer.Active {
		f.Pointer = h.pointer
	}

	h.pending.Clear()
	return f
}

// Reset drops all held keys and the pointer.
func (h *HeldInput) Reset() {
	clear(h.held)
	h.pending.Clear()
	h.pointer = core.Pointer{}
}

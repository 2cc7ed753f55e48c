package intercept

import "github.com/vovakirdan/drop-arcade/internal/core"

// Player is the single controlled sprite.
type Player struct {
	X, Y  float64 // Bottom-left corner in world units
	W, H  float64
	Speed float64 // World units per second while a direction is held

	rect core.RectF
}

// Move translates the player for one frame of keyboard input.
// Up wins when both directions are held.
func (p *Player) Move(up, down bool, dt float64) {
	switch {
	case up:
		p.Y += p.Speed * dt
	case down:
		p.Y -= p.Speed * dt
	}
}

// SetCenterY places the player's vertical center at y.
func (p *Player) SetCenterY(y float64) {
	p.Y = y - p.H/2
}

// Clamp keeps the player inside the world's vertical range.
// With legacyWidth the range is bounded by the player's width instead of its
// height; the two only differ for non-square players.
func (p *Player) Clamp(worldH float64, legacyWidth bool) {
	size := p.H
	if legacyWidth {
		size = p.W
	}
	p.Y = core.ClampF(p.Y, 0, maxY(worldH, size))
}

// UpdateRect recomputes the bounding rectangle from position and size.
func (p *Player) UpdateRect() {
	p.rect = core.NewRectF(p.X, p.Y, p.W, p.H)
}

// Rect returns the bounding rectangle as of the last UpdateRect.
func (p *Player) Rect() core.RectF {
	return p.rect
}

// maxY is the highest bottom edge that keeps an object of the given height
// inside the world. Never negative, even for objects taller than the world.
func maxY(worldH, size float64) float64 {
	if m := worldH - size; m > 0 {
		return m
	}
	return 0
}

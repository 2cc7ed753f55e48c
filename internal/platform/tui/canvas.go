package tui

import (
	"math"

	"github.com/vovakirdan/drop-arcade/internal/core"
)

// textColor is used for HUD and splash text.
const textColor = core.ColorBrightWhite

// ScreenCanvas draws world-space sprites and text into a cell buffer.
type ScreenCanvas struct {
	screen   *core.Screen
	view     *core.FitViewport
	textures map[core.TextureID]core.Texture
}

// NewScreenCanvas creates a canvas over screen, projecting through view.
func NewScreenCanvas(screen *core.Screen, view *core.FitViewport, textures map[core.TextureID]core.Texture) *ScreenCanvas {
	return &ScreenCanvas{screen: screen, view: view, textures: textures}
}

// SetTextures replaces the texture table, e.g. when a new session starts.
func (c *ScreenCanvas) SetTextures(textures map[core.TextureID]core.Texture) {
	c.textures = textures
}

// Clear blanks the whole screen, letterbox included.
func (c *ScreenCanvas) Clear() {
	c.screen.Clear()
}

// DrawSprite fills the cells covered by r with the texture's glyph.
// Unknown textures are drawn as '?' so missing assets stay visible.
func (c *ScreenCanvas) DrawSprite(tex core.TextureID, r core.RectF) {
	t, ok := c.textures[tex]
	if !ok {
		t = core.Texture{Glyph: '?', Color: core.ColorRed}
	}
	c.screen.DrawRect(c.view.CellRect(r), t.Glyph, t.Color)
}

// DrawText writes text with its top-left corner at world (x, y).
func (c *ScreenCanvas) DrawText(text string, x, y float64) {
	sx, sy := c.view.Project(x, y)
	row := core.Clamp(int(math.Floor(sy)), 0, c.screen.Height()-1)
	c.screen.DrawTextColored(int(math.Floor(sx)), row, text, textColor)
}

// DrawTextCentered writes text centered on the screen at world height y.
func (c *ScreenCanvas) DrawTextCentered(text string, y float64) {
	_, sy := c.view.Project(0, y)
	row := core.Clamp(int(math.Floor(sy)), 0, c.screen.Height()-1)
	x := (c.screen.Width() - len([]rune(text))) / 2
	c.screen.DrawTextColored(x, row, text, textColor)
}

package tui

import "github.com/vovakirdan/drop-arcade/internal/core"

// drawSplash renders the menu scene inside a frame around the world area.
func drawSplash(c *ScreenCanvas, m core.Manifest) {
	core.DrawSplash(c, m)

	frame := c.view.CellRect(core.NewRectF(0, 0, m.WorldW, m.WorldH))
	if frame.W >= 2 && frame.H >= 2 {
		c.screen.DrawBox(frame)
	}
}

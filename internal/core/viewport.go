package core

import "math"

// Viewport converts between screen coordinates and world units.
// It is owned by the host; games only read from it.
type Viewport interface {
	WorldWidth() float64
	WorldHeight() float64
	// Unproject maps a screen position (y down) to world units (y up).
	Unproject(sx, sy float64) (wx, wy float64)
}

// FitViewport scales a fixed-size world uniformly to fit the screen,
// centering it and letterboxing the unused area.
//
// Aspect is the width of one screen unit divided by its height. Pixels are
// square (1.0); terminal cells are roughly twice as tall as they are wide (0.5).
type FitViewport struct {
	worldW, worldH   float64
	screenW, screenH float64
	aspect           float64

	scaleX, scaleY float64 // Screen units per world unit
	offX, offY     float64 // Letterbox offsets in screen units
}

// NewFitViewport creates a viewport for a world of the given size.
// Call Update with the screen dimensions before projecting.
func NewFitViewport(worldW, worldH, aspect float64) *FitViewport {
	if aspect <= 0 {
		aspect = 1
	}
	return &FitViewport{worldW: worldW, worldH: worldH, aspect: aspect}
}

// Update recomputes the projection for a new screen size.
func (v *FitViewport) Update(screenW, screenH int) {
	v.screenW = float64(Max(screenW, 0))
	v.screenH = float64(Max(screenH, 0))

	if v.worldW <= 0 || v.worldH <= 0 {
		v.scaleX, v.scaleY, v.offX, v.offY = 0, 0, 0, 0
		return
	}

	// Work in square units so the world keeps its proportions on screen.
	s := math.Min(v.screenW*v.aspect/v.worldW, v.screenH/v.worldH)
	v.scaleY = s
	v.scaleX = s / v.aspect
	v.offX = (v.screenW - v.worldW*v.scaleX) / 2
	v.offY = (v.screenH - v.worldH*v.scaleY) / 2
}

// WorldWidth returns the world width in world units.
func (v *FitViewport) WorldWidth() float64 { return v.worldW }

// WorldHeight returns the world height in world units.
func (v *FitViewport) WorldHeight() float64 { return v.worldH }

// Project maps a world position to screen coordinates.
func (v *FitViewport) Project(wx, wy float64) (sx, sy float64) {
	return v.offX + wx*v.scaleX, v.offY + (v.worldH-wy)*v.scaleY
}

// Unproject maps a screen position to world units.
// A degenerate (zero-size) viewport maps everything to the origin.
func (v *FitViewport) Unproject(sx, sy float64) (wx, wy float64) {
	if v.scaleX == 0 || v.scaleY == 0 {
		return 0, 0
	}
	return (sx - v.offX) / v.scaleX, v.worldH - (sy-v.offY)/v.scaleY
}

// ScreenRect maps a world rectangle to a screen rectangle in fractional
// screen units, top-left origin.
func (v *FitViewport) ScreenRect(r RectF) (x, y, w, h float64) {
	x, y = v.Project(r.X, r.Top())
	return x, y, r.W * v.scaleX, r.H * v.scaleY
}

// CellRect maps a world rectangle to whole screen cells. Any rectangle with
// a positive size covers at least one cell so small sprites stay visible.
func (v *FitViewport) CellRect(r RectF) Rect {
	left, top := v.Project(r.X, r.Top())
	right, bottom := v.Project(r.Right(), r.Y)

	x0, x1 := int(math.Round(left)), int(math.Round(right))
	y0, y1 := int(math.Round(top)), int(math.Round(bottom))
	if r.W > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if r.H > 0 && y1 <= y0 {
		y1 = y0 + 1
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

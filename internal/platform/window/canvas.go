package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/drop-arcade/internal/core"
)

// glyphW is the advance of Ebitengine's debug font in pixels.
const glyphW = 6

var (
	letterboxColor = color.Black
	missingColor   = color.RGBA{R: 0xff, B: 0xff, A: 0xff}
)

// textureSet holds one GPU image per texture in a manifest.
type textureSet map[core.TextureID]*ebiten.Image

// newTextureSet creates a 1x1 image per texture, filled with its colour.
// Sprites are drawn by scaling that pixel to the sprite's screen rectangle.
func newTextureSet(textures map[core.TextureID]core.Texture) textureSet {
	set := make(textureSet, len(textures))
	for id, t := range textures {
		img := ebiten.NewImage(1, 1)
		img.Fill(color.RGBA{R: t.RGB[0], G: t.RGB[1], B: t.RGB[2], A: 0xff})
		set[id] = img
	}
	return set
}

// release frees every image. The set must not be used afterwards.
func (s textureSet) release() {
	for id, img := range s {
		img.Deallocate()
		delete(s, id)
	}
}

// ImageCanvas draws world-space sprites and text onto an Ebitengine image.
type ImageCanvas struct {
	dst      *ebiten.Image
	view     *core.FitViewport
	textures textureSet
}

// Clear fills the screen with the letterbox colour.
func (c *ImageCanvas) Clear() {
	c.dst.Fill(letterboxColor)
}

// DrawSprite stretches the texture over r. Unknown textures are drawn
// as magenta rectangles.
func (c *ImageCanvas) DrawSprite(tex core.TextureID, r core.RectF) {
	x, y, w, h := c.view.ScreenRect(r)

	img, ok := c.textures[tex]
	if !ok {
		vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), missingColor, false)
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	c.dst.DrawImage(img, op)
}

// DrawText prints text with its top-left corner at world (x, y).
func (c *ImageCanvas) DrawText(text string, x, y float64) {
	sx, sy := c.view.Project(x, y)
	ebitenutil.DebugPrintAt(c.dst, text, int(math.Round(sx)), int(math.Round(sy)))
}

// DrawTextCentered prints text centered on the screen at world height y.
func (c *ImageCanvas) DrawTextCentered(text string, y float64) {
	_, sy := c.view.Project(0, y)
	w := c.dst.Bounds().Dx()
	ebitenutil.DebugPrintAt(c.dst, text, centeredX(w, text), int(math.Round(sy)))
}

// centeredX is the left edge that centres text in a screen w pixels wide.
func centeredX(w int, text string) int {
	return (w - len([]rune(text))*glyphW) / 2
}

package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/drop-arcade/internal/core"
)

var (
	upKeys    = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}
	downKeys  = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}
	pauseKeys = []ebiten.Key{ebiten.KeyP}
	quitKeys  = []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}
)

// readInput samples the keyboard, mouse and touch screen for one frame.
// Movement keys are level-triggered; pause and quit fire on the press only.
func readInput() core.InputFrame {
	in := core.NewInputFrame()

	if anyPressed(upKeys) {
		in.Set(core.ActionUp)
	}
	if anyPressed(downKeys) {
		in.Set(core.ActionDown)
	}
	if anyJustPressed(pauseKeys) {
		in.Set(core.ActionPause)
	}
	if anyJustPressed(quitKeys) {
		in.Set(core.ActionQuit)
	}
	if len(inpututil.AppendJustPressedKeys(nil)) > 0 {
		in.Set(core.ActionConfirm)
	}

	in.Pointer = readPointer()
	return in
}

// readPointer reports the left mouse button or the first touch.
func readPointer() core.Pointer {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return core.Pointer{Active: true, X: float64(x), Y: float64(y)}
	}
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return core.Pointer{Active: true, X: float64(x), Y: float64(y)}
	}
	return core.Pointer{}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

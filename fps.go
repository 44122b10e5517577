package wordarena

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsWidget displays the current FPS and TPS. The text is refreshed every
// ~0.5 seconds into a private image.
type fpsWidget struct {
	img     *ebiten.Image
	elapsed float64
	visible bool
}

func (w *fpsWidget) toggle() { w.visible = !w.visible }

func (w *fpsWidget) update(dt float64) {
	if !w.visible {
		return
	}
	if w.img == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		w.img = ebiten.NewImage(100, 32)
		w.elapsed = 0.5
	}
	w.elapsed += dt
	if w.elapsed < 0.5 {
		return
	}
	w.elapsed = 0

	w.img.Clear()
	w.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (w *fpsWidget) draw(dst *ebiten.Image, x, y float64) {
	if !w.visible || w.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	dst.DrawImage(w.img, op)
}

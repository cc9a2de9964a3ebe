package starscroll

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// FPSOverlay displays the current FPS and TPS in the top-left corner.
// The text is refreshed every ~0.5 seconds.
type FPSOverlay struct {
	img     *ebiten.Image
	elapsed float64
	ready   bool
}

// NewFPSOverlay creates an overlay. 100x32 is enough for
// "FPS: 60.0\nTPS: 60.0".
func NewFPSOverlay() *FPSOverlay {
	return &FPSOverlay{img: ebiten.NewImage(100, 32)}
}

// Update advances the refresh timer by dt seconds.
func (o *FPSOverlay) Update(dt float64) {
	o.elapsed += dt
	if o.ready && o.elapsed < 0.5 {
		return
	}
	o.elapsed = 0
	o.ready = true

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

// Draw draws the overlay onto target.
func (o *FPSOverlay) Draw(target Target) {
	target.DrawImage(o.img, nil)
}

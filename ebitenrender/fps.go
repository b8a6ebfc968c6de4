package ebitenrender

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/bounce"
)

// fpsRefreshMillis is how often the overlay text is redrawn.
const fpsRefreshMillis = 500

// fpsOverlay draws the pacer's last FPS report and Ebitengine's TPS in the
// top-left corner. The text image is redrawn every ~0.5 seconds.
type fpsOverlay struct {
	pacer *bounce.Pacer
	clock bounce.Clock
	img   *ebiten.Image
	op    ebiten.DrawImageOptions

	lastRefresh int64
	drawn       bool
}

func newFPSOverlay(pacer *bounce.Pacer, clock bounce.Clock) *fpsOverlay {
	// 100x32 is enough for "FPS: 144\nTPS: 144.0"
	o := &fpsOverlay{
		pacer: pacer,
		clock: clock,
		img:   ebiten.NewImage(100, 32),
	}
	o.op.GeoM.Translate(4, 4)
	return o
}

// due reports whether the text should be redrawn at now, and if so marks it
// as refreshed.
func (o *fpsOverlay) due(now int64) bool {
	if o.drawn && now-o.lastRefresh < fpsRefreshMillis {
		return false
	}
	o.drawn = true
	o.lastRefresh = now
	return true
}

func (o *fpsOverlay) Draw(dst *ebiten.Image) {
	if o.due(o.clock.ElapsedMillis()) {
		o.img.Clear()
		// Semi-transparent background for readability
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %d\nTPS: %.1f", o.pacer.FPS(), ebiten.ActualTPS()))
	}
	dst.DrawImage(o.img, &o.op)
}

package ebitenrender

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/bounce"
)

// newMaskImage uploads a single-channel mask as an RGBA texture with the
// value replicated into every channel, including alpha.
func newMaskImage(m *bounce.Mask) *ebiten.Image {
	img := ebiten.NewImage(m.Width, m.Height)
	pix := make([]byte, 4*len(m.Pix))
	for i, v := range m.Pix {
		o := 4 * i
		pix[o] = v
		pix[o+1] = v
		pix[o+2] = v
		pix[o+3] = v
	}
	img.WritePixels(pix)
	return img
}

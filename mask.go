package bounce

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"
)

// Logo mask dimensions.
const (
	LogoWidth  = 192
	LogoHeight = 96
)

// Mask is a single-channel bitmap that shapes the visible silhouette of the
// sprite. Row 0 maps to the top of the quad (V = 0).
//
// Mask implements drivers.Displayer so tinyfont can draw into it.
type Mask struct {
	Width, Height int
	Pix           []uint8
}

// NewMask allocates a blank w x h mask.
func NewMask(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Mask{Width: w, Height: h, Pix: make([]uint8, w*h)}
}

// At returns the mask value at (x, y). Coordinates outside the bitmap read
// as 0, a transparent border.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return 0
	}
	return m.Pix[y*m.Width+x]
}

// Set stores v at (x, y). Out-of-range coordinates are ignored.
func (m *Mask) Set(x, y int, v uint8) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return
	}
	m.Pix[y*m.Width+x] = v
}

// Sample returns the nearest texel for the texture coordinate (u, v) in
// [0, 1). Coordinates outside that range sample the transparent border.
func (m *Mask) Sample(u, v float64) uint8 {
	if u < 0 || v < 0 {
		return 0
	}
	return m.At(int(u*float64(m.Width)), int(v*float64(m.Height)))
}

// Size implements drivers.Displayer.
func (m *Mask) Size() (x, y int16) {
	return int16(m.Width), int16(m.Height)
}

// SetPixel implements drivers.Displayer. The stored value is the average of
// the color's RGB channels.
func (m *Mask) SetPixel(x, y int16, c color.RGBA) {
	m.Set(int(x), int(y), uint8((uint16(c.R)+uint16(c.G)+uint16(c.B))/3))
}

// Display implements drivers.Displayer. The mask has no device to flush to.
func (m *Mask) Display() error {
	return nil
}

// FillEllipse sets every texel inside the ellipse centred on (cx, cy) with
// radii (rx, ry) to v.
func (m *Mask) FillEllipse(cx, cy, rx, ry float64, v uint8) {
	if rx <= 0 || ry <= 0 {
		return
	}
	for y := 0; y < m.Height; y++ {
		ny := (float64(y) + 0.5 - cy) / ry
		if ny*ny > 1 {
			continue
		}
		for x := 0; x < m.Width; x++ {
			nx := (float64(x) + 0.5 - cx) / rx
			if nx*nx+ny*ny <= 1 {
				m.Pix[y*m.Width+x] = v
			}
		}
	}
}

var (
	maskInk   = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	maskClear = color.RGBA{A: 0xff}
)

// WriteCentered draws s with font so that it is horizontally centred on the
// mask with its baseline at y.
func (m *Mask) WriteCentered(font tinyfont.Fonter, y int16, s string, c color.RGBA) {
	_, w := tinyfont.LineWidth(font, s)
	x := (int16(m.Width) - int16(w)) / 2
	tinyfont.WriteLine(m, font, x, y, s, c)
}

// LogoMask renders the classic logo: "DVD" over a disc with "VIDEO" cut out
// of it.
func LogoMask() *Mask {
	m := NewMask(LogoWidth, LogoHeight)
	m.WriteCentered(&freesans.Bold24pt7b, 46, "DVD", maskInk)
	m.FillEllipse(LogoWidth/2, 72, 86, 18, 0xff)
	m.WriteCentered(&freesans.Bold9pt7b, 79, "VIDEO", maskClear)
	return m
}

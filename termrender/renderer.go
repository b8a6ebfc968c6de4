package termrender

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/phanxgames/bounce"
)

// halfBlock fills the upper half of a cell with the foreground color and
// the lower half with the background, giving two square-ish pixels per cell.
const halfBlock = '▀'

var white = colorful.Color{R: 1, G: 1, B: 1}

// Renderer rasterizes the sprite quad into a tcell screen. It implements
// bounce.Renderer and bounce.Flasher.
type Renderer struct {
	screen   tcell.Screen
	mask     *bounce.Mask
	vertices [bounce.VertexCount]bounce.Vertex

	time  int64
	flash float64

	// Status, when non-empty, is printed on the bottom row.
	Status string
}

// NewRenderer draws mask onto screen. The screen must already be initialized.
func NewRenderer(screen tcell.Screen, mask *bounce.Mask) *Renderer {
	return &Renderer{screen: screen, mask: mask}
}

// UploadGeometry copies the quad's vertices.
func (r *Renderer) UploadGeometry(vertices []bounce.Vertex) {
	copy(r.vertices[:], vertices)
}

// SetTimeUniform stores the elapsed milliseconds for the next draw.
func (r *Renderer) SetTimeUniform(ms int64) {
	r.time = ms
}

// SetFlash sets how far the logo color is pushed toward white.
func (r *Renderer) SetFlash(amount float64) {
	r.flash = amount
}

// LogoColor returns the tint for the stored time and flash.
func (r *Renderer) LogoColor() colorful.Color {
	c := bounce.CycleColor(r.time)
	base := colorful.Color{R: c.R, G: c.G, B: c.B}
	if r.flash > 0 {
		base = base.BlendRgb(white, r.flash)
	}
	return base
}

// DrawFrame clears the screen, rasterizes the logo and shows the result.
func (r *Renderer) DrawFrame() {
	r.screen.Clear()
	w, h := r.screen.Size()
	if w > 0 && h > 0 {
		r.drawLogo(w, h)
		if r.Status != "" {
			r.drawStatus(w, h)
		}
	}
	r.screen.Show()
}

func (r *Renderer) drawLogo(w, h int) {
	tint := r.LogoColor()
	rows := 2 * h

	// Only visit cells that can overlap the quad.
	left := float64(r.vertices[0].X)
	right := float64(r.vertices[1].X)
	top := float64(r.vertices[0].Y)
	bottom := float64(r.vertices[2].Y)
	x0, x1 := clampSpan(ndcToPixel(left, w), ndcToPixel(right, w)+1, w)
	y0, y1 := clampSpan(ndcToPixel(-top, rows)/2, ndcToPixel(-bottom, rows)/2+1, h)

	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			upper := r.sample(cx, 2*cy, w, rows)
			lower := r.sample(cx, 2*cy+1, w, rows)
			if upper == 0 && lower == 0 {
				continue
			}
			style := tcell.StyleDefault.
				Foreground(shade(tint, upper)).
				Background(shade(tint, lower))
			r.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
}

func (r *Renderer) drawStatus(w, h int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	x := 0
	for _, ch := range r.Status {
		if x >= w {
			break
		}
		r.screen.SetContent(x, h-1, ch, nil, style)
		x++
	}
}

// sample returns the mask value under the centre of pixel (px, py) on a
// w x rows pixel grid, or 0 when the pixel is outside the quad.
func (r *Renderer) sample(px, py, w, rows int) uint8 {
	x := (float64(px)+0.5)/float64(w)*2 - 1
	y := 1 - (float64(py)+0.5)/float64(rows)*2

	left := float64(r.vertices[0].X)
	right := float64(r.vertices[1].X)
	top := float64(r.vertices[0].Y)
	bottom := float64(r.vertices[2].Y)
	if x < left || x >= right || y > top || y <= bottom {
		return 0
	}
	u := (x - left) / (right - left)
	v := (top - y) / (top - bottom)
	return r.mask.Sample(u, v)
}

// ndcToPixel maps a normalized coordinate in [-1, 1] onto [0, n).
func ndcToPixel(v float64, n int) int {
	p := (v + 1) / 2 * float64(n)
	if p < 0 {
		return int(p) - 1
	}
	return int(p)
}

func clampSpan(lo, hi, n int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	return lo, hi
}

// shade modulates tint by a mask value and converts it to a terminal color.
// The terminal has no alpha, so the premultiplied result is the color over
// the black background.
func shade(tint colorful.Color, v uint8) tcell.Color {
	m := bounce.Modulate(v, bounce.Color{R: tint.R, G: tint.G, B: tint.B, A: 1})
	rr, gg, bb := colorful.Color{R: m.R, G: m.G, B: m.B}.Clamped().RGB255()
	return tcell.NewRGBColor(int32(rr), int32(gg), int32(bb))
}

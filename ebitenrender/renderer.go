package ebitenrender

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/bounce"
)

// quadIndices draws the six sprite vertices as two triangles.
var quadIndices = []uint16{0, 1, 2, 3, 4, 5}

// Renderer draws the sprite quad into an Ebitengine image through the logo
// shader. It implements bounce.Renderer and bounce.Flasher.
//
// Call SetTarget with the screen before each Screensaver.Present.
type Renderer struct {
	shader *ebiten.Shader
	mask   *ebiten.Image
	maskW  float32
	maskH  float32

	width, height int

	vertices [bounce.VertexCount]ebiten.Vertex
	uniforms map[string]any
	op       ebiten.DrawTrianglesShaderOptions
	target   *ebiten.Image

	time  int64
	flash float64

	// ClearColor fills the target before the quad is drawn.
	ClearColor color.Color
	// Overlay, if set, draws on top of the logo at the end of DrawFrame.
	Overlay func(dst *ebiten.Image)
}

// NewRenderer compiles the logo shader and uploads mask. width and height
// are the logical screen size the normalized coordinates map onto.
func NewRenderer(mask *bounce.Mask, width, height int) (*Renderer, error) {
	if mask == nil || mask.Width == 0 || mask.Height == 0 {
		return nil, errors.New("ebitenrender: empty mask")
	}
	shader, err := compileShader("logo", logoShaderSrc)
	if err != nil {
		return nil, err
	}
	r := &Renderer{
		shader:     shader,
		mask:       newMaskImage(mask),
		maskW:      float32(mask.Width),
		maskH:      float32(mask.Height),
		width:      width,
		height:     height,
		uniforms:   make(map[string]any, 2),
		ClearColor: color.Black,
	}
	r.op.Images[0] = r.mask
	r.op.Uniforms = r.uniforms
	return r, nil
}

// SetTarget sets the image DrawFrame renders into.
func (r *Renderer) SetTarget(target *ebiten.Image) {
	r.target = target
}

// UploadGeometry converts the normalized quad into screen-space vertices.
func (r *Renderer) UploadGeometry(vertices []bounce.Vertex) {
	toScreenVertices(vertices, r.vertices[:], float32(r.width), float32(r.height), r.maskW, r.maskH)
}

// SetTimeUniform stores the elapsed milliseconds for the next draw.
func (r *Renderer) SetTimeUniform(ms int64) {
	r.time = ms
}

// SetFlash sets how far the logo color is pushed toward white.
func (r *Renderer) SetFlash(amount float64) {
	r.flash = amount
}

// DrawFrame clears the target and draws the logo. Ebitengine presents the
// frame and schedules the next one once Draw returns.
func (r *Renderer) DrawFrame() {
	if r.target == nil {
		return
	}
	r.target.Fill(r.ClearColor)

	// The hue repeats every cycle, so the uniform only needs the phase.
	r.uniforms["Time"] = int32(r.time % bounce.HueCycleMillis)
	r.uniforms["Flash"] = float32(r.flash)
	r.target.DrawTrianglesShader(r.vertices[:], quadIndices, r.shader, &r.op)

	if r.Overlay != nil {
		r.Overlay(r.target)
	}
}

// Vertices returns the screen-space vertices of the last upload. The slice
// MUST NOT be mutated.
func (r *Renderer) Vertices() []ebiten.Vertex {
	return r.vertices[:]
}

// toScreenVertices maps normalized device coordinates onto a w x h screen
// (Y flipped, origin top-left) and UVs onto mask texels, writing into dst.
// dst must be at least len(src) in length.
//
// screenX = (x + 1) * w / 2, screenY = (1 - y) * h / 2
func toScreenVertices(src []bounce.Vertex, dst []ebiten.Vertex, w, h, texW, texH float32) {
	hw, hh := w/2, h/2
	for i := range src {
		s := &src[i]
		dst[i] = ebiten.Vertex{
			DstX:   (s.X + 1) * hw,
			DstY:   (1 - s.Y) * hh,
			SrcX:   s.U * texW,
			SrcY:   s.V * texH,
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}
}

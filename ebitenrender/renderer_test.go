package ebitenrender

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/bounce"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// --- toScreenVertices ---

func TestToScreenVerticesCorners(t *testing.T) {
	src := []bounce.Vertex{
		{X: -1, Y: 1, U: 0, V: 0},
		{X: 1, Y: 1, U: 1, V: 0},
		{X: -1, Y: -1, U: 0, V: 1},
		{X: 1, Y: -1, U: 1, V: 1},
		{X: 0, Y: 0, U: 0.5, V: 0.5},
	}
	want := []struct{ dx, dy, sx, sy float64 }{
		{0, 0, 0, 0},
		{800, 0, 192, 0},
		{0, 600, 0, 96},
		{800, 600, 192, 96},
		{400, 300, 96, 48},
	}
	dst := make([]ebiten.Vertex, len(src))
	toScreenVertices(src, dst, 800, 600, 192, 96)

	for i, w := range want {
		v := dst[i]
		if !approxEqual(float64(v.DstX), w.dx, 1e-4) || !approxEqual(float64(v.DstY), w.dy, 1e-4) {
			t.Errorf("vertex %d dst = (%v, %v), want (%v, %v)", i, v.DstX, v.DstY, w.dx, w.dy)
		}
		if !approxEqual(float64(v.SrcX), w.sx, 1e-4) || !approxEqual(float64(v.SrcY), w.sy, 1e-4) {
			t.Errorf("vertex %d src = (%v, %v), want (%v, %v)", i, v.SrcX, v.SrcY, w.sx, w.sy)
		}
		if v.ColorR != 1 || v.ColorG != 1 || v.ColorB != 1 || v.ColorA != 1 {
			t.Errorf("vertex %d color = (%v, %v, %v, %v), want white", i, v.ColorR, v.ColorG, v.ColorB, v.ColorA)
		}
	}
}

// --- shader ---

func TestLogoShaderCompiles(t *testing.T) {
	if _, err := compileShader("logo", logoShaderSrc); err != nil {
		t.Fatalf("compileShader: %v", err)
	}
}

func TestCompileShaderReportsDiagnostics(t *testing.T) {
	_, err := compileShader("broken", "//kage:unit pixels\npackage main\n\nfunc Fragment(")
	if err == nil {
		t.Fatal("expected a compile error")
	}
	var se *ShaderError
	if !errors.As(err, &se) {
		t.Fatalf("error %T is not a *ShaderError", err)
	}
	if se.Name != "broken" || se.Log == "" {
		t.Errorf("ShaderError = %+v, want name and diagnostic text", se)
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("Error() = %q, want the shader name", err.Error())
	}
}

// --- Renderer ---

func TestNewRendererRejectsEmptyMask(t *testing.T) {
	if _, err := NewRenderer(nil, 800, 600); err == nil {
		t.Error("nil mask: expected error")
	}
	if _, err := NewRenderer(bounce.NewMask(0, 4), 800, 600); err == nil {
		t.Error("empty mask: expected error")
	}
}

func TestRendererUploadGeometry(t *testing.T) {
	r, err := NewRenderer(bounce.NewMask(192, 96), 800, 600)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	s := bounce.NewSprite(-1, 1, 0.5)
	r.UploadGeometry(s.Vertices())

	v := r.Vertices()
	if len(v) != bounce.VertexCount {
		t.Fatalf("len(Vertices()) = %d, want %d", len(v), bounce.VertexCount)
	}
	// Bottom-right corner of a 0.5 quad in the top-left of 800x600.
	if !approxEqual(float64(v[5].DstX), 200, 1e-4) || !approxEqual(float64(v[5].DstY), 150, 1e-4) {
		t.Errorf("bottom-right = (%v, %v), want (200, 150)", v[5].DstX, v[5].DstY)
	}
	if v[5].SrcX != 192 || v[5].SrcY != 96 {
		t.Errorf("bottom-right uv = (%v, %v), want (192, 96)", v[5].SrcX, v[5].SrcY)
	}
}

func TestRendererUniforms(t *testing.T) {
	r, err := NewRenderer(bounce.LogoMask(), 800, 600)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	r.SetTarget(ebiten.NewImage(800, 600))
	r.SetTimeUniform(bounce.HueCycleMillis + 1234)
	r.SetFlash(0.25)

	overlaid := false
	r.Overlay = func(dst *ebiten.Image) { overlaid = true }
	r.DrawFrame()

	if got := r.uniforms["Time"]; got != int32(1234) {
		t.Errorf("Time uniform = %v, want 1234", got)
	}
	if got := r.uniforms["Flash"]; got != float32(0.25) {
		t.Errorf("Flash uniform = %v, want 0.25", got)
	}
	if !overlaid {
		t.Error("Overlay not called")
	}
}

func TestRendererWithoutTargetIsNoop(t *testing.T) {
	r, err := NewRenderer(bounce.NewMask(4, 4), 100, 100)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	r.SetTimeUniform(500)
	r.DrawFrame()
	if _, ok := r.uniforms["Time"]; ok {
		t.Error("DrawFrame without a target should not touch uniforms")
	}
}

// --- Game ---

func TestGameLayoutIsFixed(t *testing.T) {
	g, err := NewGame(bounce.DefaultConfig(), &bounce.ManualClock{}, bounce.LogoMask())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	w, h := g.Layout(1920, 1080)
	if w != 800 || h != 600 {
		t.Errorf("Layout = (%d, %d), want (800, 600)", w, h)
	}
}

func TestGameDrivesScreensaver(t *testing.T) {
	clock := &bounce.ManualClock{}
	cfg := bounce.DefaultConfig()
	cfg.ShowFPS = true
	g, err := NewGame(cfg, clock, bounce.LogoMask())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	g.Screensaver().Pacer().Sleep = clock.Sleep
	if g.Renderer().Overlay == nil {
		t.Fatal("ShowFPS did not install the overlay")
	}

	before := g.Renderer().Vertices()[0].DstX
	clock.Set(100)
	g.saver.Step()
	g.Draw(ebiten.NewImage(800, 600))

	if after := g.Renderer().Vertices()[0].DstX; after <= before {
		t.Errorf("sprite did not move right: %v -> %v", before, after)
	}
	if clock.ElapsedMillis() != 106 {
		t.Errorf("clock = %d after one paced frame, want 106", clock.ElapsedMillis())
	}
}

func TestPrepareReportsOnWriter(t *testing.T) {
	clock := &bounce.ManualClock{}
	var out strings.Builder
	g, err := prepare(bounce.DefaultConfig(), clock, bounce.LogoMask(), &out)
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	if out.String() != "Shaders compiled!\n" {
		t.Fatalf("output = %q, want the compile line", out.String())
	}

	g.Screensaver().Pacer().OnFPS(144)
	if want := "Shaders compiled!\nFPS: 144\n"; out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestPrepareNilWriter(t *testing.T) {
	g, err := prepare(bounce.DefaultConfig(), &bounce.ManualClock{}, bounce.LogoMask(), nil)
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	if g.Screensaver().Pacer().OnFPS != nil {
		t.Error("OnFPS installed without a writer")
	}
}

package ebitenrender

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/bounce"
)

// Game adapts a bounce.Screensaver to ebiten.Game. Update advances the
// simulation; Draw renders and paces the frame.
type Game struct {
	cfg      bounce.Config
	saver    *bounce.Screensaver
	renderer *Renderer
}

// NewGame builds the renderer and screensaver for cfg using mask as the logo.
func NewGame(cfg bounce.Config, clock bounce.Clock, mask *bounce.Mask) (*Game, error) {
	r, err := NewRenderer(mask, cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	g := &Game{
		cfg:      cfg,
		saver:    bounce.New(cfg, clock, r),
		renderer: r,
	}
	if cfg.ShowFPS {
		r.Overlay = newFPSOverlay(g.saver.Pacer(), clock).Draw
	}
	return g, nil
}

// Screensaver returns the driven screensaver.
func (g *Game) Screensaver() *bounce.Screensaver { return g.saver }

// Renderer returns the Ebitengine renderer.
func (g *Game) Renderer() *Renderer { return g.renderer }

// Update implements ebiten.Game. Escape ends the run.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.saver.Step()
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetTarget(screen)
	g.saver.Present()
}

// Layout implements ebiten.Game. The logical screen never changes size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

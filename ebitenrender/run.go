package ebitenrender

import (
	"fmt"
	"io"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/bounce"
)

// Run opens a fixed-size window and runs the screensaver until the window is
// closed or Escape is pressed. Once the shader is compiled, Run writes
// "Shaders compiled!" to out, then "FPS: N" once per second. out may be nil.
//
// Vsync is disabled and Update runs once per frame so the screensaver's own
// pacer is the only frame cap.
func Run(cfg bounce.Config, out io.Writer) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetVsyncEnabled(false)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	g, err := prepare(cfg, bounce.NewSystemClock(), bounce.LogoMask(), out)
	if err != nil {
		return err
	}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// prepare builds the game and reports progress and FPS on out.
func prepare(cfg bounce.Config, clock bounce.Clock, mask *bounce.Mask, out io.Writer) (*Game, error) {
	g, err := NewGame(cfg, clock, mask)
	if err != nil {
		return nil, err
	}
	if out != nil {
		_, _ = fmt.Fprintln(out, "Shaders compiled!")
		g.saver.Pacer().OnFPS = func(fps int) {
			_, _ = fmt.Fprintf(out, "FPS: %d\n", fps)
		}
	}
	return g, nil
}

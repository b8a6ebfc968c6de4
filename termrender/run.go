package termrender

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/bounce"
)

// Run takes over the terminal and runs the screensaver until Esc, q or
// Ctrl-C. The terminal is restored before Run returns.
func Run(cfg bounce.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	saver, r := setup(screen, cfg, bounce.NewSystemClock())

	if cfg.Sound {
		b, err := NewBlipper()
		if err != nil {
			// Non-fatal, the screensaver runs silently
			r.Status = "audio unavailable: " + err.Error()
		} else {
			defer b.Close()
			saver.OnBounce = b.Play
		}
	}

	Loop(screen, saver)
	return nil
}

// setup prepares screen and wires a renderer and screensaver to it.
func setup(screen tcell.Screen, cfg bounce.Config, clock bounce.Clock) (*bounce.Screensaver, *Renderer) {
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.HideCursor()

	r := NewRenderer(screen, bounce.LogoMask())
	saver := bounce.New(cfg, clock, r)
	if cfg.ShowFPS {
		saver.Pacer().OnFPS = func(fps int) {
			r.Status = fmt.Sprintf("FPS: %d", fps)
		}
	}
	return saver, r
}

// Loop renders frames until a quit key arrives. Pending events are drained
// between frames without blocking, so the loop stays on one goroutine.
func Loop(screen tcell.Screen, saver *bounce.Screensaver) {
	for {
		for screen.HasPendingEvent() {
			if !handleEvent(screen, screen.PollEvent()) {
				return
			}
		}
		saver.Frame()
	}
}

// handleEvent reacts to one event and reports whether to keep running.
func handleEvent(screen tcell.Screen, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case nil:
		// Screen finalized.
		return false
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
			return false
		}
	case *tcell.EventResize:
		screen.Sync()
	}
	return true
}

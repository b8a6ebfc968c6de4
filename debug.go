package bounce

import (
	"fmt"
	"os"
)

// debugLogHit prints the bounce, the sprite position and the new velocity to
// stderr. Only called when Config.Debug is set.
func (s *Screensaver) debugLogHit(hit Hit) {
	b := s.sim.Sprite().Bounds()
	_, _ = fmt.Fprintf(os.Stderr,
		"[bounce] hit: %s | pos: (%.3f, %.3f) | velocity: (%g, %g) | bounces: %d | corners: %d\n",
		hit, b.X, b.Y, s.sim.Velocity.X, s.sim.Velocity.Y, s.bounces, s.corners)
}

// debugCheckFrameCost warns on stderr when a frame took longer than twice
// its budget.
func (s *Screensaver) debugCheckFrameCost() {
	target := s.pacer.TargetFrameTime()
	cost := s.pacer.LastFrameTime()
	if target > 0 && cost > 2*target {
		_, _ = fmt.Fprintf(os.Stderr, "[bounce] warning: frame took %dms (budget %dms)\n", cost, target)
	}
}

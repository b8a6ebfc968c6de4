package bounce

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Corner flash timing.
const (
	flashDuration = 0.6
)

// Pulse animates a single value from 1 down to 0 and can be retriggered.
// Call Update(dt) each frame and read Value.
//
// There is no global animation manager; the owner calls Update itself.
type Pulse struct {
	tween    *gween.Tween
	duration float32
	fn       ease.TweenFunc
	value    float64
	Done     bool
}

// NewPulse creates an idle pulse that decays over duration seconds using fn.
func NewPulse(duration float32, fn ease.TweenFunc) *Pulse {
	return &Pulse{duration: duration, fn: fn, Done: true}
}

// Trigger restarts the pulse at full strength.
func (p *Pulse) Trigger() {
	p.tween = gween.New(1, 0, p.duration, p.fn)
	p.value = 1
	p.Done = false
}

// Update advances the pulse by dt seconds.
func (p *Pulse) Update(dt float32) {
	if p.Done || p.tween == nil {
		return
	}
	val, finished := p.tween.Update(dt)
	p.value = float64(val)
	if finished {
		p.value = 0
		p.Done = true
	}
}

// Value returns the current strength in [0, 1].
func (p *Pulse) Value() float64 {
	return p.value
}

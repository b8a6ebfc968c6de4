package bounce

import "github.com/tanema/gween/ease"

// Renderer draws the sprite. It is called once per frame, in order:
// UploadGeometry, SetTimeUniform, DrawFrame.
type Renderer interface {
	// UploadGeometry replaces the quad's vertex positions. UVs are unchanged
	// between calls. The slice is only valid for the duration of the call.
	UploadGeometry(vertices []Vertex)
	// SetTimeUniform sets the elapsed milliseconds the color cycle is
	// derived from.
	SetTimeUniform(ms int64)
	// DrawFrame clears the target, draws the quad and presents it.
	DrawFrame()
}

// Flasher is implemented by renderers that can brighten the logo toward
// white. amount is in [0, 1].
type Flasher interface {
	SetFlash(amount float64)
}

// Screensaver owns every piece of per-process state: clock, pacer, the
// simulated sprite and the renderer. It runs on a single goroutine.
type Screensaver struct {
	cfg      Config
	clock    Clock
	pacer    *Pacer
	sim      *Simulator
	renderer Renderer
	flash    *Pulse

	lastDelta float64
	bounces   int
	corners   int

	// OnBounce, if set, is called after every frame with at least one edge hit.
	OnBounce func(hit Hit)
}

// New builds a screensaver from cfg. The sprite starts with its top-left
// corner at the top-left of the viewport. r may be nil for headless runs.
func New(cfg Config, clock Clock, r Renderer) *Screensaver {
	s := &Screensaver{
		cfg:      cfg,
		clock:    clock,
		pacer:    NewPacer(clock, cfg.MaxFPS),
		renderer: r,
		flash:    NewPulse(flashDuration, ease.OutQuad),
	}
	sprite := NewSprite(-1, 1, float32(cfg.Size))
	var sink GeometrySink
	if r != nil {
		sink = r
		r.UploadGeometry(sprite.Vertices())
	}
	s.sim = NewSimulator(sprite, cfg.Velocity, cfg.Speed, sink)
	return s
}

// Config returns the configuration the screensaver was built with.
func (s *Screensaver) Config() Config { return s.cfg }

// Clock returns the time source.
func (s *Screensaver) Clock() Clock { return s.clock }

// Pacer returns the frame pacer. Set Pacer().OnFPS to receive FPS reports.
func (s *Screensaver) Pacer() *Pacer { return s.pacer }

// Simulator returns the bounce simulator.
func (s *Screensaver) Simulator() *Simulator { return s.sim }

// Bounces returns the number of frames with at least one edge hit.
func (s *Screensaver) Bounces() int { return s.bounces }

// Corners returns the number of frames where both axes bounced at once.
func (s *Screensaver) Corners() int { return s.corners }

// LastDelta returns the delta in seconds used by the most recent Step.
func (s *Screensaver) LastDelta() float64 { return s.lastDelta }

// Flash returns the current corner flash strength in [0, 1].
func (s *Screensaver) Flash() float64 { return s.flash.Value() }

// Step begins a frame and advances the simulation. The renderer receives the
// new geometry. Event-driven hosts call Step from their update callback.
func (s *Screensaver) Step() Hit {
	delta := s.pacer.BeginFrame()
	s.lastDelta = delta

	hit := s.sim.Advance(delta)
	if hit.Corner() {
		s.corners++
		s.flash.Trigger()
	} else {
		s.flash.Update(float32(delta))
	}
	if hit != 0 {
		s.bounces++
		if s.cfg.Debug {
			s.debugLogHit(hit)
		}
		if s.OnBounce != nil {
			s.OnBounce(hit)
		}
	}
	return hit
}

// Present hands the current time to the renderer, draws, and paces the
// frame. Event-driven hosts call Present from their draw callback.
func (s *Screensaver) Present() {
	if s.renderer != nil {
		if f, ok := s.renderer.(Flasher); ok {
			f.SetFlash(s.flash.Value())
		}
		s.renderer.SetTimeUniform(s.clock.ElapsedMillis())
		s.renderer.DrawFrame()
	}
	s.pacer.EndFrame()
	if s.cfg.Debug {
		s.debugCheckFrameCost()
	}
}

// Frame runs one full iteration: Step then Present.
func (s *Screensaver) Frame() Hit {
	hit := s.Step()
	s.Present()
	return hit
}

package bounce

import "time"

// fpsWindow is how often, in milliseconds, the frame counter is reported.
const fpsWindow = 1000

// Pacer measures per-frame deltas and throttles fast frames so the loop
// never runs faster than maxFPS. It is a soft cap: slow frames are never
// sped up, only fast ones are held back.
//
// All state is owned by the single frame loop; Pacer is not safe for
// concurrent use.
type Pacer struct {
	clock  Clock
	target int64

	lastFrameStart int64
	frameStart     int64
	lastFrameTime  int64
	frames         int
	lastFPSReport  int64
	lastFPS        int

	// Sleep blocks the calling goroutine. Defaults to time.Sleep.
	Sleep func(time.Duration)
	// OnFPS, if set, receives the number of frames completed in each
	// one-second window. Purely observational.
	OnFPS func(fps int)
}

// NewPacer creates a pacer reading time from clock. The target frame time is
// 1000/maxFPS milliseconds, truncated (144 FPS gives 6 ms). A maxFPS of zero
// or less disables throttling.
func NewPacer(clock Clock, maxFPS int) *Pacer {
	var target int64
	if maxFPS > 0 {
		target = int64(1000 / maxFPS)
	}
	return &Pacer{
		clock:  clock,
		target: target,
		Sleep:  time.Sleep,
	}
}

// TargetFrameTime returns the frame budget in milliseconds.
func (p *Pacer) TargetFrameTime() int64 {
	return p.target
}

// BeginFrame marks the start of a frame and returns the seconds elapsed since
// the previous BeginFrame. The first call measures from time zero, so the
// first delta covers all start-up time.
func (p *Pacer) BeginFrame() float64 {
	now := p.clock.ElapsedMillis()
	delta := float64(now-p.lastFrameStart) / 1000
	p.lastFrameStart = now
	p.frameStart = now
	return delta
}

// EndFrame reports FPS once per second and, when the frame finished under
// budget, sleeps for the remainder of the budget.
func (p *Pacer) EndFrame() {
	now := p.clock.ElapsedMillis()
	if now-p.lastFPSReport >= fpsWindow {
		p.lastFPS = p.frames
		if p.OnFPS != nil {
			p.OnFPS(p.frames)
		}
		p.lastFPSReport = now
		p.frames = 0
	}

	p.lastFrameTime = now - p.frameStart
	if p.lastFrameTime < p.target {
		p.Sleep(time.Duration(p.target-p.lastFrameTime) * time.Millisecond)
	}

	p.frames++
}

// LastFrameTime returns the cost in milliseconds of the most recent frame,
// measured before any sleep.
func (p *Pacer) LastFrameTime() int64 {
	return p.lastFrameTime
}

// FPS returns the frame count of the last completed one-second window.
func (p *Pacer) FPS() int {
	return p.lastFPS
}

package bounce

import "strings"

// Rebound velocities assigned when the sprite crosses an edge. They are not
// mirror images of each other, which makes the path drift between bounces.
const (
	ReboundLeft   = 0.7
	ReboundRight  = -1.0
	ReboundTop    = -0.9
	ReboundBottom = 1.2
)

// Hit is a bit set of the edges crossed during one Advance.
type Hit uint8

const (
	HitLeft Hit = 1 << iota
	HitRight
	HitTop
	HitBottom
)

// Horizontal reports whether the left or right edge was crossed.
func (h Hit) Horizontal() bool { return h&(HitLeft|HitRight) != 0 }

// Vertical reports whether the top or bottom edge was crossed.
func (h Hit) Vertical() bool { return h&(HitTop|HitBottom) != 0 }

// Corner reports whether both axes bounced in the same frame.
func (h Hit) Corner() bool { return h.Horizontal() && h.Vertical() }

func (h Hit) String() string {
	if h == 0 {
		return "none"
	}
	var parts []string
	for _, e := range [...]struct {
		bit  Hit
		name string
	}{
		{HitLeft, "left"},
		{HitRight, "right"},
		{HitTop, "top"},
		{HitBottom, "bottom"},
	} {
		if h&e.bit != 0 {
			parts = append(parts, e.name)
		}
	}
	return strings.Join(parts, "|")
}

// GeometrySink receives the sprite's vertices after every step.
// Renderer satisfies it.
type GeometrySink interface {
	UploadGeometry(vertices []Vertex)
}

// Simulator owns the sprite and its velocity and advances them each frame.
type Simulator struct {
	sprite   Sprite
	Velocity Vec2
	Speed    float64

	sink GeometrySink
}

// NewSimulator creates a simulator for sprite moving along velocity, scaled by
// speed. sink may be nil.
func NewSimulator(sprite Sprite, velocity Vec2, speed float64, sink GeometrySink) *Simulator {
	return &Simulator{
		sprite:   sprite,
		Velocity: velocity,
		Speed:    speed,
		sink:     sink,
	}
}

// Sprite returns the simulated sprite.
func (s *Simulator) Sprite() *Sprite {
	return &s.sprite
}

// Advance moves the sprite by velocity*speed*delta, then checks each edge
// against the moved position and reassigns the matching velocity component.
// All four edges are checked every call. When both walls of an axis are
// crossed in one call (a sprite wider than the viewport), the left and top
// rebounds win. The new geometry is published to the sink.
func (s *Simulator) Advance(delta float64) Hit {
	dx := float32(s.Velocity.X * s.Speed * delta)
	dy := float32(s.Velocity.Y * s.Speed * delta)
	s.sprite.Translate(dx, dy)

	// Per axis, the later check overrides the earlier one, so left and top
	// take priority when both walls are crossed.
	var hit Hit
	if s.sprite.Right() >= 1 {
		s.Velocity.X = ReboundRight
		hit |= HitRight
	}
	if s.sprite.Left() <= -1 {
		s.Velocity.X = ReboundLeft
		hit |= HitLeft
	}
	if s.sprite.Bottom() <= -1 {
		s.Velocity.Y = ReboundBottom
		hit |= HitBottom
	}
	if s.sprite.Top() >= 1 {
		s.Velocity.Y = ReboundTop
		hit |= HitTop
	}

	if s.sink != nil {
		s.sink.UploadGeometry(s.sprite.Vertices())
	}
	return hit
}

package bounce

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Vec2 is a 2D vector used for velocities and positions in normalized
// device coordinates.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in normalized device coordinates. Unlike
// screen space, Y grows upward: (X, Y) is the top-left corner and the
// rectangle extends Width to the right and Height downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Left returns the X coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Top returns the Y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y - r.Height }

package bounce

// VertexCount is the number of vertices in a sprite quad (two triangles).
const VertexCount = 6

// Vertex is one corner of the sprite quad in normalized device coordinates
// with its texture coordinate.
type Vertex struct {
	X, Y, Z float32
	U, V    float32
}

// Vertex indices used as edge proxies. v0 is the top-left corner, v1 the
// top-right corner and v2 the bottom-left corner.
const (
	vertTopLeft    = 0
	vertTopRight   = 1
	vertBottomLeft = 2
)

// Sprite is the animated quad. Only positions move; the UV mapping set by
// NewSprite is fixed for the sprite's lifetime.
type Sprite struct {
	vertices [VertexCount]Vertex
}

// NewSprite returns a size x size quad whose top-left corner sits at (x, y).
func NewSprite(x, y, size float32) Sprite {
	r, b := x+size, y-size
	return Sprite{vertices: [VertexCount]Vertex{
		{X: x, Y: y, U: 0, V: 0},
		{X: r, Y: y, U: 1, V: 0},
		{X: x, Y: b, U: 0, V: 1},
		{X: x, Y: b, U: 0, V: 1},
		{X: r, Y: y, U: 1, V: 0},
		{X: r, Y: b, U: 1, V: 1},
	}}
}

// Vertices returns the sprite's vertices. The slice aliases the sprite and
// MUST NOT be mutated by the caller.
func (s *Sprite) Vertices() []Vertex {
	return s.vertices[:]
}

// Translate moves every vertex by (dx, dy). The quad moves rigidly.
func (s *Sprite) Translate(dx, dy float32) {
	for i := range s.vertices {
		s.vertices[i].X += dx
		s.vertices[i].Y += dy
	}
}

// Left returns the left edge, read from the top-left vertex.
func (s *Sprite) Left() float32 { return s.vertices[vertTopLeft].X }

// Right returns the right edge, read from the top-right vertex.
func (s *Sprite) Right() float32 { return s.vertices[vertTopRight].X }

// Top returns the top edge, read from the top-left vertex.
func (s *Sprite) Top() float32 { return s.vertices[vertTopLeft].Y }

// Bottom returns the bottom edge, read from the bottom-left vertex.
func (s *Sprite) Bottom() float32 { return s.vertices[vertBottomLeft].Y }

// Bounds scans all vertices and returns the axis-aligned bounding box.
func (s *Sprite) Bounds() Rect {
	return computeAABB(s.vertices[:])
}

// computeAABB returns the bounding box of verts with Y pointing up.
func computeAABB(verts []Vertex) Rect {
	if len(verts) == 0 {
		return Rect{}
	}
	minX, maxX := verts[0].X, verts[0].X
	minY, maxY := verts[0].Y, verts[0].Y
	for i := 1; i < len(verts); i++ {
		x, y := verts[i].X, verts[i].Y
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	return Rect{
		X:      float64(minX),
		Y:      float64(maxY),
		Width:  float64(maxX - minX),
		Height: float64(maxY - minY),
	}
}

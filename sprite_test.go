package bounce

import "testing"

func TestNewSpriteLayout(t *testing.T) {
	s := NewSprite(-1, 1, 0.5)
	want := [VertexCount]Vertex{
		{X: -1, Y: 1, U: 0, V: 0},
		{X: -0.5, Y: 1, U: 1, V: 0},
		{X: -1, Y: 0.5, U: 0, V: 1},
		{X: -1, Y: 0.5, U: 0, V: 1},
		{X: -0.5, Y: 1, U: 1, V: 0},
		{X: -0.5, Y: 0.5, U: 1, V: 1},
	}
	for i, v := range s.Vertices() {
		if v != want[i] {
			t.Errorf("vertex %d = %+v, want %+v", i, v, want[i])
		}
	}
}

func TestSpriteEdges(t *testing.T) {
	s := NewSprite(-0.25, 0.75, 0.5)
	if s.Left() != -0.25 || s.Right() != 0.25 || s.Top() != 0.75 || s.Bottom() != 0.25 {
		t.Errorf("edges = (l %v, r %v, t %v, b %v), want (-0.25, 0.25, 0.75, 0.25)",
			s.Left(), s.Right(), s.Top(), s.Bottom())
	}
}

func TestSpriteTranslateIsRigid(t *testing.T) {
	s := NewSprite(-0.5, 0.5, 0.25)
	before := append([]Vertex(nil), s.Vertices()...)
	s.Translate(0.125, -0.25)
	for i, v := range s.Vertices() {
		if v.X != before[i].X+0.125 || v.Y != before[i].Y-0.25 {
			t.Errorf("vertex %d moved to (%v, %v), want (%v, %v)",
				i, v.X, v.Y, before[i].X+0.125, before[i].Y-0.25)
		}
		if v.U != before[i].U || v.V != before[i].V || v.Z != before[i].Z {
			t.Errorf("vertex %d uv/z changed: %+v -> %+v", i, before[i], v)
		}
	}
}

func TestSpriteBounds(t *testing.T) {
	s := NewSprite(-0.5, 0.5, 0.25)
	b := s.Bounds()
	assertNear(t, "X", b.X, -0.5)
	assertNear(t, "Y", b.Y, 0.5)
	assertNear(t, "Width", b.Width, 0.25)
	assertNear(t, "Height", b.Height, 0.25)
}

func TestComputeAABBEmpty(t *testing.T) {
	if got := computeAABB(nil); got != (Rect{}) {
		t.Errorf("computeAABB(nil) = %v, want zero Rect", got)
	}
}


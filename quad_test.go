package glyph_test

import (
	"testing"

	"github.com/go-theft-auto/glyph"
)

func TestNewQuadLayout(t *testing.T) {
	q := glyph.NewQuad(10, 20, 30, 40)

	// top-left, bottom-left, bottom-right, top-left, bottom-right, top-right
	want := [glyph.QuadVertices][glyph.VertexFloats]float32{
		{10, 60, 0, 0, 0},
		{10, 20, 0, 0, 1},
		{40, 20, 0, 1, 1},
		{10, 60, 0, 0, 0},
		{40, 20, 0, 1, 1},
		{40, 60, 0, 1, 0},
	}
	for i, w := range want {
		if got := q.Vertex(i); got != w {
			t.Errorf("vertex %d = %v, want %v", i, got, w)
		}
	}
}

func TestQuadSizes(t *testing.T) {
	if glyph.QuadBytes != 120 {
		t.Errorf("QuadBytes = %d, want 120", glyph.QuadBytes)
	}
	if glyph.VertexStride != 20 || glyph.TexCoordOffset != 12 {
		t.Errorf("stride = %d offset = %d, want 20 and 12", glyph.VertexStride, glyph.TexCoordOffset)
	}
}

func TestQuadBounds(t *testing.T) {
	q := glyph.NewQuad(-5, 2, 10, 3)
	lo, hi := q.Bounds()
	if lo != (glyph.Vec2{X: -5, Y: 2}) || hi != (glyph.Vec2{X: 5, Y: 5}) {
		t.Errorf("Bounds = %v-%v, want (-5,2)-(5,5)", lo, hi)
	}
}

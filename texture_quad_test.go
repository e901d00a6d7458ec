package glyph_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/glyph"
)

func TestTextureQuadCorners(t *testing.T) {
	for _, tex := range []uint32{0, 7, 42} {
		s := &recordingStreamer{}
		r := glyph.NewTextureQuadRenderer(s)
		ident := mgl32.Ident4()

		r.Draw(newRecordingShader(), tex, 0, 0, 20, 20, ident, ident, ident)

		if len(s.draws) != 1 {
			t.Fatalf("draws = %d, want 1", len(s.draws))
		}
		if s.draws[0].texture != tex {
			t.Errorf("texture = %d, want %d", s.draws[0].texture, tex)
		}

		corners := make(map[glyph.Vec2]bool)
		q := s.draws[0].quad
		for i := 0; i < glyph.QuadVertices; i++ {
			v := q.Vertex(i)
			corners[glyph.Vec2{X: v[0], Y: v[1]}] = true
		}
		want := []glyph.Vec2{{X: 0, Y: 0}, {X: 0, Y: 20}, {X: 20, Y: 20}, {X: 20, Y: 0}}
		if len(corners) != len(want) {
			t.Errorf("texture %d: %d distinct corners, want 4", tex, len(corners))
		}
		for _, c := range want {
			if !corners[c] {
				t.Errorf("texture %d: missing corner %v", tex, c)
			}
		}
	}
}

func TestTextureQuadMatchesTextQuad(t *testing.T) {
	s := &recordingStreamer{}
	r := glyph.NewTextureQuadRenderer(s)
	ident := mgl32.Ident4()

	r.Draw(newRecordingShader(), 1, 3, 4, 5, 6, ident, ident, ident)

	if s.draws[0].quad != glyph.NewQuad(3, 4, 5, 6) {
		t.Error("texture quad should use the text quad layout")
	}
	if r.Quad(3, 4, 5, 6) != s.draws[0].quad {
		t.Error("Quad should return the uploaded geometry")
	}
}

func TestTextureQuadMatricesVerbatim(t *testing.T) {
	r := glyph.NewTextureQuadRenderer(&recordingStreamer{})
	sh := newRecordingShader()

	model := mgl32.Translate3D(1, 2, 3)
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	projection := mgl32.Perspective(mgl32.DegToRad(45), 16.0/9.0, 0.1, 100)

	r.Draw(sh, 1, 0, 0, 1, 1, model, view, projection)

	if sh.uses != 1 {
		t.Errorf("Use called %d times, want 1", sh.uses)
	}
	if sh.mat4s[glyph.UniformModel] != model {
		t.Error("model not passed through")
	}
	if sh.mat4s[glyph.UniformView] != view {
		t.Error("view not passed through")
	}
	if sh.mat4s[glyph.UniformProjection] != projection {
		t.Error("projection not passed through")
	}
}

func TestTextureQuadTint(t *testing.T) {
	r := glyph.NewTextureQuadRenderer(&recordingStreamer{})
	sh := newRecordingShader()
	ident := mgl32.Ident4()

	r.Draw(sh, 1, 0, 0, 1, 1, ident, ident, ident)
	if got := sh.vec3s[glyph.UniformTextColor]; got != [3]float32{1, 1, 1} {
		t.Errorf("default tint = %v, want white", got)
	}

	r.SetTint(glyph.ColorRed)
	r.Draw(sh, 1, 0, 0, 1, 1, ident, ident, ident)
	if got := sh.vec3s[glyph.UniformTextColor]; got != [3]float32{1, 0, 0} {
		t.Errorf("tint = %v, want red", got)
	}
}

package glyph_test

import (
	"errors"
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/glyph"
)

// draw is one recorded UploadAndDraw call.
type draw struct {
	quad    glyph.Quad
	texture uint32
}

// recordingStreamer copies every uploaded quad instead of touching the GPU.
type recordingStreamer struct {
	draws []draw
}

func (s *recordingStreamer) UploadAndDraw(q *glyph.Quad, texture uint32) {
	s.draws = append(s.draws, draw{quad: *q, texture: texture})
}

// recordingShader keeps the last value set for each uniform.
type recordingShader struct {
	uses  int
	mat4s map[string]mgl32.Mat4
	vec3s map[string][3]float32
	ints  map[string]int32
}

func newRecordingShader() *recordingShader {
	return &recordingShader{
		mat4s: make(map[string]mgl32.Mat4),
		vec3s: make(map[string][3]float32),
		ints:  make(map[string]int32),
	}
}

func (s *recordingShader) Use() { s.uses++ }

func (s *recordingShader) SetMat4(name string, m mgl32.Mat4) { s.mat4s[name] = m }

func (s *recordingShader) SetVec3(name string, x, y, z float32) {
	s.vec3s[name] = [3]float32{x, y, z}
}

func (s *recordingShader) SetInt(name string, v int32) { s.ints[name] = v }

// fakeUploader hands out increasing texture names.
type fakeUploader struct {
	next     uint32
	uploads  []image.Point
	deleted  []uint32
	failFrom int // uploads at or after this index fail; 0 disables
}

var errUpload = errors.New("upload failed")

func (u *fakeUploader) UploadAlpha(mask *image.Alpha) (uint32, error) {
	if u.failFrom > 0 && len(u.uploads) >= u.failFrom {
		return 0, errUpload
	}
	u.uploads = append(u.uploads, mask.Rect.Size())
	u.next++
	return u.next, nil
}

func (u *fakeUploader) DeleteTexture(texture uint32) {
	u.deleted = append(u.deleted, texture)
}

// fakeRasterizer produces a w x h mask per code point, failing for the runes
// in fail.
type fakeRasterizer struct {
	px   float32
	fail map[rune]bool
}

func (r *fakeRasterizer) PixelHeight() float32 { return r.px }

func (r *fakeRasterizer) Rasterize(c rune) (glyph.GlyphBitmap, error) {
	if r.fail[c] {
		return glyph.GlyphBitmap{}, &glyph.GlyphError{Rune: c, Err: glyph.ErrNoGlyph}
	}
	w := int(c % 7)
	return glyph.GlyphBitmap{
		Mask:    image.NewAlpha(image.Rect(0, 0, w, 10)),
		Bearing: image.Pt(1, 8),
		Advance: fixed.I(w + 2),
	}, nil
}

// table is a fixed GlyphSource for layout tests.
type table struct {
	px     float32
	glyphs map[rune]glyph.Glyph
}

func (t table) Glyph(r rune) glyph.Glyph {
	if g, ok := t.glyphs[r]; ok {
		return g
	}
	return glyph.NoGlyph
}

func (t table) PixelHeight() float32 { return t.px }

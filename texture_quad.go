package glyph

import "github.com/go-gl/mathgl/mgl32"

// TextureQuadRenderer draws a single textured rectangle per call.
// The caller supplies model, view and projection, so the same renderer can
// place quads in screen space or in the 3D scene.
type TextureQuadRenderer struct {
	streamer QuadStreamer
	tint     Color
}

// NewTextureQuadRenderer creates a renderer drawing through s with a white tint.
func NewTextureQuadRenderer(s QuadStreamer) *TextureQuadRenderer {
	return &TextureQuadRenderer{streamer: s, tint: ColorWhite}
}

// SetTint sets the color uniform applied to every draw.
func (r *TextureQuadRenderer) SetTint(c Color) {
	r.tint = c
}

// Quad returns the geometry Draw uploads for a rectangle.
func (r *TextureQuadRenderer) Quad(x, y, w, h float32) Quad {
	return NewQuad(x, y, w, h)
}

// Draw binds sh, sets the matrices verbatim and draws texture over the
// rectangle with bottom-left corner (x, y) and size (w, h).
func (r *TextureQuadRenderer) Draw(sh Shader, texture uint32, x, y, w, h float32, model, view, projection mgl32.Mat4) {
	sh.Use()
	sh.SetMat4(UniformProjection, projection)
	sh.SetMat4(UniformView, view)
	sh.SetMat4(UniformModel, model)
	setColor(sh, r.tint)

	q := NewQuad(x, y, w, h)
	r.streamer.UploadAndDraw(&q, texture)
}

// Package opengl provides the OpenGL 4.1 collaborators for the glyph package:
// the streamed quad buffer, shader programs and textures.
package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/glyph"
)

// QuadStreamer owns one VAO and one dynamic VBO sized for a single glyph.Quad.
// Each renderer should own its own streamer.
type QuadStreamer struct {
	vao, vbo uint32
}

var _ glyph.QuadStreamer = (*QuadStreamer)(nil)

// NewQuadStreamer allocates the vertex array and buffer. A GL context must be
// current.
func NewQuadStreamer() *QuadStreamer {
	s := &QuadStreamer{}

	gl.GenVertexArrays(1, &s.vao)
	gl.GenBuffers(1, &s.vbo)
	gl.BindVertexArray(s.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, glyph.QuadBytes, nil, gl.DYNAMIC_DRAW)

	// Position attribute (vec3)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, glyph.VertexStride, 0)
	gl.EnableVertexAttribArray(0)

	// TexCoord attribute (vec2)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, glyph.VertexStride, glyph.TexCoordOffset)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	glyph.Logger().Debug("opengl: quad streamer created", "vao", s.vao, "vbo", s.vbo)
	return s
}

// UploadAndDraw implements glyph.QuadStreamer.
func (s *QuadStreamer) UploadAndDraw(q *glyph.Quad, texture uint32) {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(s.vao)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	// Whole-buffer overwrite; nothing carries over between draws.
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, glyph.QuadBytes, gl.Ptr(&q[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.DrawArrays(gl.TRIANGLES, 0, glyph.QuadVertices)

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Delete releases OpenGL resources.
func (s *QuadStreamer) Delete() {
	if s.vbo != 0 {
		gl.DeleteBuffers(1, &s.vbo)
		s.vbo = 0
	}
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
		s.vao = 0
	}
}

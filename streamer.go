package glyph

import "github.com/go-gl/mathgl/mgl32"

// Shader is the subset of a compiled GPU program the renderers need:
// bind it, then set uniforms by name.
type Shader interface {
	Use()
	SetMat4(name string, m mgl32.Mat4)
	SetVec3(name string, x, y, z float32)
	SetInt(name string, v int32)
}

// QuadStreamer owns one dynamic vertex buffer sized for a single Quad.
//
// UploadAndDraw binds texture, overwrites the whole buffer with q and issues a
// 6-vertex triangle-list draw. Bindings are restored to zero on return. The
// call only enqueues GPU work.
type QuadStreamer interface {
	UploadAndDraw(q *Quad, texture uint32)
}

// Uniform names shared by the renderers and the built-in shaders.
const (
	UniformProjection = "projection"
	UniformView       = "view"
	UniformModel      = "model"
	UniformTextColor  = "textColor"
	UniformTexture    = "text"
)

// setColor sets the tint uniform.
func setColor(sh Shader, c Color) {
	sh.SetVec3(UniformTextColor, c.R, c.G, c.B)
}

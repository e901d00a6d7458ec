package glyph

// Vertex layout of a streamed quad: position.xyz followed by texcoord.uv.
const (
	QuadVertices   = 6
	VertexFloats   = 5
	QuadFloats     = QuadVertices * VertexFloats
	QuadBytes      = QuadFloats * 4
	VertexStride   = VertexFloats * 4
	TexCoordOffset = 3 * 4
)

// Quad is the vertex data for two triangles covering one rectangle.
//
// Vertex order is top-left, bottom-left, bottom-right, then top-left,
// bottom-right, top-right. Texture v runs top to bottom so the first row of
// an uploaded bitmap lands at the top edge of the quad.
type Quad [QuadFloats]float32

// NewQuad builds the quad for a rectangle whose bottom-left corner is (x, y)
// in a Y-up screen space.
func NewQuad(x, y, w, h float32) Quad {
	return Quad{
		x, y + h, 0, 0, 0,
		x, y, 0, 0, 1,
		x + w, y, 0, 1, 1,

		x, y + h, 0, 0, 0,
		x + w, y, 0, 1, 1,
		x + w, y + h, 0, 1, 0,
	}
}

// Vertex returns the i-th vertex as (x, y, z, u, v).
func (q *Quad) Vertex(i int) [VertexFloats]float32 {
	var v [VertexFloats]float32
	copy(v[:], q[i*VertexFloats:(i+1)*VertexFloats])
	return v
}

// Bounds returns the min and max corners covered by the quad.
func (q *Quad) Bounds() (lo, hi Vec2) {
	lo = Vec2{X: q[0], Y: q[1]}
	hi = lo
	for i := 1; i < QuadVertices; i++ {
		x, y := q[i*VertexFloats], q[i*VertexFloats+1]
		lo.X = min(lo.X, x)
		lo.Y = min(lo.Y, y)
		hi.X = max(hi.X, x)
		hi.Y = max(hi.Y, y)
	}
	return lo, hi
}

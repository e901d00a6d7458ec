package glyph

// Vec2 represents a 2D vector for pen positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Color is a linear RGB tint passed to shaders as a vec3.
type Color struct {
	R, G, B float32
}

// Color constants
var (
	ColorWhite = Color{1, 1, 1}
	ColorRed   = Color{1, 0, 0}
)

// RGB creates a color from float components, clamped to 0.0-1.0.
func RGB(r, g, b float32) Color {
	return Color{
		R: clampf(r, 0, 1),
		G: clampf(g, 0, 1),
		B: clampf(b, 0, 1),
	}
}

// RGB8 creates a color from 8-bit components.
func RGB8(r, g, b uint8) Color {
	return Color{R: float32(r) / 255, G: float32(g) / 255, B: float32(b) / 255}
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

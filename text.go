package glyph

import (
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/text/unicode/norm"
)

// DefaultWrapWidth is the wrap width used by the demo's wrapped text.
const DefaultWrapWidth = 100

// PlacedGlyph is one glyph positioned by layout: the code point, the glyph it
// resolved to and the exact quad uploaded for it.
type PlacedGlyph struct {
	Rune  rune
	Glyph Glyph
	Quad  Quad
	Pen   Vec2 // pen position the glyph was placed from
}

// TextRenderer lays out strings against a GlyphSource and draws one quad per
// code point through a QuadStreamer.
type TextRenderer struct {
	src        GlyphSource
	streamer   QuadStreamer
	projection mgl32.Mat4
	form       norm.Form
	normalize  bool
}

// NewTextRenderer creates a text renderer. The default projection covers an
// 800x600 viewport; use WithViewport or Resize to match the window.
func NewTextRenderer(src GlyphSource, s QuadStreamer, opts ...TextOption) *TextRenderer {
	t := &TextRenderer{
		src:        src,
		streamer:   s,
		projection: screenOrtho(800, 600),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Resize updates the projection for a new viewport size.
func (t *TextRenderer) Resize(width, height int) {
	t.projection = screenOrtho(width, height)
}

// Projection returns the projection set on the shader by draw calls.
func (t *TextRenderer) Projection() mgl32.Mat4 {
	return t.projection
}

// DrawText draws text on a single line with its baseline origin at (x, y)
// and returns the final pen position. The pen never moves vertically.
func (t *TextRenderer) DrawText(sh Shader, text string, x, y, scale float32, color Color) Vec2 {
	t.begin(sh, color)
	return t.layout(text, x, y, scale, 0, false, t.draw)
}

// DrawTextWrapped draws text like DrawText but starts a new line whenever the
// next glyph's left edge would pass x+wrapWidth. The check is per glyph, not
// per word. Lines are PixelHeight*scale apart.
func (t *TextRenderer) DrawTextWrapped(sh Shader, text string, x, y, scale float32, color Color, wrapWidth float32) Vec2 {
	t.begin(sh, color)
	return t.layout(text, x, y, scale, wrapWidth, true, t.draw)
}

// Layout returns the quads DrawText would upload, without drawing.
func (t *TextRenderer) Layout(text string, x, y, scale float32) ([]PlacedGlyph, Vec2) {
	var placed []PlacedGlyph
	pen := t.layout(text, x, y, scale, 0, false, func(pg *PlacedGlyph) {
		placed = append(placed, *pg)
	})
	return placed, pen
}

// LayoutWrapped returns the quads DrawTextWrapped would upload, without drawing.
func (t *TextRenderer) LayoutWrapped(text string, x, y, scale, wrapWidth float32) ([]PlacedGlyph, Vec2) {
	var placed []PlacedGlyph
	pen := t.layout(text, x, y, scale, wrapWidth, true, func(pg *PlacedGlyph) {
		placed = append(placed, *pg)
	})
	return placed, pen
}

// MeasureText returns the single-line advance of text and the line height,
// both at scale.
func (t *TextRenderer) MeasureText(text string, scale float32) Vec2 {
	pen := t.layout(text, 0, 0, scale, 0, false, func(*PlacedGlyph) {})
	return Vec2{X: pen.X, Y: t.src.PixelHeight() * scale}
}

// begin binds the shader and sets the per-call uniforms.
func (t *TextRenderer) begin(sh Shader, color Color) {
	sh.Use()
	setColor(sh, color)
	sh.SetMat4(UniformProjection, t.projection)
	sh.SetMat4(UniformModel, mgl32.Ident4())
	sh.SetMat4(UniformView, mgl32.Ident4())
	sh.SetInt(UniformTexture, 0)
}

func (t *TextRenderer) draw(pg *PlacedGlyph) {
	t.streamer.UploadAndDraw(&pg.Quad, pg.Glyph.Texture)
}

// layout walks text code point by code point, calling emit for each placed
// glyph, and returns the final pen position.
func (t *TextRenderer) layout(text string, x, y, scale, wrapWidth float32, wrap bool, emit func(*PlacedGlyph)) Vec2 {
	if t.normalize {
		text = t.form.String(text)
	}

	lineHeight := t.src.PixelHeight() * scale
	pen := Vec2{X: x, Y: y}
	var pg PlacedGlyph

	for _, r := range text {
		g := t.src.Glyph(r)
		bearingX := float32(g.Bearing.X) * scale

		if wrap && pen.X+bearingX > x+wrapWidth {
			pen.X = x
			pen.Y -= lineHeight
		}

		xpos := pen.X + bearingX
		ypos := pen.Y - float32(g.Size.Y-g.Bearing.Y)*scale
		w := float32(g.Size.X) * scale
		h := float32(g.Size.Y) * scale

		pg = PlacedGlyph{Rune: r, Glyph: g, Quad: NewQuad(xpos, ypos, w, h), Pen: pen}
		emit(&pg)

		pen.X += float32(g.AdvancePixels()) * scale
	}

	return pen
}

package glyph

import (
	"image"

	"golang.org/x/image/math/fixed"
)

// GlyphSource supplies glyph metrics to text layout.
// *Atlas is the production implementation; tests inject fixed tables.
//
// Glyph must never fail: code points it cannot serve return NoGlyph so that
// layout code does not branch on lookup failure.
type GlyphSource interface {
	// Glyph returns the glyph for r, or NoGlyph.
	Glyph(r rune) Glyph

	// PixelHeight returns the pixel height glyphs were rasterized at.
	// Wrapped layout uses it as the line height at scale 1.
	PixelHeight() float32
}

// Rasterizer turns a code point into a coverage bitmap plus metrics.
// FaceRasterizer implements it on top of golang.org/x/image/font/opentype.
type Rasterizer interface {
	Rasterize(r rune) (GlyphBitmap, error)
	PixelHeight() float32
}

// GlyphBitmap is a rasterized glyph before it is uploaded to the GPU.
type GlyphBitmap struct {
	// Mask is the 8-bit coverage, first row at the top. Bounds start at (0,0).
	Mask *image.Alpha

	// Bearing is the (left, top) offset from the pen origin to the mask's
	// top-left corner, Y measured upward from the baseline.
	Bearing image.Point

	// Advance is the pen advance in 1/64 pixel units.
	Advance fixed.Int26_6
}

// Size returns the mask dimensions, or zero for a nil mask.
func (b GlyphBitmap) Size() image.Point {
	if b.Mask == nil {
		return image.Point{}
	}
	return b.Mask.Rect.Size()
}

// TextureUploader creates and frees single-channel GPU textures for glyphs.
// backend/opengl.TextureUploader is the OpenGL implementation.
type TextureUploader interface {
	// UploadAlpha creates an 8-bit single-channel texture from mask with
	// clamp-to-edge wrapping and linear filtering.
	UploadAlpha(mask *image.Alpha) (uint32, error)

	// DeleteTexture frees a texture returned by UploadAlpha.
	DeleteTexture(texture uint32)
}

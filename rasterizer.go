package glyph

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FaceRasterizer rasterizes glyphs from an OpenType or TrueType font at a
// fixed pixel height. It is not safe for concurrent use: the underlying face
// reuses its mask between calls.
type FaceRasterizer struct {
	font        *opentype.Font
	face        font.Face
	pixelHeight float64
}

// NewFaceRasterizer parses fontData and prepares a face where one em is
// pixelHeight pixels.
func NewFaceRasterizer(fontData []byte, pixelHeight float64) (*FaceRasterizer, error) {
	if len(fontData) == 0 {
		return nil, ErrEmptyFontData
	}
	if pixelHeight <= 0 {
		pixelHeight = DefaultPixelHeight
	}

	f, err := opentype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("glyph: failed to parse font: %w", err)
	}

	// DPI 72 makes Size a pixel size.
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    pixelHeight,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("glyph: failed to create face: %w", err)
	}

	return &FaceRasterizer{font: f, face: face, pixelHeight: pixelHeight}, nil
}

// PixelHeight implements Rasterizer.
func (r *FaceRasterizer) PixelHeight() float32 {
	return float32(r.pixelHeight)
}

// Family returns the font family name, or "" if the font has none.
func (r *FaceRasterizer) Family() string {
	name, err := r.font.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// Rasterize implements Rasterizer.
func (r *FaceRasterizer) Rasterize(c rune) (GlyphBitmap, error) {
	dr, mask, maskp, advance, ok := r.face.Glyph(fixed.Point26_6{}, c)
	if !ok {
		return GlyphBitmap{}, &GlyphError{Rune: c, Err: ErrNoGlyph}
	}

	// The face owns mask; copy it into a tight image starting at (0,0).
	dst := image.NewAlpha(image.Rect(0, 0, dr.Dx(), dr.Dy()))
	if mask != nil && !dr.Empty() {
		draw.Draw(dst, dst.Bounds(), mask, maskp, draw.Src)
	}

	return GlyphBitmap{
		Mask: dst,
		// dr is relative to a dot at the origin with Y growing down.
		Bearing: image.Point{X: dr.Min.X, Y: -dr.Min.Y},
		Advance: advance,
	}, nil
}

// Close releases the face.
func (r *FaceRasterizer) Close() error {
	return r.face.Close()
}

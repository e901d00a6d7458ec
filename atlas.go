package glyph

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"

	"golang.org/x/image/math/fixed"
)

// Glyph is the per-code-point record stored in an Atlas.
type Glyph struct {
	Texture uint32        // single-channel coverage texture
	Size    image.Point   // bitmap width and height in pixels
	Bearing image.Point   // (left, top) from pen origin to bitmap top-left
	Advance fixed.Int26_6 // pen advance in 1/64 pixels
}

// NoGlyph is returned for code points the atlas does not hold. It has zero
// size and zero advance, so layout places nothing and does not move the pen.
var NoGlyph = Glyph{}

// AdvancePixels returns the advance truncated to whole pixels (advance >> 6).
func (g Glyph) AdvancePixels() int {
	return g.Advance.Floor()
}

// Atlas maps code points to rasterized glyphs. It is immutable after
// construction and must be used from the goroutine that owns the GL context.
type Atlas struct {
	glyphs      map[rune]Glyph
	pixelHeight float32
	lo, hi      rune
	fallback    rune
	hasFallback bool
	uploader    TextureUploader
}

// LoadAtlas reads a font file and builds an atlas from it.
// A missing, empty or unparsable file returns *FontLoadError.
func LoadAtlas(path string, up TextureUploader, opts ...AtlasOption) (*Atlas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FontLoadError{Path: path, Err: err}
	}
	a, err := NewAtlas(data, up, opts...)
	if err != nil {
		var fe *FontLoadError
		if errors.As(err, &fe) {
			fe.Path = path
		}
		return nil, err
	}
	return a, nil
}

// NewAtlas builds an atlas from in-memory font data.
func NewAtlas(fontData []byte, up TextureUploader, opts ...AtlasOption) (*Atlas, error) {
	cfg := applyAtlasOptions(opts)

	r, err := NewFaceRasterizer(fontData, cfg.pixelHeight)
	if err != nil {
		return nil, &FontLoadError{Err: err}
	}
	defer func() { _ = r.Close() }()

	Logger().Info("glyph: font loaded", "family", r.Family(), "pixelHeight", cfg.pixelHeight)

	return BuildAtlas(r, up, opts...)
}

// BuildAtlas rasterizes every code point in the configured range and uploads
// each bitmap as its own texture.
//
// A code point that fails to rasterize or upload is logged and skipped; the
// rest of the atlas stays valid.
func BuildAtlas(r Rasterizer, up TextureUploader, opts ...AtlasOption) (*Atlas, error) {
	cfg := applyAtlasOptions(opts)
	if cfg.hi <= cfg.lo {
		return nil, ErrEmptyRange
	}

	a := &Atlas{
		glyphs:      make(map[rune]Glyph, int(cfg.hi-cfg.lo)),
		pixelHeight: r.PixelHeight(),
		lo:          cfg.lo,
		hi:          cfg.hi,
		fallback:    cfg.fallback,
		hasFallback: cfg.hasFallback,
		uploader:    up,
	}

	log := Logger()
	skipped := 0
	for c := cfg.lo; c < cfg.hi; c++ {
		g, err := a.load(r, c)
		if err != nil {
			skipped++
			log.Warn("glyph: skipping code point", "rune", fmt.Sprintf("%U", c), "err", err)
			continue
		}
		a.glyphs[c] = g
		if log.Enabled(context.Background(), slog.LevelDebug) {
			log.Debug("glyph: rasterized",
				"rune", fmt.Sprintf("%U", c),
				"size", g.Size, "bearing", g.Bearing, "advance", g.AdvancePixels())
		}
	}

	log.Info("glyph: atlas built", "glyphs", len(a.glyphs), "skipped", skipped)
	return a, nil
}

// load rasterizes and uploads one code point.
func (a *Atlas) load(r Rasterizer, c rune) (Glyph, error) {
	bm, err := r.Rasterize(c)
	if err != nil {
		return Glyph{}, err
	}
	mask := bm.Mask
	if mask == nil {
		mask = image.NewAlpha(image.Rectangle{})
	}

	tex, err := a.uploader.UploadAlpha(mask)
	if err != nil {
		return Glyph{}, &GlyphError{Rune: c, Err: err}
	}

	return Glyph{
		Texture: tex,
		Size:    bm.Size(),
		Bearing: bm.Bearing,
		Advance: bm.Advance,
	}, nil
}

// Glyph returns the glyph for c. Code points outside the range or that failed
// to rasterize return the fallback glyph if one was configured, else NoGlyph.
func (a *Atlas) Glyph(c rune) Glyph {
	if g, ok := a.glyphs[c]; ok {
		return g
	}
	if a.hasFallback {
		if g, ok := a.glyphs[a.fallback]; ok {
			return g
		}
	}
	return NoGlyph
}

// Lookup returns the glyph stored for c and whether it exists. It ignores
// the fallback.
func (a *Atlas) Lookup(c rune) (Glyph, bool) {
	g, ok := a.glyphs[c]
	return g, ok
}

// PixelHeight returns the rasterization height.
func (a *Atlas) PixelHeight() float32 {
	return a.pixelHeight
}

// Range returns the half-open code point range the atlas was built for.
func (a *Atlas) Range() (lo, hi rune) {
	return a.lo, a.hi
}

// Len returns the number of glyphs held.
func (a *Atlas) Len() int {
	return len(a.glyphs)
}

// Delete frees every glyph texture. The atlas is empty afterwards; calling
// Delete again does nothing.
func (a *Atlas) Delete() {
	for c, g := range a.glyphs {
		a.uploader.DeleteTexture(g.Texture)
		delete(a.glyphs, c)
	}
}

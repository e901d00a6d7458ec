package glyph

import (
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/text/unicode/norm"
)

// Atlas defaults.
const (
	DefaultPixelHeight = 48
	DefaultRangeLo     = 0
	DefaultRangeHi     = 128
)

// AtlasOption configures atlas construction.
type AtlasOption func(*atlasConfig)

type atlasConfig struct {
	pixelHeight float64
	lo, hi      rune // half-open
	fallback    rune
	hasFallback bool
}

func defaultAtlasConfig() atlasConfig {
	return atlasConfig{
		pixelHeight: DefaultPixelHeight,
		lo:          DefaultRangeLo,
		hi:          DefaultRangeHi,
	}
}

func applyAtlasOptions(opts []AtlasOption) atlasConfig {
	cfg := defaultAtlasConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithPixelHeight sets the rasterization height in pixels (1 em).
// Only used by NewAtlas and LoadAtlas, which create the rasterizer.
func WithPixelHeight(px float64) AtlasOption {
	return func(c *atlasConfig) {
		if px > 0 {
			c.pixelHeight = px
		}
	}
}

// WithRange sets the half-open code point range [lo, hi) rasterized into the atlas.
func WithRange(lo, hi rune) AtlasOption {
	return func(c *atlasConfig) {
		c.lo, c.hi = lo, hi
	}
}

// WithFallback makes Glyph substitute r for code points missing from the
// atlas. Without it, missing code points return NoGlyph.
func WithFallback(r rune) AtlasOption {
	return func(c *atlasConfig) {
		c.fallback = r
		c.hasFallback = true
	}
}

// TextOption configures a TextRenderer.
type TextOption func(*TextRenderer)

// WithViewport sets the orthographic projection to cover a width x height
// pixel viewport with the origin at the bottom-left.
func WithViewport(width, height int) TextOption {
	return func(t *TextRenderer) {
		t.projection = screenOrtho(width, height)
	}
}

// WithProjection sets an explicit projection matrix.
func WithProjection(m mgl32.Mat4) TextOption {
	return func(t *TextRenderer) {
		t.projection = m
	}
}

// WithNormalization normalizes text with form before layout. NFC maps
// decomposed sequences such as "é" to a single code point.
func WithNormalization(form norm.Form) TextOption {
	return func(t *TextRenderer) {
		t.form = form
		t.normalize = true
	}
}

// screenOrtho returns the bottom-left origin projection for a viewport.
func screenOrtho(width, height int) mgl32.Mat4 {
	return mgl32.Ortho2D(0, float32(width), 0, float32(height))
}

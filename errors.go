package glyph

import (
	"errors"
	"fmt"
)

// Sentinel errors for the glyph package.
var (
	// ErrEmptyFontData is returned when a font file or buffer has no bytes.
	ErrEmptyFontData = errors.New("glyph: empty font data")

	// ErrEmptyRange is returned when an atlas range contains no code points.
	ErrEmptyRange = errors.New("glyph: empty code point range")

	// ErrNoGlyph is returned by a rasterizer that has no outline for a code point.
	ErrNoGlyph = errors.New("glyph: glyph not available")
)

// FontLoadError reports that a whole font could not be opened or parsed.
// No atlas is produced when this error is returned.
type FontLoadError struct {
	Path string // empty when loading from memory
	Err  error
}

func (e *FontLoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("glyph: failed to load font: %v", e.Err)
	}
	return fmt.Sprintf("glyph: failed to load font %q: %v", e.Path, e.Err)
}

func (e *FontLoadError) Unwrap() error { return e.Err }

// GlyphError reports that a single code point could not be rasterized or
// uploaded. Atlas construction skips the code point and continues.
type GlyphError struct {
	Rune rune
	Err  error
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("glyph: code point %U: %v", e.Rune, e.Err)
}

func (e *GlyphError) Unwrap() error { return e.Err }

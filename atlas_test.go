package glyph_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-theft-auto/glyph"
)

func TestNewAtlasGoRegular(t *testing.T) {
	up := &fakeUploader{}
	atlas, err := glyph.NewAtlas(goregular.TTF, up)
	if err != nil {
		t.Fatalf("NewAtlas: %v", err)
	}

	if got := atlas.PixelHeight(); got != glyph.DefaultPixelHeight {
		t.Errorf("PixelHeight = %v, want %v", got, glyph.DefaultPixelHeight)
	}
	lo, hi := atlas.Range()
	if lo != 0 || hi != 128 {
		t.Errorf("Range = [%d, %d), want [0, 128)", lo, hi)
	}

	// Every printable ASCII character must be present.
	for c := rune(' '); c <= '~'; c++ {
		if _, ok := atlas.Lookup(c); !ok {
			t.Errorf("missing glyph for %q", c)
		}
	}
	if atlas.Len() != len(up.uploads) {
		t.Errorf("Len = %d, uploads = %d", atlas.Len(), len(up.uploads))
	}

	for c := rune(0); c < 128; c++ {
		g, ok := atlas.Lookup(c)
		if !ok {
			continue
		}
		if g.Size.X < 0 || g.Size.Y < 0 || g.Advance < 0 {
			t.Errorf("%U: negative metrics %+v", c, g)
		}
	}

	a := atlas.Glyph('A')
	if a.Size.X <= 0 || a.Size.Y <= 0 {
		t.Errorf("'A' size = %v, want positive", a.Size)
	}
	if a.Bearing.Y <= 0 {
		t.Errorf("'A' top bearing = %d, want above baseline", a.Bearing.Y)
	}
	if a.AdvancePixels() <= 0 {
		t.Errorf("'A' advance = %d, want positive", a.AdvancePixels())
	}
	if a.Texture == 0 {
		t.Error("'A' has no texture")
	}

	if sp := atlas.Glyph(' '); sp.AdvancePixels() <= 0 {
		t.Errorf("space advance = %d, want positive", sp.AdvancePixels())
	}
}

func TestAtlasUnsupportedCodePoint(t *testing.T) {
	atlas, err := glyph.NewAtlas(goregular.TTF, &fakeUploader{})
	if err != nil {
		t.Fatalf("NewAtlas: %v", err)
	}

	for _, c := range []rune{'é', 128, 0x1F600, -1} {
		if g := atlas.Glyph(c); g != glyph.NoGlyph {
			t.Errorf("Glyph(%U) = %+v, want NoGlyph", c, g)
		}
	}
}

func TestAtlasGoRegularEdgeGlyphs(t *testing.T) {
	atlas, err := glyph.NewAtlas(goregular.TTF, &fakeUploader{})
	if err != nil {
		t.Fatalf("NewAtlas: %v", err)
	}

	// 'j' hangs left of the pen; the bearing is kept as the font reports it.
	j := atlas.Glyph('j')
	if j.Bearing.X >= 0 {
		t.Errorf("'j' bearing.x = %d, want negative", j.Bearing.X)
	}
	if j.Size.Y <= j.Bearing.Y {
		t.Errorf("'j' size.y = %d, bearing.y = %d, want descender below baseline", j.Size.Y, j.Bearing.Y)
	}

	// Control characters map to .notdef, which the face reports as missing.
	for _, c := range []rune{'\n', '\t', 0x7f} {
		if _, ok := atlas.Lookup(c); ok {
			t.Errorf("%U should not be stored", c)
		}
		if g := atlas.Glyph(c); g != glyph.NoGlyph {
			t.Errorf("Glyph(%U) = %+v, want NoGlyph", c, g)
		}
	}
}

func TestBuildAtlasSkipsFailedGlyphs(t *testing.T) {
	up := &fakeUploader{}
	r := &fakeRasterizer{px: 32, fail: map[rune]bool{'B': true}}

	atlas, err := glyph.BuildAtlas(r, up, glyph.WithRange('A', 'E'))
	if err != nil {
		t.Fatalf("BuildAtlas: %v", err)
	}

	if atlas.Len() != 3 {
		t.Errorf("Len = %d, want 3", atlas.Len())
	}
	if _, ok := atlas.Lookup('B'); ok {
		t.Error("failed code point should not be stored")
	}
	if g := atlas.Glyph('B'); g != glyph.NoGlyph {
		t.Errorf("Glyph('B') = %+v, want NoGlyph", g)
	}
	if len(up.uploads) != 3 {
		t.Errorf("uploads = %d, want 3", len(up.uploads))
	}
	if atlas.PixelHeight() != 32 {
		t.Errorf("PixelHeight = %v, want 32", atlas.PixelHeight())
	}
}

func TestBuildAtlasSkipsFailedUploads(t *testing.T) {
	up := &fakeUploader{failFrom: 2}
	r := &fakeRasterizer{px: 16}

	atlas, err := glyph.BuildAtlas(r, up, glyph.WithRange('a', 'e'))
	if err != nil {
		t.Fatalf("BuildAtlas: %v", err)
	}
	if atlas.Len() != 2 {
		t.Errorf("Len = %d, want 2", atlas.Len())
	}
	if _, ok := atlas.Lookup('c'); ok {
		t.Error("code point with failed upload should not be stored")
	}
}

func TestBuildAtlasEmptyRange(t *testing.T) {
	_, err := glyph.BuildAtlas(&fakeRasterizer{px: 16}, &fakeUploader{}, glyph.WithRange(10, 10))
	if !errors.Is(err, glyph.ErrEmptyRange) {
		t.Errorf("err = %v, want ErrEmptyRange", err)
	}
}

func TestAtlasFallback(t *testing.T) {
	atlas, err := glyph.BuildAtlas(&fakeRasterizer{px: 16}, &fakeUploader{},
		glyph.WithRange(32, 128), glyph.WithFallback('?'))
	if err != nil {
		t.Fatalf("BuildAtlas: %v", err)
	}

	want, _ := atlas.Lookup('?')
	if got := atlas.Glyph('é'); got != want {
		t.Errorf("Glyph('é') = %+v, want fallback %+v", got, want)
	}
	if _, ok := atlas.Lookup('é'); ok {
		t.Error("Lookup should ignore the fallback")
	}
}

func TestAtlasDelete(t *testing.T) {
	up := &fakeUploader{}
	atlas, err := glyph.BuildAtlas(&fakeRasterizer{px: 16}, up, glyph.WithRange('0', ':'))
	if err != nil {
		t.Fatalf("BuildAtlas: %v", err)
	}

	atlas.Delete()
	if len(up.deleted) != 10 {
		t.Fatalf("deleted %d textures, want 10", len(up.deleted))
	}
	seen := make(map[uint32]bool)
	for _, tex := range up.deleted {
		if seen[tex] {
			t.Errorf("texture %d deleted twice", tex)
		}
		seen[tex] = true
	}
	if atlas.Len() != 0 {
		t.Errorf("Len after Delete = %d, want 0", atlas.Len())
	}

	atlas.Delete()
	if len(up.deleted) != 10 {
		t.Errorf("second Delete freed %d more textures", len(up.deleted)-10)
	}
}

func TestNewAtlasEmptyData(t *testing.T) {
	_, err := glyph.NewAtlas(nil, &fakeUploader{})
	if !errors.Is(err, glyph.ErrEmptyFontData) {
		t.Errorf("err = %v, want ErrEmptyFontData", err)
	}
	var fe *glyph.FontLoadError
	if !errors.As(err, &fe) {
		t.Errorf("err = %T, want *FontLoadError", err)
	}
}

func TestLoadAtlasMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.ttf")
	up := &fakeUploader{}

	atlas, err := glyph.LoadAtlas(path, up)
	if atlas != nil {
		t.Error("expected no atlas")
	}
	var fe *glyph.FontLoadError
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want *FontLoadError", err)
	}
	if fe.Path != path {
		t.Errorf("Path = %q, want %q", fe.Path, path)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want os.ErrNotExist", err)
	}
	if len(up.uploads) != 0 {
		t.Errorf("uploads = %d, want 0", len(up.uploads))
	}
}

func TestLoadAtlasCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.ttf")
	if err := os.WriteFile(path, []byte("definitely not a font"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := glyph.LoadAtlas(path, &fakeUploader{})
	var fe *glyph.FontLoadError
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want *FontLoadError", err)
	}
	if fe.Path != path {
		t.Errorf("Path = %q, want %q", fe.Path, path)
	}
}

func TestLoadAtlasFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}

	atlas, err := glyph.LoadAtlas(path, &fakeUploader{}, glyph.WithPixelHeight(24), glyph.WithRange('a', 'z'+1))
	if err != nil {
		t.Fatalf("LoadAtlas: %v", err)
	}
	if atlas.Len() != 26 {
		t.Errorf("Len = %d, want 26", atlas.Len())
	}
	if atlas.PixelHeight() != 24 {
		t.Errorf("PixelHeight = %v, want 24", atlas.PixelHeight())
	}
}

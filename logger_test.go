package glyph_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-theft-auto/glyph"
)

func TestLoggerSilentByDefault(t *testing.T) {
	if glyph.Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should discard everything")
	}
}

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { glyph.SetLogger(nil) })

	var buf bytes.Buffer
	glyph.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	r := &fakeRasterizer{px: 16, fail: map[rune]bool{'b': true}}
	if _, err := glyph.BuildAtlas(r, &fakeUploader{}, glyph.WithRange('a', 'd')); err != nil {
		t.Fatalf("BuildAtlas: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"skipping code point", "U+0062", "atlas built", "glyphs=2", "skipped=1", "rasterized"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}

	glyph.SetLogger(nil)
	if glyph.Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}

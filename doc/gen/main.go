// Command gen renders sample text and quads in a hidden window, reads back the
// framebuffer and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-theft-auto/glyph"
	"github.com/go-theft-auto/glyph/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// renderers is what a screenshot draws with.
type renderers struct {
	text   *glyph.TextRenderer
	quads  *glyph.TextureQuadRenderer
	shader glyph.Shader
	white  uint32 // 1x1 coverage texture
}

// newRenderers gives the text and quad renderers their own streamers.
func newRenderers(src glyph.GlyphSource, shader glyph.Shader, textStream, quadStream glyph.QuadStreamer, white uint32) *renderers {
	return &renderers{
		text:   glyph.NewTextRenderer(src, textStream),
		quads:  glyph.NewTextureQuadRenderer(quadStream),
		shader: shader,
		white:  white,
	}
}

// screenshot defines a single capture.
type screenshot struct {
	name   string // filename without extension
	width  int
	height int
	draw   func(r *renderers)
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	uploader := opengl.NewTextureUploader()
	atlas, err := glyph.NewAtlas(goregular.TTF, uploader)
	if err != nil {
		return err
	}
	defer atlas.Delete()

	shader, err := opengl.NewProgram(opengl.FontVertexShader, opengl.FontFragmentShader)
	if err != nil {
		return fmt.Errorf("text shader: %w", err)
	}
	defer shader.Delete()

	// Each renderer owns its own streamed buffer.
	textStream := opengl.NewQuadStreamer()
	defer textStream.Delete()
	quadStream := opengl.NewQuadStreamer()
	defer quadStream.Delete()

	solid := image.NewAlpha(image.Rect(0, 0, 1, 1))
	solid.Pix[0] = 0xff
	white, err := uploader.UploadAlpha(solid)
	if err != nil {
		return err
	}
	defer uploader.DeleteTexture(white)

	r := newRenderers(atlas, shader, textStream, quadStream, white)

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(r, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(r *renderers, s screenshot, outDir string) error {
	// The hidden window stays at 800x600, larger than every screenshot, so
	// only the viewport and projection change.
	r.text.Resize(s.width, s.height)

	gl.Viewport(0, 0, int32(s.width), int32(s.height))
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	s.draw(r)
	gl.Finish()

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	flipRows(pixels, s.width*4)

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// flipRows reverses row order in place; GL reads bottom row first.
func flipRows(pix []byte, rowLen int) {
	rows := len(pix) / rowLen
	tmp := make([]byte, rowLen)
	for y := 0; y < rows/2; y++ {
		top := y * rowLen
		bot := (rows - 1 - y) * rowLen
		copy(tmp, pix[top:top+rowLen])
		copy(pix[top:top+rowLen], pix[bot:bot+rowLen])
		copy(pix[bot:bot+rowLen], tmp)
	}
}

func buildScreenshots() []screenshot {
	green := glyph.RGB(0.5, 0.8, 0.2)
	blue := glyph.RGB(0.3, 0.7, 0.9)

	return []screenshot{
		{
			name: "text", width: 500, height: 80,
			draw: func(r *renderers) {
				r.text.DrawText(r.shader, "This is sample text", 25, 25, 1, green)
			},
		},
		{
			name: "text_scaled", width: 400, height: 160,
			draw: func(r *renderers) {
				y := float32(130)
				for _, scale := range []float32{0.25, 0.5, 0.75, 1} {
					r.text.DrawText(r.shader, fmt.Sprintf("scale %.2f", scale), 12, y, scale, glyph.ColorWhite)
					y -= 48 * scale
				}
			},
		},
		{
			name: "text_wrapped", width: 300, height: 200,
			draw: func(r *renderers) {
				r.text.DrawTextWrapped(r.shader, "(C) LearnOpenGL.com", 125, 125, 0.5, blue, glyph.DefaultWrapWidth)
			},
		},
		{
			name: "text_metrics", width: 400, height: 100,
			draw: func(r *renderers) {
				const label = "Measured"
				size := r.text.MeasureText(label, 1)
				ident := mgl32.Ident4()
				screen := r.text.Projection()

				// Underline the measured advance at the baseline.
				r.quads.SetTint(glyph.ColorRed)
				r.quads.Draw(r.shader, r.white, 20, 28, size.X, 2, ident, ident, screen)
				r.text.DrawText(r.shader, label, 20, 30, 1, glyph.ColorWhite)
			},
		},
	}
}

// Example renders a lit cube, text from a glyph atlas and a row of textured
// quads including signed distance field samples.
//
// Prerequisites:
//
//	devbox shell              # Go + OpenGL/X11 headers
//	go run ./example/         # embedded Go Regular font
//	go run ./example/ -font resources/fonts/arial.ttf -textures resources/textures
//
// Controls: W/A/S/D move, Q/E down/up, mouse looks, wheel zooms, Esc quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/unicode/norm"

	"github.com/go-theft-auto/glyph"
	"github.com/go-theft-auto/glyph/backend/opengl"
)

const windowTitle = "glyph example"

type config struct {
	fontPath    string
	textureDir  string
	width       int
	height      int
	vsync       bool
	debug       bool
	pixelHeight float64
}

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	cfg := parseFlags()

	level := slog.LevelInfo
	if cfg.debug {
		level = slog.LevelDebug
	}
	glyph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseFlags() config {
	var cfg config
	flag.StringVar(&cfg.fontPath, "font", "", "TrueType/OpenType font file (default: embedded Go Regular)")
	flag.StringVar(&cfg.textureDir, "textures", "resources/textures", "directory holding tu.png and the tu-sdf*.png samples")
	flag.IntVar(&cfg.width, "width", 1920, "window width in pixels")
	flag.IntVar(&cfg.height, "height", 1080, "window height in pixels")
	flag.BoolVar(&cfg.vsync, "vsync", true, "wait for vertical sync")
	flag.BoolVar(&cfg.debug, "debug", false, "enable debug logging")
	flag.Float64Var(&cfg.pixelHeight, "px", glyph.DefaultPixelHeight, "glyph rasterization height in pixels")
	flag.Parse()
	return cfg
}

func run(cfg config) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.width, cfg.height, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.vsync {
		glfw.SwapInterval(1)
	}

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	fbw, fbh := window.GetFramebufferSize()
	frame := glyph.NewFrameContext(glyph.NewCamera(mgl32.Vec3{0, 0, 3}), glyph.NewInputState(), fbw, fbh)
	input := opengl.NewGLFWInputAdapter(window, frame)
	input.CaptureCursor()

	s, err := newScene(cfg, fbw, fbh)
	if err != nil {
		return err
	}
	defer s.delete()

	input.OnResize = s.text.Resize

	for !window.ShouldClose() {
		frame = input.Update()

		gl.ClearColor(0.1, 0.1, 0.1, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		s.render(frame)

		window.SwapBuffers()
	}

	return nil
}

// scene holds every GPU resource the demo draws with.
type scene struct {
	atlas    *glyph.Atlas
	text     *glyph.TextRenderer
	quads    *glyph.TextureQuadRenderer
	streams  []*opengl.QuadStreamer
	cube     *cubeRenderer
	programs []*opengl.Program

	textShader     *opengl.Program
	sdfShader      *opengl.Program
	lightingShader *opengl.Program
	lampShader     *opengl.Program

	sdfOrigin uint32
	sdf       [3]uint32

	cubeNode  node
	lightNode node
}

func newScene(cfg config, width, height int) (*scene, error) {
	s := &scene{
		cubeNode:  node{position: mgl32.Vec3{-1.2, -1.0, -2.0}, scale: 2.0},
		lightNode: node{position: mgl32.Vec3{1.2, 1.0, 2.0}, scale: 0.5},
	}

	var err error
	compile := func(vs, fs string) *opengl.Program {
		if err != nil {
			return nil
		}
		var p *opengl.Program
		p, err = opengl.NewProgram(vs, fs)
		if p != nil {
			s.programs = append(s.programs, p)
		}
		return p
	}
	s.textShader = compile(opengl.FontVertexShader, opengl.FontFragmentShader)
	s.sdfShader = compile(opengl.FontVertexShader, opengl.SDFFragmentShader)
	s.lightingShader = compile(lightingVertexShader, lightingFragmentShader)
	s.lampShader = compile(lightCubeVertexShader, lightCubeFragmentShader)
	if err != nil {
		s.delete()
		return nil, fmt.Errorf("shaders: %w", err)
	}

	atlasOpts := []glyph.AtlasOption{glyph.WithPixelHeight(cfg.pixelHeight)}
	uploader := opengl.NewTextureUploader()
	if cfg.fontPath != "" {
		s.atlas, err = glyph.LoadAtlas(cfg.fontPath, uploader, atlasOpts...)
	} else {
		s.atlas, err = glyph.NewAtlas(goregular.TTF, uploader, atlasOpts...)
	}
	if err != nil {
		s.delete()
		return nil, fmt.Errorf("font atlas: %w", err)
	}

	// Each renderer owns its own streamed buffer.
	textStream := opengl.NewQuadStreamer()
	quadStream := opengl.NewQuadStreamer()
	s.streams = append(s.streams, textStream, quadStream)

	s.text = glyph.NewTextRenderer(s.atlas, textStream,
		glyph.WithViewport(width, height),
		glyph.WithNormalization(norm.NFC),
	)
	s.quads = glyph.NewTextureQuadRenderer(quadStream)
	s.cube = newCubeRenderer()

	s.sdfOrigin = loadTexture(filepath.Join(cfg.textureDir, "tu.png"))
	for i, name := range []string{"tu-sdf64.png", "tu-sdf128.png", "tu-sdf512.png"} {
		s.sdf[i] = loadTexture(filepath.Join(cfg.textureDir, name))
	}

	return s, nil
}

// loadTexture logs and tolerates missing images; the quad then draws unbound.
func loadTexture(path string) uint32 {
	tex, err := opengl.LoadTexture(path)
	var tle *opengl.TextureLoadError
	if errors.As(err, &tle) {
		glyph.Logger().Warn("example: drawing without texture", "path", tle.Path)
	}
	return tex
}

func (s *scene) render(frame *glyph.FrameContext) {
	projection := frame.Projection()
	view := frame.View()
	cam := frame.Camera

	s.lightingShader.Use()
	s.lightingShader.SetVec3("objectColor", 1.0, 0.5, 0.31)
	s.lightingShader.SetVec3("lightColor", 1.0, 1.0, 1.0)
	s.lightingShader.SetVec3("lightPos", s.lightNode.position.X(), s.lightNode.position.Y(), s.lightNode.position.Z())
	s.lightingShader.SetVec3("viewPos", cam.Position.X(), cam.Position.Y(), cam.Position.Z())
	s.cube.draw(s.lightingShader, s.cubeNode.model(), view, projection)
	s.cube.draw(s.lampShader, s.lightNode.model(), view, projection)

	// Overlays draw on top of the scene. '啊' is outside the atlas and
	// takes no space.
	gl.Disable(gl.DEPTH_TEST)
	defer gl.Enable(gl.DEPTH_TEST)

	s.text.DrawText(s.textShader, "This is sample te啊xt", 25, 25, 1, glyph.RGB(0.5, 0.8, 0.2))
	s.text.DrawTextWrapped(s.textShader, "(C) LearnOpenGL.com", 125, 125, 0.5, glyph.RGB(0.3, 0.7, 0.9), glyph.DefaultWrapWidth)

	// Screen-space quads along the bottom edge.
	ident := mgl32.Ident4()
	screen := frame.ScreenProjection()
	s.quads.Draw(s.textShader, s.sdfOrigin, 0, 0, 20, 20, ident, ident, screen)
	for i, tex := range s.sdf {
		s.quads.Draw(s.sdfShader, tex, float32(20*(i+1)), 0, 20, 20, ident, ident, screen)
	}
}

func (s *scene) delete() {
	if s.atlas != nil {
		s.atlas.Delete()
	}
	for _, st := range s.streams {
		st.Delete()
	}
	if s.cube != nil {
		s.cube.delete()
	}
	for _, p := range s.programs {
		p.Delete()
	}
	opengl.DeleteTexture(s.sdfOrigin)
	for _, tex := range s.sdf {
		opengl.DeleteTexture(tex)
	}
}

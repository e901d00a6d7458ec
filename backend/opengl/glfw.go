package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/glyph"
)

// GLFWInputAdapter feeds GLFW window events into a glyph.FrameContext.
type GLFWInputAdapter struct {
	window *glfw.Window
	frame  *glyph.FrameContext
	input  *glyph.InputState

	// OnResize is called after the viewport and frame context are resized.
	OnResize func(width, height int)
}

// NewGLFWInputAdapter installs window callbacks that update frame.
// If frame has no InputState, one is created.
func NewGLFWInputAdapter(window *glfw.Window, frame *glyph.FrameContext) *GLFWInputAdapter {
	if frame.Input == nil {
		frame.Input = glyph.NewInputState()
	}
	adapter := &GLFWInputAdapter{
		window: window,
		frame:  frame,
		input:  frame.Input,
	}

	// Setup callbacks
	window.SetKeyCallback(adapter.keyCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)
	window.SetFramebufferSizeCallback(adapter.framebufferSizeCallback)

	return adapter
}

// Update starts a new frame: it resets per-frame input, polls events,
// advances the frame clock and applies input to the camera.
func (a *GLFWInputAdapter) Update() *glyph.FrameContext {
	a.input.Reset()
	glfw.PollEvents()

	a.frame.Tick(glfw.GetTime())
	a.frame.ApplyInput()

	if a.input.KeyPressed(glyph.KeyEscape) {
		a.window.SetShouldClose(true)
	}
	return a.frame
}

// CaptureCursor hides the cursor and locks it to the window for mouse look.
func (a *GLFWInputAdapter) CaptureCursor() {
	a.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	if k == glyph.KeyNone {
		return
	}

	switch action {
	case glfw.Press:
		glyph.Logger().Debug("opengl: key down", "key", glyph.KeyName(k))
		a.input.SetKey(k, true)
	case glfw.Repeat:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(float32(xoff), float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// framebufferSizeCallback keeps the viewport in step with the window. On
// high-DPI displays the framebuffer is larger than the window size.
func (a *GLFWInputAdapter) framebufferSizeCallback(w *glfw.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	a.frame.Resize(width, height)
	if a.OnResize != nil {
		a.OnResize(width, height)
	}
}

// glfwKeyToKey maps GLFW keys to glyph keys.
func glfwKeyToKey(key glfw.Key) glyph.Key {
	switch key {
	case glfw.KeyW:
		return glyph.KeyW
	case glfw.KeyA:
		return glyph.KeyA
	case glfw.KeyS:
		return glyph.KeyS
	case glfw.KeyD:
		return glyph.KeyD
	case glfw.KeyQ:
		return glyph.KeyQ
	case glfw.KeyE:
		return glyph.KeyE
	case glfw.KeyEscape:
		return glyph.KeyEscape
	default:
		return glyph.KeyNone
	}
}

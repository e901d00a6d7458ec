package glyph

import "github.com/go-gl/mathgl/mgl32"

// Perspective clip planes used by FrameContext.Projection.
const (
	NearPlane = 0.1
	FarPlane  = 100.0
)

// FrameContext carries the per-frame state of the render loop: camera,
// timing, input and viewport. It is passed explicitly to the loop and input
// handlers instead of living in package variables.
type FrameContext struct {
	Camera    *Camera
	Input     *InputState
	DeltaTime float32
	Width     int
	Height    int

	lastFrame  float64
	started    bool
	lastX      float32
	lastY      float32
	firstMouse bool
}

// NewFrameContext creates a frame context for a viewport of width x height.
func NewFrameContext(cam *Camera, input *InputState, width, height int) *FrameContext {
	return &FrameContext{
		Camera:     cam,
		Input:      input,
		Width:      width,
		Height:     height,
		lastX:      float32(width) / 2,
		lastY:      float32(height) / 2,
		firstMouse: true,
	}
}

// Tick records the time of a new frame, in seconds, and updates DeltaTime.
// The first tick yields a zero delta.
func (f *FrameContext) Tick(now float64) {
	if !f.started {
		f.lastFrame = now
		f.started = true
	}
	f.DeltaTime = float32(now - f.lastFrame)
	f.lastFrame = now
}

// Resize updates the viewport size.
func (f *FrameContext) Resize(width, height int) {
	f.Width = width
	f.Height = height
}

// ApplyInput moves the camera from the held keys, the mouse movement since
// the previous frame and the wheel delta. The first mouse sample only primes
// the last position.
func (f *FrameContext) ApplyInput() {
	in := f.Input
	if in == nil || f.Camera == nil {
		return
	}

	moves := [...]struct {
		key Key
		dir CameraMovement
	}{
		{KeyW, Forward},
		{KeyS, Backward},
		{KeyA, Left},
		{KeyD, Right},
		{KeyE, Up},
		{KeyQ, Down},
	}
	for _, m := range moves {
		if in.KeyDown(m.key) {
			f.Camera.ProcessKeyboard(m.dir, f.DeltaTime)
		}
	}

	if in.MouseSeen() {
		xoff, yoff := f.mouseOffset(in.MouseX, in.MouseY)
		if xoff != 0 || yoff != 0 {
			f.Camera.ProcessMouseMovement(xoff, yoff)
		}
	}

	if in.MouseWheelY != 0 {
		f.Camera.ProcessMouseScroll(in.MouseWheelY)
	}
}

// mouseOffset returns the movement since the last sample, with Y reversed
// because window coordinates grow downward.
func (f *FrameContext) mouseOffset(x, y float32) (xoff, yoff float32) {
	if f.firstMouse {
		f.lastX, f.lastY = x, y
		f.firstMouse = false
	}
	xoff = x - f.lastX
	yoff = f.lastY - y
	f.lastX, f.lastY = x, y
	return xoff, yoff
}

// Projection returns the perspective projection for the camera's zoom.
func (f *FrameContext) Projection() mgl32.Mat4 {
	aspect := float32(1)
	if f.Height > 0 {
		aspect = float32(f.Width) / float32(f.Height)
	}
	zoom := float32(DefaultZoom)
	if f.Camera != nil {
		zoom = f.Camera.Zoom
	}
	return mgl32.Perspective(mgl32.DegToRad(zoom), aspect, NearPlane, FarPlane)
}

// View returns the camera view matrix, or identity without a camera.
func (f *FrameContext) View() mgl32.Mat4 {
	if f.Camera == nil {
		return mgl32.Ident4()
	}
	return f.Camera.ViewMatrix()
}

// ScreenProjection returns an orthographic projection covering the viewport
// in pixels with the origin at the bottom-left.
func (f *FrameContext) ScreenProjection() mgl32.Mat4 {
	return screenOrtho(f.Width, f.Height)
}

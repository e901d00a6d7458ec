package glyph

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// CameraMovement is a direction for keyboard camera movement.
type CameraMovement int

const (
	Forward CameraMovement = iota
	Backward
	Left
	Right
	Up
	Down
)

// Camera defaults.
const (
	DefaultYaw         = -90
	DefaultPitch       = 0
	DefaultSpeed       = 2.5
	DefaultSensitivity = 0.1
	DefaultZoom        = 45

	maxPitch = 89
	minZoom  = 1
	maxZoom  = 45
)

// Camera is a fly camera described by a position and Euler angles.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw   float32 // degrees
	Pitch float32 // degrees

	MovementSpeed    float32
	MouseSensitivity float32
	Zoom             float32 // vertical field of view in degrees
}

// NewCamera creates a camera at position looking down -Z.
func NewCamera(position mgl32.Vec3) *Camera {
	c := &Camera{
		Position:         position,
		WorldUp:          mgl32.Vec3{0, 1, 0},
		Yaw:              DefaultYaw,
		Pitch:            DefaultPitch,
		MovementSpeed:    DefaultSpeed,
		MouseSensitivity: DefaultSensitivity,
		Zoom:             DefaultZoom,
	}
	c.updateVectors()
	return c
}

// ViewMatrix returns the view matrix for the camera.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// ProcessKeyboard moves the camera along its axes for dt seconds.
func (c *Camera) ProcessKeyboard(dir CameraMovement, dt float32) {
	v := c.MovementSpeed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(v))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(v))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(v))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(v))
	case Up:
		c.Position = c.Position.Add(c.WorldUp.Mul(v))
	case Down:
		c.Position = c.Position.Sub(c.WorldUp.Mul(v))
	}
}

// ProcessMouseMovement turns the camera by a mouse offset in pixels.
// yoff is positive when the mouse moves up. Pitch is clamped to ±89°.
func (c *Camera) ProcessMouseMovement(xoff, yoff float32) {
	c.Yaw += xoff * c.MouseSensitivity
	c.Pitch += yoff * c.MouseSensitivity
	c.Pitch = clampf(c.Pitch, -maxPitch, maxPitch)
	c.updateVectors()
}

// ProcessMouseScroll zooms by changing the field of view, clamped to [1, 45].
func (c *Camera) ProcessMouseScroll(yoff float32) {
	c.Zoom = clampf(c.Zoom-yoff, minZoom, maxZoom)
}

func (c *Camera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

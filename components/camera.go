package components

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CameraData is a first-person camera attached to a player. Angles are in
// degrees; yaw 0 looks down -Z and positive yaw turns right.
type CameraData struct {
	Yaw       float64
	Pitch     float64
	FOV       float64 // vertical
	Near      float64
	Far       float64
	EyeHeight float64
}

// Projection is a world point mapped to screen space. Depth is the clip-space
// W: positive in front of the camera, negative behind it. Points behind the
// camera come out mirrored through the screen centre.
type Projection struct {
	X, Y  float64
	Depth float64
}

var Camera = donburi.NewComponentType[CameraData]()

// Forward returns the unit view direction.
func (c *CameraData) Forward() mgl64.Vec3 {
	yaw := mgl64.DegToRad(c.Yaw)
	pitch := mgl64.DegToRad(c.Pitch)
	return mgl64.Vec3{
		math.Sin(yaw) * math.Cos(pitch),
		math.Sin(pitch),
		-math.Cos(yaw) * math.Cos(pitch),
	}
}

// Eye returns the camera position for an owner standing at position.
func (c *CameraData) Eye(position mgl64.Vec3) mgl64.Vec3 {
	return position.Add(mgl64.Vec3{0, c.EyeHeight, 0})
}

// ViewProjection returns the combined projection * view matrix.
func (c *CameraData) ViewProjection(position mgl64.Vec3, aspect float64) mgl64.Mat4 {
	eye := c.Eye(position)
	view := mgl64.LookAtV(eye, eye.Add(c.Forward()), mgl64.Vec3{0, 1, 0})
	proj := mgl64.Perspective(mgl64.DegToRad(c.FOV), aspect, c.Near, c.Far)
	return proj.Mul4(view)
}

// Project maps a world point to a width x height canvas. A point on the
// camera plane (W == 0) maps to the canvas centre with zero depth.
func (c *CameraData) Project(position, world mgl64.Vec3, width, height int) Projection {
	w, h := float64(width), float64(height)
	if w <= 0 || h <= 0 {
		return Projection{}
	}

	clip := c.ViewProjection(position, w/h).Mul4x1(world.Vec4(1))
	if clip.W() == 0 {
		return Projection{X: w * .5, Y: h * .5}
	}

	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	return Projection{
		X:     (ndcX + 1) * .5 * w,
		Y:     (1 - ndcY) * .5 * h,
		Depth: clip.W(),
	}
}

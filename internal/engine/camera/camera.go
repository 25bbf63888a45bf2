// Package camera provides the orbit camera used by the mesh viewer.
package camera

import (
	gomath "math"

	"github.com/Faultbox/midgard-geom/pkg/geometry"
	"github.com/Faultbox/midgard-geom/pkg/math"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	// Center point to orbit around
	Center math.Vec3

	// Spherical coordinates
	Distance  float32 // Distance from center
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	FovY math.Radian
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        20.0,
		RotationX:       0.6,
		MinDistance:     0.5,
		MaxDistance:     1000.0,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		FovY:            math.Degree(45).Radians(),
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Sin(float64(c.RotationY)))
	y := c.Distance * float32(gomath.Sin(float64(c.RotationX)))
	z := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Cos(float64(c.RotationY)))

	return c.Center.Add(math.Vec3{X: x, Y: y, Z: z})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3{Y: 1})
}

// ProjectionMatrix returns a perspective projection whose far plane covers
// the full zoom range.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	near := max(c.Distance*0.01, 0.01)
	return math.Perspective(c.FovY, aspect, near, c.Distance*4+c.MaxDistance)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity
	c.RotationX = clamp(c.RotationX, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// HandleMovement pans the camera center point based on keyboard input.
func (c *OrbitCamera) HandleMovement(forward, right, up float32) {
	// Speed scales with distance for consistent feel
	speed := c.Distance * 0.01

	// Ground-plane axes for the current yaw; forward points away from the camera.
	yaw := math.RotateY(math.Radian(c.RotationY))
	fwd := yaw.TransformDirection(math.Vec3{Z: -1})
	side := yaw.TransformDirection(math.Vec3{X: 1})

	move := fwd.Scale(forward).Add(side.Scale(right)).Add(math.Vec3{Y: up})
	c.Center = c.Center.Add(move.Scale(speed))
}

// FitToBounds centers the camera on box and moves it back until the box's
// bounding sphere fits the vertical field of view.
func (c *OrbitCamera) FitToBounds(box geometry.BoundingBox) {
	c.Center = box.Center()

	radius := box.Size().Length() / 2
	if radius == 0 {
		radius = 1
	}
	half := float64(c.FovY) / 2
	c.Distance = radius / float32(gomath.Sin(half))
	if c.Distance > c.MaxDistance {
		c.MaxDistance = c.Distance * 2
	}
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}

	c.RotationX = 0.6 // Look down at ~35 degrees
	c.RotationY = 0.0
}

func clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}

package camera

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/midgard-geom/pkg/geometry"
	"github.com/Faultbox/midgard-geom/pkg/math"
)

func TestPositionAtZeroAngles(t *testing.T) {
	c := NewOrbitCamera()
	c.RotationX, c.RotationY = 0, 0
	c.Distance = 10
	c.Center = math.Vec3{X: 1, Y: 2, Z: 3}

	p := c.Position()
	assert.InDelta(t, 1, p.X, 1e-5)
	assert.InDelta(t, 2, p.Y, 1e-5)
	assert.InDelta(t, 13, p.Z, 1e-5)
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera()
	c.HandleDrag(0, 1e6)
	assert.Equal(t, c.MaxPitch, c.RotationX)
	c.HandleDrag(0, -1e6)
	assert.Equal(t, c.MinPitch, c.RotationX)
}

func TestHandleZoomClampsDistance(t *testing.T) {
	c := NewOrbitCamera()
	for i := 0; i < 100; i++ {
		c.HandleZoom(5)
	}
	assert.Equal(t, c.MinDistance, c.Distance)
}

func TestHandleMovement(t *testing.T) {
	tests := []struct {
		name               string
		yaw                float32
		forward, right, up float32
		want               math.Vec3
	}{
		{"forward at zero yaw", 0, 1, 0, 0, math.Vec3{Z: -1}},
		{"right at zero yaw", 0, 0, 1, 0, math.Vec3{X: 1}},
		{"up", 0, 0, 0, 1, math.Vec3{Y: 1}},
		{"forward after quarter turn", gomath.Pi / 2, 1, 0, 0, math.Vec3{X: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewOrbitCamera()
			c.Distance = 100 // speed 1
			c.RotationY = tt.yaw
			c.HandleMovement(tt.forward, tt.right, tt.up)

			assert.InDelta(t, tt.want.X, c.Center.X, 1e-5)
			assert.InDelta(t, tt.want.Y, c.Center.Y, 1e-5)
			assert.InDelta(t, tt.want.Z, c.Center.Z, 1e-5)
		})
	}
}

func TestFitToBounds(t *testing.T) {
	mesh, err := geometry.GeneratePlane(10, 10, 4, 4, 1)
	assert.NoError(t, err)
	box := geometry.ComputeMeshBounds(mesh)

	c := NewOrbitCamera()
	c.FitToBounds(box)

	assert.Equal(t, box.Center(), c.Center)
	radius := float64(box.Size().Length() / 2)
	want := radius / gomath.Sin(float64(c.FovY)/2)
	assert.InDelta(t, want, c.Distance, 1e-3)
	assert.GreaterOrEqual(t, c.Position().Sub(c.Center).Length(), float32(radius))
}

func TestFitToDegenerateBounds(t *testing.T) {
	c := NewOrbitCamera()
	c.FitToBounds(geometry.BoundingBox{})
	assert.Greater(t, c.Distance, float32(0))
	assert.Equal(t, math.Vec3{}, c.Center)
}

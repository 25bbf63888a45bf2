package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/midgard-geom/pkg/geometry"
	"github.com/Faultbox/midgard-geom/pkg/math"
)

func TestBBoxWireframeEdges(t *testing.T) {
	box := geometry.BoundingBox{
		Min: math.Vec3{X: -1, Y: 0, Z: -2},
		Max: math.Vec3{X: 1, Y: 3, Z: 2},
	}
	verts := BBoxWireframe(box)
	require.Len(t, verts, BBoxWireframeVertexCount*3)

	for i := 0; i < len(verts); i += 6 {
		a := math.Vec3{X: verts[i], Y: verts[i+1], Z: verts[i+2]}
		b := math.Vec3{X: verts[i+3], Y: verts[i+4], Z: verts[i+5]}
		assert.True(t, box.Contains(a))
		assert.True(t, box.Contains(b))

		// Every edge is axis-aligned: exactly one coordinate differs.
		diff := 0
		for axis, d := range b.Sub(a).Array() {
			if d != 0 {
				diff++
				assert.InDelta(t, box.Size().Array()[axis], abs(d), 1e-6)
			}
		}
		assert.Equal(t, 1, diff, "edge %d", i/6)
	}
}

func TestBBoxWireframePadded(t *testing.T) {
	mesh, err := geometry.GeneratePlane(2, 2, 1, 1, 1)
	require.NoError(t, err)
	box := geometry.ComputeMeshBounds(mesh)

	verts := BBoxWireframePadded(box, 0.5)
	minY, maxY := verts[1], verts[1]
	for i := 1; i < len(verts); i += 3 {
		minY = min(minY, verts[i])
		maxY = max(maxY, verts[i])
	}
	assert.Equal(t, float32(-0.5), minY)
	assert.Equal(t, float32(0.5), maxY)
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

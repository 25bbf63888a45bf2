package main

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/midgard-geom/pkg/geometry"
)

func TestRippleHeightsBoundsStayWithinAmplitude(t *testing.T) {
	mesh, err := geometry.GeneratePlane(8, 8, 8, 8, 1)
	require.NoError(t, err)
	base := append([]float32(nil), mesh.Vertices...)

	for _, tm := range []float32{0, 0.4, 1.7} {
		rippleHeights(mesh.Vertices, base, tm, 0.25)
		box := geometry.ComputeMeshBounds(mesh)

		assert.Equal(t, float32(-4), box.Min.X)
		assert.Equal(t, float32(4), box.Max.Z)
		assert.GreaterOrEqual(t, box.Min.Y, float32(-0.25))
		assert.LessOrEqual(t, box.Max.Y, float32(0.25))
	}
}

func TestRippleHeightsAtOrigin(t *testing.T) {
	base := []float32{0, 1, 0}
	verts := make([]float32, 3)

	rippleHeights(verts, base, 0, 0.5)
	assert.Equal(t, []float32{0, 1, 0}, verts)

	tm := float32(gomath.Pi / 6) // sin(-pi/2) = -1
	rippleHeights(verts, base, tm, 0.5)
	assert.InDelta(t, 0.5, verts[1], 1e-5)
}

package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTangentsPlane(t *testing.T) {
	mesh, err := GeneratePlane(2, 2, 2, 2, 1)
	require.NoError(t, err)
	require.NoError(t, GenerateTangents(mesh))
	require.Len(t, mesh.Tangents, mesh.VertexCount()*TangentComponents)

	for i := 0; i < mesh.VertexCount(); i++ {
		tan := mesh.Tangents[i*4 : i*4+4]
		assert.InDelta(t, 1, tan[0], 1e-5, "tangent %d x", i)
		assert.InDelta(t, 0, tan[1], 1e-5, "tangent %d y", i)
		assert.InDelta(t, 0, tan[2], 1e-5, "tangent %d z", i)
		assert.Equal(t, float32(-1), tan[3], "tangent %d handedness", i)
	}
	assert.NoError(t, mesh.Validate())
}

func TestGenerateTangentsMissingBuffers(t *testing.T) {
	mesh, err := GeneratePlane(2, 2, 1, 1, 1)
	require.NoError(t, err)
	mesh.TexCoords = nil

	assert.ErrorIs(t, GenerateTangents(mesh), ErrInvalidParameter)
	assert.Nil(t, mesh.Tangents)

	assert.ErrorIs(t, GenerateTangents(&Mesh{}), ErrInvalidParameter)
}

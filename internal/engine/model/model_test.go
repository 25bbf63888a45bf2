package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/midgard-geom/internal/config"
	"github.com/Faultbox/midgard-geom/internal/engine/gpu"
	"github.com/Faultbox/midgard-geom/pkg/geometry"
	"github.com/Faultbox/midgard-geom/pkg/math"
)

type countingUploader struct {
	next     uint32
	failAt   int
	released int
}

func (c *countingUploader) Upload(mesh *geometry.Mesh, dynamic bool) (gpu.Handle, error) {
	c.next++
	if c.failAt > 0 && int(c.next) == c.failAt {
		return gpu.Handle{}, errors.New("upload refused")
	}
	return gpu.Handle{VAO: c.next, VertexCount: int32(mesh.VertexCount())}, nil
}

func (c *countingUploader) UpdateBuffer(gpu.Handle, gpu.Attribute, []float32, int) error {
	return nil
}

func (c *countingUploader) Release(gpu.Handle) error {
	c.released++
	return nil
}

func TestFromConfigDefault(t *testing.T) {
	up := &countingUploader{}
	m, err := FromConfig(config.Default().Model, up)
	require.NoError(t, err)
	defer m.Close()

	require.Len(t, m.Meshes, 2)
	assert.Equal(t, 25+9, m.VertexCount())
	assert.Equal(t, 32+8, m.TriangleCount())

	box := m.Bounds()
	assert.Equal(t, math.Vec3{X: -5, Y: 0, Z: -5}, box.Min)
	assert.Equal(t, math.Vec3{X: 5, Y: 2, Z: 5}, box.Max)
}

func TestModelBoundsMatchesUnion(t *testing.T) {
	cfg := config.Default().Model
	cfg.Transform = config.TransformConfig{
		Translation: [3]float32{3, 1, -2},
		RotationDeg: [3]float32{20, 45, 0},
		Scale:       [3]float32{1, 2, 1},
	}

	m, err := FromConfig(cfg, &countingUploader{})
	require.NoError(t, err)
	defer m.Close()

	var want geometry.BoundingBox
	for i, box := range m.SubmeshBounds() {
		if i == 0 {
			want = box
			continue
		}
		want = want.Union(box)
	}
	assert.Equal(t, want, m.Bounds())
}

func TestFromConfigInvalidSubmesh(t *testing.T) {
	cfg := config.Default().Model
	cfg.Submeshes = append(cfg.Submeshes, config.SubmeshConfig{
		PlaneConfig: config.PlaneConfig{Width: -1, Length: 1, ResX: 1, ResZ: 1, TextureScale: 1},
	})

	m, err := FromConfig(cfg, &countingUploader{})
	assert.ErrorIs(t, err, geometry.ErrInvalidParameter)
	assert.Nil(t, m)
}

func TestFromConfigTangents(t *testing.T) {
	cfg := config.ModelConfig{
		Submeshes: []config.SubmeshConfig{{
			PlaneConfig: config.PlaneConfig{Width: 1, Length: 1, ResX: 1, ResZ: 1, TextureScale: 1, Tangents: true},
		}},
		Transform: config.TransformConfig{Scale: [3]float32{1, 1, 1}},
	}

	m, err := FromConfig(cfg, nil)
	require.NoError(t, err)
	assert.Len(t, m.Meshes[0].CPU().Tangents, 16)
}

func TestModelUploadAndClose(t *testing.T) {
	up := &countingUploader{}
	m, err := FromConfig(config.Default().Model, up)
	require.NoError(t, err)

	require.NoError(t, m.Upload(false))
	for _, mesh := range m.Meshes {
		assert.True(t, mesh.Uploaded())
	}

	require.NoError(t, m.Close())
	assert.Equal(t, 2, up.released)
	assert.Equal(t, geometry.BoundingBox{}, m.Bounds())
}

func TestModelUploadFailureReleasesOnClose(t *testing.T) {
	up := &countingUploader{failAt: 2}
	m, err := FromConfig(config.Default().Model, up)
	require.NoError(t, err)

	err = m.Upload(true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "submesh 1")

	require.NoError(t, m.Close())
	assert.Equal(t, 1, up.released)
}

func TestEmptyModel(t *testing.T) {
	m := New(math.Identity())
	assert.Equal(t, geometry.BoundingBox{}, m.Bounds())
	assert.Zero(t, m.VertexCount())
	assert.NoError(t, m.Close())
}

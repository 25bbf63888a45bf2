package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-geom/internal/config"
	"github.com/Faultbox/midgard-geom/internal/engine/model"
)

func TestPlaneReport(t *testing.T) {
	params := config.PlaneConfig{Width: 2, Length: 2, ResX: 1, ResZ: 1, TextureScale: 1}
	mesh, err := model.BuildPlane(params)
	require.NoError(t, err)

	r := newPlaneReport(params, mesh)
	assert.Equal(t, 4, r.Mesh.Vertices)
	assert.Equal(t, 2, r.Mesh.Triangles)
	assert.Equal(t, [3]float32{-1, 0, -1}, r.Mesh.Bounds.Min)
	assert.Equal(t, [3]float32{1, 0, 1}, r.Mesh.Bounds.Max)
	assert.Equal(t, [3]float32{2, 0, 2}, r.Mesh.Bounds.Size)
}

func TestModelReportWritten(t *testing.T) {
	m, err := model.FromConfig(config.Default().Model, nil)
	require.NoError(t, err)
	defer m.Close()

	path := filepath.Join(t.TempDir(), "out", "bounds.yaml")
	require.NoError(t, writeReport(path, newModelReport(m)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got modelReport
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Len(t, got.Submeshes, 2)
	assert.Equal(t, 34, got.Vertices)
	assert.Equal(t, 40, got.Triangles)
	assert.Equal(t, [3]float32{-5, 0, -5}, got.Bounds.Min)
	assert.Equal(t, [3]float32{5, 2, 5}, got.Bounds.Max)
	assert.Equal(t, [3]float32{-2, 2, -2}, got.Submeshes[1].Bounds.Min)
}

// Package model groups submesh resources that share one transform.
package model

import (
	"errors"
	"fmt"

	"github.com/Faultbox/midgard-geom/internal/engine/gpu"
	"github.com/Faultbox/midgard-geom/pkg/geometry"
	"github.com/Faultbox/midgard-geom/pkg/math"
)

// Model is an ordered list of submeshes drawn with one transform.
type Model struct {
	Meshes    []*gpu.Mesh
	Transform math.Mat4
}

// New returns an empty model with the given transform.
func New(transform math.Mat4) *Model {
	return &Model{Transform: transform}
}

// Add appends a submesh.
func (m *Model) Add(mesh *gpu.Mesh) {
	m.Meshes = append(m.Meshes, mesh)
}

// Bounds returns the bounding box of every submesh under the model
// transform.
func (m *Model) Bounds() geometry.BoundingBox {
	return geometry.ComputeModelBounds(m.cpuMeshes(), m.Transform)
}

// SubmeshBounds returns the box of each submesh under the model transform.
func (m *Model) SubmeshBounds() []geometry.BoundingBox {
	boxes := make([]geometry.BoundingBox, len(m.Meshes))
	for i, mesh := range m.Meshes {
		boxes[i] = mesh.Bounds(m.Transform)
	}
	return boxes
}

// VertexCount returns the total vertex count over all submeshes.
func (m *Model) VertexCount() int {
	n := 0
	for _, cpu := range m.cpuMeshes() {
		n += cpu.VertexCount()
	}
	return n
}

// TriangleCount returns the total triangle count over all submeshes.
func (m *Model) TriangleCount() int {
	n := 0
	for _, cpu := range m.cpuMeshes() {
		n += cpu.TriangleCount()
	}
	return n
}

// Upload uploads every submesh, stopping at the first failure. Submeshes
// uploaded before the failure stay attached until Close.
func (m *Model) Upload(dynamic bool) error {
	for i, mesh := range m.Meshes {
		if err := mesh.Upload(dynamic); err != nil {
			return fmt.Errorf("submesh %d: %w", i, err)
		}
	}
	return nil
}

// Close closes every submesh and returns all errors joined.
func (m *Model) Close() error {
	var errs []error
	for i, mesh := range m.Meshes {
		if err := mesh.Close(); err != nil {
			errs = append(errs, fmt.Errorf("submesh %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func (m *Model) cpuMeshes() []*geometry.Mesh {
	cpus := make([]*geometry.Mesh, len(m.Meshes))
	for i, mesh := range m.Meshes {
		cpus[i] = mesh.CPU()
	}
	return cpus
}

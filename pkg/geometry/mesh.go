// Package geometry builds procedural triangle meshes and computes
// axis-aligned bounds over their CPU-side buffers.
package geometry

import (
	"fmt"

	"github.com/Faultbox/midgard-geom/pkg/math"
)

// Per-vertex component counts for each buffer.
const (
	PositionComponents = 3
	NormalComponents   = 3
	TexCoordComponents = 2
	TangentComponents  = 4
	ColorComponents    = 4
	BoneComponents     = 4
)

// Mesh holds the CPU-side buffers of an indexed triangle mesh.
// Optional buffers are nil when absent.
type Mesh struct {
	Vertices  []float32 // xyz per vertex
	Indices   []uint32  // three per triangle
	Normals   []float32 // xyz per vertex
	TexCoords []float32 // uv per vertex

	TexCoords2  []float32 // second uv set
	Tangents    []float32 // xyzw per vertex, w is handedness
	Colors      []uint8   // rgba per vertex
	BoneIDs     []uint8
	BoneWeights []float32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	if m == nil {
		return 0
	}
	return len(m.Vertices) / PositionComponents
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	if m == nil {
		return 0
	}
	return len(m.Indices) / 3
}

// Vertex returns the position of vertex i.
func (m *Mesh) Vertex(i int) math.Vec3 {
	o := i * PositionComponents
	return math.Vec3{X: m.Vertices[o], Y: m.Vertices[o+1], Z: m.Vertices[o+2]}
}

// Normal returns the normal of vertex i.
func (m *Mesh) Normal(i int) math.Vec3 {
	o := i * NormalComponents
	return math.Vec3{X: m.Normals[o], Y: m.Normals[o+1], Z: m.Normals[o+2]}
}

// Triangle returns the vertex indices of triangle t.
func (m *Mesh) Triangle(t int) [3]uint32 {
	o := t * 3
	return [3]uint32{m.Indices[o], m.Indices[o+1], m.Indices[o+2]}
}

// Validate checks buffer sizes and index ranges.
func (m *Mesh) Validate() error {
	if len(m.Vertices)%PositionComponents != 0 {
		return fmt.Errorf("%w: %d vertex floats is not a multiple of %d",
			ErrInvalidMesh, len(m.Vertices), PositionComponents)
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices is not a multiple of 3", ErrInvalidMesh, len(m.Indices))
	}

	n := m.VertexCount()
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("%w: index %d at %d out of range [0, %d)", ErrInvalidMesh, idx, i, n)
		}
	}

	checks := []struct {
		name  string
		got   int
		width int
	}{
		{"normals", len(m.Normals), NormalComponents},
		{"texcoords", len(m.TexCoords), TexCoordComponents},
		{"texcoords2", len(m.TexCoords2), TexCoordComponents},
		{"tangents", len(m.Tangents), TangentComponents},
		{"colors", len(m.Colors), ColorComponents},
		{"bone ids", len(m.BoneIDs), BoneComponents},
		{"bone weights", len(m.BoneWeights), BoneComponents},
	}
	for _, c := range checks {
		if c.got != 0 && c.got != n*c.width {
			return fmt.Errorf("%w: %s has %d elements, want %d", ErrInvalidMesh, c.name, c.got, n*c.width)
		}
	}
	return nil
}

// Translate moves every vertex of m by offset in place.
func (m *Mesh) Translate(offset math.Vec3) {
	for i := 0; i+2 < len(m.Vertices); i += 3 {
		m.Vertices[i] += offset.X
		m.Vertices[i+1] += offset.Y
		m.Vertices[i+2] += offset.Z
	}
}

package geometry

import (
	"github.com/Faultbox/midgard-geom/pkg/math"
)

// BoundingBox is an axis-aligned box given by its minimum and maximum
// corners. The zero value is the degenerate box at the origin.
type BoundingBox struct {
	Min math.Vec3
	Max math.Vec3
}

// ComputeBounds returns the tightest box enclosing every vertex of mesh
// after applying transform. An empty or nil mesh yields the zero box.
// transform is treated as affine: the w of each transformed vertex is
// ignored, so a projection matrix does not yield clip-space bounds.
func ComputeBounds(mesh *Mesh, transform math.Mat4) BoundingBox {
	n := mesh.VertexCount()
	if n == 0 {
		return BoundingBox{}
	}

	first := transform.TransformPoint(mesh.Vertex(0))
	box := BoundingBox{Min: first, Max: first}

	for i := 1; i < n; i++ {
		p := transform.TransformPoint(mesh.Vertex(i))
		box.Min = box.Min.Min(p)
		box.Max = box.Max.Max(p)
	}
	return box
}

// ComputeMeshBounds returns the untransformed bounds of mesh.
func ComputeMeshBounds(mesh *Mesh) BoundingBox {
	return ComputeBounds(mesh, math.Identity())
}

// ComputeModelBounds returns the union of the bounds of every submesh under
// one shared transform. No submeshes yields the zero box.
func ComputeModelBounds(submeshes []*Mesh, transform math.Mat4) BoundingBox {
	if len(submeshes) == 0 {
		return BoundingBox{}
	}

	bounds := ComputeBounds(submeshes[0], transform)
	for _, m := range submeshes[1:] {
		bounds = bounds.Union(ComputeBounds(m, transform))
	}
	return bounds
}

// Union returns the smallest box enclosing both b and other.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	return BoundingBox{
		Min: b.Min.Min(other.Min),
		Max: b.Max.Max(other.Max),
	}
}

// Contains reports whether p lies inside or on the box.
func (b BoundingBox) Contains(p math.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Size returns the box extent on each axis.
func (b BoundingBox) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// IsDegenerate reports whether the box has zero extent on every axis.
func (b BoundingBox) IsDegenerate() bool {
	return b.Min == b.Max
}

// Corners returns the eight corners, bottom face (min Y) first.
func (b BoundingBox) Corners() [8]math.Vec3 {
	lo, hi := b.Min, b.Max
	return [8]math.Vec3{
		{X: lo.X, Y: lo.Y, Z: lo.Z},
		{X: hi.X, Y: lo.Y, Z: lo.Z},
		{X: hi.X, Y: lo.Y, Z: hi.Z},
		{X: lo.X, Y: lo.Y, Z: hi.Z},
		{X: lo.X, Y: hi.Y, Z: lo.Z},
		{X: hi.X, Y: hi.Y, Z: lo.Z},
		{X: hi.X, Y: hi.Y, Z: hi.Z},
		{X: lo.X, Y: hi.Y, Z: hi.Z},
	}
}

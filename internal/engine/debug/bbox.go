// Package debug provides debug visualization utilities.
package debug

import "github.com/Faultbox/midgard-geom/pkg/geometry"

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges × 2).
const BBoxWireframeVertexCount = 24

// bboxEdges indexes into BoundingBox.Corners.
var bboxEdges = [12][2]int{
	// Bottom face
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	// Top face
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	// Vertical edges
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// BBoxWireframe creates line vertices for a wireframe bounding box.
// Returns 24 vertices, format: [x, y, z] per vertex.
func BBoxWireframe(box geometry.BoundingBox) []float32 {
	corners := box.Corners()
	out := make([]float32, 0, BBoxWireframeVertexCount*3)
	for _, e := range bboxEdges {
		a, b := corners[e[0]], corners[e[1]]
		out = append(out, a.X, a.Y, a.Z, b.X, b.Y, b.Z)
	}
	return out
}

// BBoxWireframePadded expands box by padding on all sides before building
// the wireframe, so the lines stay visible on flat meshes.
func BBoxWireframePadded(box geometry.BoundingBox, padding float32) []float32 {
	box.Min.X -= padding
	box.Min.Y -= padding
	box.Min.Z -= padding
	box.Max.X += padding
	box.Max.Y += padding
	box.Max.Z += padding
	return BBoxWireframe(box)
}

// Package gpu attaches GPU buffers to CPU-side meshes and releases them.
package gpu

import (
	"github.com/Faultbox/midgard-geom/pkg/geometry"
)

// Attribute identifies a vertex buffer. Its value is also the shader
// attribute location the buffer is bound to.
type Attribute uint32

const (
	AttribPosition Attribute = iota
	AttribTexCoord
	AttribNormal
	AttribColor
	AttribTangent
	AttribTexCoord2
	AttribBoneIDs
	AttribBoneWeights

	attribCount
)

var attribNames = [attribCount]string{
	"position", "texcoord", "normal", "color",
	"tangent", "texcoord2", "bone_ids", "bone_weights",
}

func (a Attribute) String() string {
	if a < attribCount {
		return attribNames[a]
	}
	return "unknown"
}

// Handle holds the GPU object names backing one mesh.
type Handle struct {
	VAO         uint32
	VBO         [attribCount]uint32
	EBO         uint32
	VertexCount int32
	IndexCount  int32
}

// Valid reports whether the handle refers to uploaded buffers.
func (h Handle) Valid() bool {
	return h.VAO != 0
}

// Uploader moves mesh buffers to the GPU and frees them again.
// Implementations clean up after themselves when Upload fails.
type Uploader interface {
	Upload(mesh *geometry.Mesh, dynamic bool) (Handle, error)
	UpdateBuffer(h Handle, attr Attribute, data []float32, offset int) error
	Release(h Handle) error
}

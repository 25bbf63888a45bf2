package gpu

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/midgard-geom/pkg/geometry"
)

// GLUploader uploads meshes into OpenGL vertex array objects.
// It must be used on the thread that owns the GL context.
type GLUploader struct{}

// NewGLUploader returns an uploader for the current GL context.
// gl.Init must already have been called.
func NewGLUploader() *GLUploader {
	return &GLUploader{}
}

// Upload creates a VAO with one VBO per present attribute and an element
// buffer for the indices.
func (u *GLUploader) Upload(mesh *geometry.Mesh, dynamic bool) (Handle, error) {
	if mesh.VertexCount() == 0 {
		return Handle{}, fmt.Errorf("%w: no vertices to upload", geometry.ErrInvalidMesh)
	}

	usage := uint32(gl.STATIC_DRAW)
	if dynamic {
		usage = gl.DYNAMIC_DRAW
	}

	h := Handle{
		VertexCount: int32(mesh.VertexCount()),
		IndexCount:  int32(len(mesh.Indices)),
	}

	gl.GenVertexArrays(1, &h.VAO)
	gl.BindVertexArray(h.VAO)

	h.VBO[AttribPosition] = uploadFloats(AttribPosition, mesh.Vertices, geometry.PositionComponents, usage)
	h.VBO[AttribTexCoord] = uploadFloats(AttribTexCoord, mesh.TexCoords, geometry.TexCoordComponents, usage)
	h.VBO[AttribNormal] = uploadFloats(AttribNormal, mesh.Normals, geometry.NormalComponents, usage)
	h.VBO[AttribColor] = uploadBytes(AttribColor, mesh.Colors, geometry.ColorComponents, true, usage)
	h.VBO[AttribTangent] = uploadFloats(AttribTangent, mesh.Tangents, geometry.TangentComponents, usage)
	h.VBO[AttribTexCoord2] = uploadFloats(AttribTexCoord2, mesh.TexCoords2, geometry.TexCoordComponents, usage)
	h.VBO[AttribBoneIDs] = uploadBytes(AttribBoneIDs, mesh.BoneIDs, geometry.BoneComponents, false, usage)
	h.VBO[AttribBoneWeights] = uploadFloats(AttribBoneWeights, mesh.BoneWeights, geometry.BoneComponents, usage)

	if len(mesh.Indices) > 0 {
		gl.GenBuffers(1, &h.EBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, h.EBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), usage)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		relErr := u.Release(h)
		return Handle{}, errors.Join(fmt.Errorf("gl error 0x%x during upload", code), relErr)
	}
	return h, nil
}

// UpdateBuffer replaces len(data) floats of one attribute buffer.
func (u *GLUploader) UpdateBuffer(h Handle, attr Attribute, data []float32, offset int) error {
	if attr >= attribCount || h.VBO[attr] == 0 {
		return fmt.Errorf("no %s buffer in vao %d", attr, h.VAO)
	}
	if len(data) == 0 {
		return nil
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, h.VBO[attr])
	gl.BufferSubData(gl.ARRAY_BUFFER, offset*4, len(data)*4, unsafe.Pointer(&data[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("update %s buffer: gl error 0x%x", attr, code)
	}
	return nil
}

// Release deletes every buffer named by h.
func (u *GLUploader) Release(h Handle) error {
	for i := range h.VBO {
		if h.VBO[i] != 0 {
			gl.DeleteBuffers(1, &h.VBO[i])
		}
	}
	if h.EBO != 0 {
		gl.DeleteBuffers(1, &h.EBO)
	}
	if h.VAO != 0 {
		gl.DeleteVertexArrays(1, &h.VAO)
	}

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("release vao %d: gl error 0x%x", h.VAO, code)
	}
	return nil
}

// uploadFloats creates a float buffer bound to the attribute location.
// An empty slice leaves the attribute disabled and returns 0.
func uploadFloats(attr Attribute, data []float32, components int32, usage uint32) uint32 {
	if len(data) == 0 {
		return 0
	}

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), usage)
	gl.VertexAttribPointerWithOffset(uint32(attr), components, gl.FLOAT, false, components*4, 0)
	gl.EnableVertexAttribArray(uint32(attr))
	return vbo
}

func uploadBytes(attr Attribute, data []uint8, components int32, normalized bool, usage uint32) uint32 {
	if len(data) == 0 {
		return 0
	}

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data), unsafe.Pointer(&data[0]), usage)
	gl.VertexAttribPointerWithOffset(uint32(attr), components, gl.UNSIGNED_BYTE, normalized, components, 0)
	gl.EnableVertexAttribArray(uint32(attr))
	return vbo
}

// Package renderer draws uploaded meshes and debug lines with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-geom/internal/engine/gpu"
	"github.com/Faultbox/midgard-geom/internal/engine/lighting"
	"github.com/Faultbox/midgard-geom/internal/engine/shader"
	"github.com/Faultbox/midgard-geom/internal/logger"
	"github.com/Faultbox/midgard-geom/pkg/math"
)

const meshVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec3 aNormal;

uniform mat4 uModel;
uniform mat4 uViewProj;

out vec3 vNormal;
out vec2 vTexCoord;

void main() {
	vNormal = mat3(uModel) * aNormal;
	vTexCoord = aTexCoord;
	gl_Position = uViewProj * uModel * vec4(aPos, 1.0);
}
`

const meshFragmentShader = `
#version 410 core

in vec3 vNormal;
in vec2 vTexCoord;

uniform vec3 uColor;
uniform vec3 uLightDir;

out vec4 FragColor;

void main() {
	// Checker pattern makes the texture scale visible.
	float checker = mod(floor(vTexCoord.x) + floor(vTexCoord.y), 2.0);
	float diffuse = max(dot(normalize(vNormal), -normalize(uLightDir)), 0.0);
	vec3 base = uColor * mix(0.75, 1.0, checker);
	FragColor = vec4(base * (0.3 + 0.7 * diffuse), 1.0);
}
`

const lineVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uViewProj;

void main() {
	gl_Position = uViewProj * vec4(aPos, 1.0);
}
`

const lineFragmentShader = `
#version 410 core

uniform vec3 uColor;

out vec4 FragColor;

void main() {
	FragColor = vec4(uColor, 1.0);
}
`

// Renderer handles all OpenGL rendering.
type Renderer struct {
	width, height int

	meshProgram *shader.Program
	lineProgram *shader.Program

	// Streamed line buffer for wireframes
	lineVAO uint32
	lineVBO uint32
	lineCap int

	LightDir  math.Vec3
	Wireframe bool

	log *zap.Logger
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(width, height int) (*Renderer, error) {
	r := &Renderer{
		width:    width,
		height:   height,
		LightDir: lighting.LightDirection(35, 50),
		log:      logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0) // Dark blue-gray background
	gl.Viewport(0, 0, int32(width), int32(height))

	var err error
	if r.meshProgram, err = shader.NewProgram(meshVertexShader, meshFragmentShader); err != nil {
		return nil, fmt.Errorf("mesh program: %w", err)
	}
	if r.lineProgram, err = shader.NewProgram(lineVertexShader, lineFragmentShader); err != nil {
		r.meshProgram.Delete()
		return nil, fmt.Errorf("line program: %w", err)
	}

	gl.GenVertexArrays(1, &r.lineVAO)
	gl.GenBuffers(1, &r.lineVBO)
	gl.BindVertexArray(r.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.VertexAttribPointerWithOffset(uint32(gpu.AttribPosition), 3, gl.FLOAT, false, 12, 0)
	gl.EnableVertexAttribArray(uint32(gpu.AttribPosition))
	gl.BindVertexArray(0)

	r.log.Debug("shader programs created",
		zap.Uint32("mesh", r.meshProgram.ID),
		zap.Uint32("line", r.lineProgram.ID),
	)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.lineVBO != 0 {
		gl.DeleteBuffers(1, &r.lineVBO)
	}
	if r.lineVAO != 0 {
		gl.DeleteVertexArrays(1, &r.lineVAO)
	}
	r.meshProgram.Delete()
	r.lineProgram.Delete()
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Aspect returns the viewport aspect ratio.
func (r *Renderer) Aspect() float32 {
	if r.height == 0 {
		return 1
	}
	return float32(r.width) / float32(r.height)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	if r.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// DrawMesh draws an uploaded mesh with the given model and view-projection matrices.
func (r *Renderer) DrawMesh(h gpu.Handle, model, viewProj math.Mat4, color math.Vec3) {
	if !h.Valid() {
		return
	}

	r.meshProgram.Use()
	r.meshProgram.SetMat4("uModel", model)
	r.meshProgram.SetMat4("uViewProj", viewProj)
	r.meshProgram.SetVec3("uColor", color)
	r.meshProgram.SetVec3("uLightDir", r.LightDir)

	gl.BindVertexArray(h.VAO)
	if h.EBO != 0 {
		gl.DrawElementsWithOffset(gl.TRIANGLES, h.IndexCount, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, h.VertexCount)
	}
	gl.BindVertexArray(0)
}

// DrawLines draws world-space line segments, two vertices per segment.
func (r *Renderer) DrawLines(verts []float32, viewProj math.Mat4, color math.Vec3) {
	if len(verts) < 6 {
		return
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	if len(verts) > r.lineCap {
		gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.DYNAMIC_DRAW)
		r.lineCap = len(verts)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, unsafe.Pointer(&verts[0]))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	// Lines are always filled regardless of wireframe mode.
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	r.lineProgram.Use()
	r.lineProgram.SetMat4("uViewProj", viewProj)
	r.lineProgram.SetVec3("uColor", color)

	gl.BindVertexArray(r.lineVAO)
	gl.DrawArrays(gl.LINES, 0, int32(len(verts)/3))
	gl.BindVertexArray(0)
}

// ReadPixels returns the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	pixels := make([]byte, r.width*r.height*4)
	if len(pixels) == 0 {
		return nil, 0, 0
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(r.width), int32(r.height), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, r.width, r.height
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.UseProgram(0)
}

package geometry

import (
	"fmt"
	gomath "math"
)

// maxVertices is the largest vertex count addressable by uint32 indices.
const maxVertices = gomath.MaxUint32

// MaxPlaneVertices caps the vertex count GeneratePlane will allocate. The
// default allows grids up to 8191x8191 cells, about 2 GB of buffers.
var MaxPlaneVertices = 8192 * 8192

// PlaneParams describes a subdivided plane in the XZ plane.
type PlaneParams struct {
	Width        float32 // extent along X
	Length       float32 // extent along Z
	ResX         int     // cells along X
	ResZ         int     // cells along Z
	TextureScale float32 // texture repetitions across the plane
}

// GeneratePlane builds a plane of resX*resZ cells centered on the origin
// at y=0. Subdivision counts of zero are treated as one.
func GeneratePlane(width, length float32, resX, resZ int, textureScale float32) (*Mesh, error) {
	return PlaneParams{
		Width:        width,
		Length:       length,
		ResX:         resX,
		ResZ:         resZ,
		TextureScale: textureScale,
	}.Generate()
}

// Validate reports whether the parameters describe a buildable plane.
func (p PlaneParams) Validate() error {
	if !positiveFinite(p.Width) || !positiveFinite(p.Length) {
		return fmt.Errorf("%w: plane size %gx%g must be positive and finite",
			ErrInvalidParameter, p.Width, p.Length)
	}
	if p.ResX < 0 || p.ResZ < 0 {
		return fmt.Errorf("%w: subdivisions %dx%d must not be negative",
			ErrInvalidParameter, p.ResX, p.ResZ)
	}
	if !positiveFinite(p.TextureScale) {
		return fmt.Errorf("%w: texture scale %g must be positive and finite",
			ErrInvalidParameter, p.TextureScale)
	}
	return nil
}

// Generate builds the mesh. Either all buffers are returned or none.
func (p PlaneParams) Generate() (*Mesh, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	resX := max(p.ResX, 1)
	resZ := max(p.ResZ, 1)

	vertexCount, triangleCount, err := planeCounts(resX, resZ)
	if err != nil {
		return nil, err
	}

	stride := resX + 1
	mesh := &Mesh{
		Vertices:  make([]float32, vertexCount*PositionComponents),
		Normals:   make([]float32, vertexCount*NormalComponents),
		TexCoords: make([]float32, vertexCount*TexCoordComponents),
		Indices:   make([]uint32, 0, triangleCount*3),
	}

	for z := 0; z <= resZ; z++ {
		fz := float32(z) / float32(resZ)
		zPos := (fz - 0.5) * p.Length

		for x := 0; x <= resX; x++ {
			fx := float32(x) / float32(resX)
			v := x + z*stride

			mesh.Vertices[v*3] = (fx - 0.5) * p.Width
			mesh.Vertices[v*3+1] = 0
			mesh.Vertices[v*3+2] = zPos

			mesh.Normals[v*3+1] = 1

			mesh.TexCoords[v*2] = fx * p.TextureScale
			mesh.TexCoords[v*2+1] = fz * p.TextureScale
		}
	}

	// Cells are walked row by row so the lower-left corner index stays
	// correct when resX != resZ.
	for z := 0; z < resZ; z++ {
		for x := 0; x < resX; x++ {
			i := uint32(x + z*stride)
			s := uint32(stride)
			mesh.Indices = append(mesh.Indices,
				i+s, i+1, i,
				i+s, i+s+1, i+1,
			)
		}
	}

	return mesh, nil
}

// planeCounts returns vertex and triangle counts for a resX*resZ grid,
// failing before anything is allocated if they cannot be represented.
func planeCounts(resX, resZ int) (vertices, triangles int, err error) {
	cols := uint64(resX) + 1
	rows := uint64(resZ) + 1
	if cols > maxVertices || rows > maxVertices || cols*rows > maxVertices {
		return 0, 0, fmt.Errorf("%w: %dx%d grid exceeds %d vertices",
			ErrAllocation, resX, resZ, uint64(maxVertices))
	}

	v := cols * rows
	if MaxPlaneVertices >= 0 && v > uint64(MaxPlaneVertices) {
		return 0, 0, fmt.Errorf("%w: %dx%d grid has %d vertices, limit is %d",
			ErrAllocation, resX, resZ, v, MaxPlaneVertices)
	}
	t := 2 * uint64(resX) * uint64(resZ)
	if v*PositionComponents > gomath.MaxInt || t*3 > gomath.MaxInt {
		return 0, 0, fmt.Errorf("%w: %dx%d grid buffers overflow", ErrAllocation, resX, resZ)
	}
	return int(v), int(t), nil
}

func positiveFinite(f float32) bool {
	return f > 0 && !gomath.IsInf(float64(f), 1)
}

package geometry

import (
	"fmt"

	"github.com/Faultbox/midgard-geom/pkg/math"
)

// GenerateTangents fills m.Tangents from positions, texture coordinates and
// normals. Each tangent is stored as xyz plus a handedness sign in w.
func GenerateTangents(m *Mesh) error {
	n := m.VertexCount()
	if n == 0 {
		return fmt.Errorf("%w: mesh has no vertices", ErrInvalidParameter)
	}
	if len(m.TexCoords) != n*TexCoordComponents || len(m.Normals) != n*NormalComponents {
		return fmt.Errorf("%w: tangents need texcoords and normals for all %d vertices",
			ErrInvalidParameter, n)
	}
	if err := m.Validate(); err != nil {
		return err
	}

	tan1 := make([]math.Vec3, n)
	tan2 := make([]math.Vec3, n)

	for t := 0; t < m.TriangleCount(); t++ {
		tri := m.Triangle(t)
		a, b, c := int(tri[0]), int(tri[1]), int(tri[2])

		e1 := m.Vertex(b).Sub(m.Vertex(a))
		e2 := m.Vertex(c).Sub(m.Vertex(a))

		s1 := m.TexCoords[b*2] - m.TexCoords[a*2]
		t1 := m.TexCoords[b*2+1] - m.TexCoords[a*2+1]
		s2 := m.TexCoords[c*2] - m.TexCoords[a*2]
		t2 := m.TexCoords[c*2+1] - m.TexCoords[a*2+1]

		var r float32
		if div := s1*t2 - s2*t1; div != 0 {
			r = 1 / div
		}

		sdir := e1.Scale(t2).Sub(e2.Scale(t1)).Scale(r)
		tdir := e2.Scale(s1).Sub(e1.Scale(s2)).Scale(r)

		for _, v := range tri {
			tan1[v] = tan1[v].Add(sdir)
			tan2[v] = tan2[v].Add(tdir)
		}
	}

	tangents := make([]float32, n*TangentComponents)
	for i := 0; i < n; i++ {
		normal := m.Normal(i)
		t := tan1[i]

		// Gram-Schmidt
		tangent := t.Sub(normal.Scale(normal.Dot(t))).Normalize()

		w := float32(1)
		if normal.Cross(t).Dot(tan2[i]) < 0 {
			w = -1
		}

		tangents[i*4] = tangent.X
		tangents[i*4+1] = tangent.Y
		tangents[i*4+2] = tangent.Z
		tangents[i*4+3] = w
	}

	m.Tangents = tangents
	return nil
}

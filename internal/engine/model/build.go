package model

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-geom/internal/config"
	"github.com/Faultbox/midgard-geom/internal/engine/gpu"
	"github.com/Faultbox/midgard-geom/internal/logger"
	"github.com/Faultbox/midgard-geom/pkg/geometry"
	"github.com/Faultbox/midgard-geom/pkg/math"
)

// BuildPlane generates one plane from its configuration, with tangents if
// requested.
func BuildPlane(cfg config.PlaneConfig) (*geometry.Mesh, error) {
	mesh, err := cfg.Params().Generate()
	if err != nil {
		return nil, err
	}
	if cfg.Tangents {
		if err := geometry.GenerateTangents(mesh); err != nil {
			return nil, fmt.Errorf("tangents: %w", err)
		}
	}
	return mesh, nil
}

// FromConfig builds every configured submesh. Either the whole model is
// returned or nothing is kept.
func FromConfig(cfg config.ModelConfig, up gpu.Uploader) (*Model, error) {
	log := logger.Named("model")
	m := New(cfg.Transform.Matrix())

	for i, sm := range cfg.Submeshes {
		mesh, err := BuildPlane(sm.PlaneConfig)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("submesh %d: %w", i, err), m.Close())
		}
		mesh.Translate(math.Vec3FromArray(sm.Offset))

		res, err := gpu.NewMesh(mesh, up, gpu.Owned)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("submesh %d: %w", i, err), m.Close())
		}
		m.Add(res)

		log.Debug("submesh built",
			zap.Int("index", i),
			zap.Int("vertices", mesh.VertexCount()),
			zap.Int("triangles", mesh.TriangleCount()),
		)
	}
	return m, nil
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-geom/internal/config"
	"github.com/Faultbox/midgard-geom/internal/engine/model"
	"github.com/Faultbox/midgard-geom/internal/logger"
	"github.com/Faultbox/midgard-geom/pkg/geometry"
)

type boxReport struct {
	Min    [3]float32 `yaml:"min"`
	Max    [3]float32 `yaml:"max"`
	Size   [3]float32 `yaml:"size"`
	Center [3]float32 `yaml:"center"`
}

func newBoxReport(b geometry.BoundingBox) boxReport {
	return boxReport{
		Min:    b.Min.Array(),
		Max:    b.Max.Array(),
		Size:   b.Size().Array(),
		Center: b.Center().Array(),
	}
}

type meshReport struct {
	Vertices  int       `yaml:"vertices"`
	Triangles int       `yaml:"triangles"`
	Bounds    boxReport `yaml:"bounds"`
}

type planeReport struct {
	Params config.PlaneConfig `yaml:"params"`
	Mesh   meshReport         `yaml:"mesh"`
}

type modelReport struct {
	Submeshes []meshReport `yaml:"submeshes"`
	Vertices  int          `yaml:"vertices"`
	Triangles int          `yaml:"triangles"`
	Bounds    boxReport    `yaml:"bounds"`
}

func newPlaneReport(params config.PlaneConfig, mesh *geometry.Mesh) planeReport {
	return planeReport{
		Params: params,
		Mesh: meshReport{
			Vertices:  mesh.VertexCount(),
			Triangles: mesh.TriangleCount(),
			Bounds:    newBoxReport(geometry.ComputeMeshBounds(mesh)),
		},
	}
}

func newModelReport(m *model.Model) modelReport {
	r := modelReport{
		Vertices:  m.VertexCount(),
		Triangles: m.TriangleCount(),
		Bounds:    newBoxReport(m.Bounds()),
	}
	boxes := m.SubmeshBounds()
	for i, mesh := range m.Meshes {
		cpu := mesh.CPU()
		r.Submeshes = append(r.Submeshes, meshReport{
			Vertices:  cpu.VertexCount(),
			Triangles: cpu.TriangleCount(),
			Bounds:    newBoxReport(boxes[i]),
		})
	}
	return r
}

func writeReport(path string, report any) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	logger.Info("report written", zap.String("path", path))
	return nil
}

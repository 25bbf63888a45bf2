// Package config handles configuration loading and management for the mesh tools.
package config

import (
	"github.com/Faultbox/midgard-geom/pkg/geometry"
	"github.com/Faultbox/midgard-geom/pkg/math"
)

// Config holds all tool settings.
type Config struct {
	Plane   PlaneConfig   `yaml:"plane"`
	Model   ModelConfig   `yaml:"model"`
	Window  WindowConfig  `yaml:"window"`
	Logging LoggingConfig `yaml:"logging"`
}

// PlaneConfig holds plane generator parameters.
type PlaneConfig struct {
	Width        float32 `yaml:"width"`
	Length       float32 `yaml:"length"`
	ResX         int     `yaml:"res_x"`
	ResZ         int     `yaml:"res_z"`
	TextureScale float32 `yaml:"texture_scale"`
	Tangents     bool    `yaml:"tangents"`
}

// SubmeshConfig is one plane of a model, shifted by Offset in model space.
type SubmeshConfig struct {
	PlaneConfig `yaml:",inline"`
	Offset      [3]float32 `yaml:"offset"`
}

// ModelConfig describes a model built from several planes sharing one transform.
type ModelConfig struct {
	Submeshes []SubmeshConfig `yaml:"submeshes"`
	Transform TransformConfig `yaml:"transform"`
	Dynamic   bool            `yaml:"dynamic"` // upload with dynamic buffer usage
}

// TransformConfig is a translate/rotate/scale transform. Rotation is in
// degrees, applied X then Y then Z.
type TransformConfig struct {
	Translation [3]float32 `yaml:"translation"`
	RotationDeg [3]float32 `yaml:"rotation_deg"`
	Scale       [3]float32 `yaml:"scale"`
}

// WindowConfig holds viewer display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Plane: PlaneConfig{
			Width:        10,
			Length:       10,
			ResX:         4,
			ResZ:         4,
			TextureScale: 1,
		},
		Model: ModelConfig{
			Submeshes: []SubmeshConfig{
				{PlaneConfig: PlaneConfig{Width: 10, Length: 10, ResX: 4, ResZ: 4, TextureScale: 1}},
				{
					PlaneConfig: PlaneConfig{Width: 4, Length: 4, ResX: 2, ResZ: 2, TextureScale: 1},
					Offset:      [3]float32{0, 2, 0},
				},
			},
			Transform: TransformConfig{
				Scale: [3]float32{1, 1, 1},
			},
		},
		Window: WindowConfig{
			Title:  "meshview",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Params converts the plane settings into generator parameters.
func (p PlaneConfig) Params() geometry.PlaneParams {
	return geometry.PlaneParams{
		Width:        p.Width,
		Length:       p.Length,
		ResX:         p.ResX,
		ResZ:         p.ResZ,
		TextureScale: p.TextureScale,
	}
}

// Matrix returns translation * rotation * scale.
func (t TransformConfig) Matrix() math.Mat4 {
	rot := math.QuatFromEuler(
		math.Degree(t.RotationDeg[0]).Radians(),
		math.Degree(t.RotationDeg[1]).Radians(),
		math.Degree(t.RotationDeg[2]).Radians(),
	)
	return math.Compose(math.Vec3FromArray(t.Translation), rot, math.Vec3FromArray(t.Scale))
}

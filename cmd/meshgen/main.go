// meshgen generates procedural meshes and reports their bounding boxes.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-geom/internal/config"
	"github.com/Faultbox/midgard-geom/internal/engine/model"
	"github.com/Faultbox/midgard-geom/internal/logger"
	"github.com/Faultbox/midgard-geom/pkg/geometry"
	"github.com/Faultbox/midgard-geom/pkg/math"
)

func main() {
	config.ParseFlags()

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	command := args[0]
	rest := args[1:]

	switch command {
	case "plane":
		err = cmdPlane(cfg, rest)
	case "model":
		err = cmdModel(cfg, rest)
	case "config":
		err = cmdConfig(cfg, rest)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshgen - procedural mesh generator

Usage:
  meshgen [global flags] <command> [options]

Commands:
  plane [-report file.yaml]   Generate the configured plane and print its bounds
  model [-report file.yaml]   Build the configured model and print its bounds
  config [-o file.yaml]       Write the effective configuration

Global flags:
  -config, -debug, -log, -plane-width, -plane-length,
  -res-x, -res-z, -texture-scale, -tangents

Examples:
  meshgen plane
  meshgen -res-x 8 -res-z 2 plane -report plane.yaml
  meshgen -config scene.yaml model -report bounds.yaml`)
}

func cmdPlane(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("plane", flag.ContinueOnError)
	reportPath := fs.String("report", "", "Write a YAML bounds report to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	mesh, err := model.BuildPlane(cfg.Plane)
	if err != nil {
		return err
	}
	box := geometry.ComputeMeshBounds(mesh)

	logger.Info("plane generated",
		zap.Float32("width", cfg.Plane.Width),
		zap.Float32("length", cfg.Plane.Length),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
	)

	fmt.Printf("Vertices:  %d\n", mesh.VertexCount())
	fmt.Printf("Triangles: %d\n", mesh.TriangleCount())
	fmt.Printf("Tangents:  %v\n", mesh.Tangents != nil)
	printBox("Bounds", box)

	if *reportPath == "" {
		return nil
	}
	return writeReport(*reportPath, newPlaneReport(cfg.Plane, mesh))
}

func cmdModel(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("model", flag.ContinueOnError)
	reportPath := fs.String("report", "", "Write a YAML bounds report to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// No uploader: the model stays CPU-only.
	m, err := model.FromConfig(cfg.Model, nil)
	if err != nil {
		return err
	}
	defer m.Close()

	fmt.Printf("Submeshes: %d\n", len(m.Meshes))
	fmt.Printf("Vertices:  %d\n", m.VertexCount())
	fmt.Printf("Triangles: %d\n", m.TriangleCount())
	for i, box := range m.SubmeshBounds() {
		printBox(fmt.Sprintf("  [%d]", i), box)
	}
	printBox("Bounds", m.Bounds())

	if *reportPath == "" {
		return nil
	}
	return writeReport(*reportPath, newModelReport(m))
}

func cmdConfig(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	out := fs.String("o", "", "Output path (default: user config directory)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := *out
	if path == "" {
		var err error
		if path, err = cfg.Save(); err != nil {
			return err
		}
	} else if err := cfg.SaveTo(path); err != nil {
		return err
	}

	logger.Info("config written", zap.String("path", path))
	fmt.Println(path)
	return nil
}

func printBox(label string, box geometry.BoundingBox) {
	fmt.Printf("%-10s min=%s max=%s\n", label, fmtVec(box.Min), fmtVec(box.Max))
}

func fmtVec(v math.Vec3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}

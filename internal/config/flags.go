package config

import "flag"

var (
	flagConfig       = flag.String("config", "", "Path to config file")
	flagDebug        = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile      = flag.String("log", "", "Write logs to this file")
	flagPlaneWidth   = flag.Float64("plane-width", 0, "Plane width")
	flagPlaneLength  = flag.Float64("plane-length", 0, "Plane length")
	flagResX         = flag.Int("res-x", -1, "Plane subdivisions along X")
	flagResZ         = flag.Int("res-z", -1, "Plane subdivisions along Z")
	flagTextureScale = flag.Float64("texture-scale", 0, "Plane texture repetitions")
	flagTangents     = flag.Bool("tangents", false, "Generate tangents")
	flagWindowed     = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen   = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth        = flag.Int("width", 0, "Window width")
	flagHeight       = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag command-line arguments.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagPlaneWidth > 0 {
		cfg.Plane.Width = float32(*flagPlaneWidth)
	}
	if *flagPlaneLength > 0 {
		cfg.Plane.Length = float32(*flagPlaneLength)
	}
	if *flagResX >= 0 {
		cfg.Plane.ResX = *flagResX
	}
	if *flagResZ >= 0 {
		cfg.Plane.ResZ = *flagResZ
	}
	if *flagTextureScale > 0 {
		cfg.Plane.TextureScale = float32(*flagTextureScale)
	}
	if *flagTangents {
		cfg.Plane.Tangents = true
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
}

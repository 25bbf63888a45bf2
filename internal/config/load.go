package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./meshgen.yaml",
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "MidgardGeom")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "MidgardGeom")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "midgard-geom")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "midgard-geom")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
// A submesh list in the file replaces the default list.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// UnmarshalYAML seeds a submesh with the plane defaults that have no
// usable zero value, so a file may leave them out.
func (s *SubmeshConfig) UnmarshalYAML(value *yaml.Node) error {
	type plain SubmeshConfig
	p := plain{PlaneConfig: PlaneConfig{TextureScale: 1}}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*s = SubmeshConfig(p)
	return nil
}

// Validate checks that every configured plane can be generated.
func (c *Config) Validate() error {
	if err := c.Plane.Params().Validate(); err != nil {
		return fmt.Errorf("plane: %w", err)
	}
	for i, sm := range c.Model.Submeshes {
		if err := sm.Params().Validate(); err != nil {
			return fmt.Errorf("model submesh %d: %w", i, err)
		}
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	return nil
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the swatch render settings.
type Config struct {
	OutputDir string `json:"output_dir" yaml:"output_dir"`
	Format    string `json:"format" yaml:"format"`

	// Render settings
	Size        int     `json:"size" yaml:"size"`
	Supersample int     `json:"supersample" yaml:"supersample"`
	Frames      int     `json:"frames" yaml:"frames"`
	TiltDegrees float32 `json:"tilt_degrees" yaml:"tilt_degrees"`
	Span        float32 `json:"span" yaml:"span"`
	Workers     int     `json:"workers" yaml:"workers"`
}

// Load reads a JSON or YAML config file, chosen by extension.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Size > 0 {
		c.Size = flags.Size
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.OutputDir == "" {
		c.OutputDir = "swatch"
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.Size <= 0 {
		c.Size = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Frames <= 0 {
		c.Frames = 8
	}
	if c.TiltDegrees == 0 {
		c.TiltDegrees = -25
	}
	if c.Span <= 0 {
		c.Span = 2.5
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir   string
	Format      string
	Size        int
	Supersample int
	Frames      int
	Workers     int
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/imageio"
)

// Config holds render settings, read from JSON and overridden by flags
type Config struct {
	Scene     string `json:"scene"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Format    string `json:"format"`
	OutputDir string `json:"output_dir"`
	Workers   int    `json:"workers"`
	Scale     int    `json:"scale"`
	Caption   string `json:"caption"`
	Mesh      string `json:"mesh"` // Optional PLY file added to the scene
}

// Flags holds CLI flag values that override config file settings.
// Zero values leave the file setting alone.
type Flags struct {
	Scene     string
	Width     int
	Height    int
	Format    string
	OutputDir string
	Workers   int
	Scale     int
	Caption   string
	Mesh      string
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies flag overrides and fills any empty fields with defaults
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Scene != "" {
		c.Scene = flags.Scene
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Caption != "" {
		c.Caption = flags.Caption
	}
	if flags.Mesh != "" {
		c.Mesh = flags.Mesh
	}

	if c.Scene == "" {
		c.Scene = "default"
	}
	if c.Width <= 0 {
		c.Width = 400
	}
	if c.Height <= 0 {
		c.Height = 300
	}
	if c.Format == "" {
		c.Format = string(imageio.FormatPNG)
	}
	if c.OutputDir == "" {
		c.OutputDir = "output"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
}

// Validate reports settings that cannot produce an image
func (c *Config) Validate() error {
	if c.Width < 2 || c.Height < 2 {
		return fmt.Errorf("config: %dx%d: %w", c.Width, c.Height, core.ErrInvalidDimensions)
	}
	if _, err := imageio.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ImageFormat returns the parsed output format
func (c *Config) ImageFormat() imageio.Format {
	f, err := imageio.ParseFormat(c.Format)
	if err != nil {
		return imageio.FormatPNG
	}
	return f
}

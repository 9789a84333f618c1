package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/smasonuk/loopmesh"
)

// Config drives one run of the tool. Values come from a TOML file and are
// overridden by any flag given on the command line.
type Config struct {
	Shape     string  `toml:"shape"`
	Input     string  `toml:"input"`
	Output    string  `toml:"output"`
	Rounds    int     `toml:"rounds"`
	Scale     float64 `toml:"scale"`
	Decimate  float64 `toml:"decimate"`
	Wireframe bool    `toml:"wireframe"`
	LogLevel  string  `toml:"log_level"`
}

// DefaultConfig matches the reference setup: a cube refined four times.
func DefaultConfig() Config {
	return Config{
		Shape:    "cube",
		Rounds:   4,
		Scale:    1,
		Decimate: 1,
		LogLevel: "info",
	}
}

func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("could not read config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("could not parse config file %s: %w", path, err)
	}
	return cfg, nil
}

var (
	inputExts  = []string{".ply", ".stl", ".dxf"}
	outputExts = []string{".ply", ".stl", ".dxf"}
)

func (c Config) Validate() error {
	if c.Rounds < 0 {
		return fmt.Errorf("rounds must not be negative, got %d", c.Rounds)
	}
	if c.Scale == 0 {
		return fmt.Errorf("scale must not be zero")
	}
	if c.Decimate <= 0 || c.Decimate > 1 {
		return fmt.Errorf("decimate must be in (0, 1], got %v", c.Decimate)
	}
	if c.Input != "" {
		if ext := strings.ToLower(filepath.Ext(c.Input)); !slices.Contains(inputExts, ext) {
			return fmt.Errorf("unsupported input format %q", ext)
		}
	} else if _, err := loopmesh.Shape(c.Shape); err != nil {
		return err
	}
	if c.Output != "" {
		if ext := strings.ToLower(filepath.Ext(c.Output)); !slices.Contains(outputExts, ext) {
			return fmt.Errorf("unsupported output format %q", ext)
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// merge copies the fields of flags whose flag was set explicitly.
func (c Config) merge(flags Config, changed func(name string) bool) Config {
	if changed("shape") {
		c.Shape = flags.Shape
	}
	if changed("input") {
		c.Input = flags.Input
	}
	if changed("output") {
		c.Output = flags.Output
	}
	if changed("rounds") {
		c.Rounds = flags.Rounds
	}
	if changed("scale") {
		c.Scale = flags.Scale
	}
	if changed("decimate") {
		c.Decimate = flags.Decimate
	}
	if changed("wireframe") {
		c.Wireframe = flags.Wireframe
	}
	if changed("log-level") {
		c.LogLevel = flags.LogLevel
	}
	return c
}

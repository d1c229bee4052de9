// Package config loads the engine settings shared by a processing run from
// YAML and turns them into the functional options of each operator package.
//
// A Config is a plain value owned by the caller. Nothing in the engine
// reads a process-wide default.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmorph/core"
	"github.com/katalvlaran/lvmorph/grid"
)

// Config is the YAML document of a processing run.
type Config struct {
	// Grid is "hexagonal" or "square".
	Grid string `yaml:"grid"`

	// Edge is "empty" or "filled". Empty keeps each operator's own default.
	Edge string `yaml:"edge,omitempty"`

	// SE names the structuring element, see grid.Named. It must live on Grid.
	SE string `yaml:"se"`

	// Label bounds the low byte of component labels to [Low, High).
	Label struct {
		Low  uint32 `yaml:"low"`
		High uint32 `yaml:"high"`
	} `yaml:"label"`

	// Watershed limits the flooding.
	Watershed struct {
		// MaxLevel stops Grey floods before this level; negative floods all.
		MaxLevel int `yaml:"maxLevel"`

		// MaxLevel32 stops Long floods before this relief value; negative
		// floods all.
		MaxLevel32 int64 `yaml:"maxLevel32"`
	} `yaml:"watershed"`
}

// Default returns the hexagonal grid with the hexagon element, labels
// 1..256 and a complete flood.
func Default() *Config {
	cfg := &Config{
		Grid: grid.Hexagonal.String(),
		SE:   "hexagon",
	}
	cfg.Label.Low = 1
	cfg.Label.High = 256
	cfg.Watershed.MaxLevel = -1
	cfg.Watershed.MaxLevel32 = -1
	return cfg
}

// Load reads and validates the YAML file at path over the defaults. A
// missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML document over the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as YAML to path, creating its directory.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Validate checks every setting.
func (c *Config) Validate() error {
	g, err := grid.Parse(c.Grid)
	if err != nil {
		return err
	}
	if _, _, err = c.edge(); err != nil {
		return err
	}
	se, err := grid.Named(c.SE)
	if err != nil {
		return err
	}
	if se.Grid() != g {
		return fmt.Errorf("%w: element %s is not on the %s grid", core.ErrBadParameter, c.SE, g)
	}
	if lo, hi := c.Label.Low, c.Label.High; lo < 1 || lo >= hi || hi > 256 {
		return fmt.Errorf("%w: label range [%d, %d)", core.ErrBadParameter, lo, hi)
	}
	if c.Watershed.MaxLevel > 256 {
		return fmt.Errorf("%w: max level %d above 256", core.ErrBadValue, c.Watershed.MaxLevel)
	}
	if c.Watershed.MaxLevel32 > 1<<32 {
		return fmt.Errorf("%w: 32-bit max level %d above 2^32", core.ErrBadValue, c.Watershed.MaxLevel32)
	}
	return nil
}

// edge returns the configured edge and whether one is set.
func (c *Config) edge() (core.Edge, bool, error) {
	switch strings.ToLower(strings.TrimSpace(c.Edge)) {
	case "":
		return core.Empty, false, nil
	case "empty":
		return core.Empty, true, nil
	case "filled":
		return core.Filled, true, nil
	default:
		return 0, false, fmt.Errorf("%w: unknown edge %q", core.ErrBadParameter, c.Edge)
	}
}

// Topology returns the typed grid and structuring element.
func (c *Config) Topology() (grid.Grid, grid.SE, error) {
	if err := c.Validate(); err != nil {
		return 0, grid.SE{}, err
	}
	g, _ := grid.Parse(c.Grid)
	se, _ := grid.Named(c.SE)
	return g, se, nil
}

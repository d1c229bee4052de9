package config

import (
	"github.com/katalvlaran/lvmorph/distance"
	"github.com/katalvlaran/lvmorph/geodesy"
	"github.com/katalvlaran/lvmorph/label"
	"github.com/katalvlaran/lvmorph/morpho"
	"github.com/katalvlaran/lvmorph/watershed"
)

// MorphoOptions returns the element and, when set, the edge.
func (c *Config) MorphoOptions() ([]morpho.Option, error) {
	_, se, err := c.Topology()
	if err != nil {
		return nil, err
	}
	opts := []morpho.Option{morpho.WithSE(se)}
	if e, ok, _ := c.edge(); ok {
		opts = append(opts, morpho.WithEdge(e))
	}
	return opts, nil
}

// GeodesyOptions returns the element of reconstructions and geodesic
// operators.
func (c *Config) GeodesyOptions() ([]geodesy.Option, error) {
	_, se, err := c.Topology()
	if err != nil {
		return nil, err
	}
	return []geodesy.Option{geodesy.WithSE(se)}, nil
}

// LabelOptions returns the grid and label range.
func (c *Config) LabelOptions() ([]label.Option, error) {
	g, _, err := c.Topology()
	if err != nil {
		return nil, err
	}
	return []label.Option{
		label.WithGrid(g),
		label.WithRange(c.Label.Low, c.Label.High),
	}, nil
}

// WatershedOptions returns the grid and the flood limit of Grey reliefs.
func (c *Config) WatershedOptions() ([]watershed.Option, error) {
	g, _, err := c.Topology()
	if err != nil {
		return nil, err
	}
	return []watershed.Option{
		watershed.WithGrid(g),
		watershed.WithMaxLevel(c.Watershed.MaxLevel),
	}, nil
}

// Watershed32Options returns the grid and the flood limit of Long
// reliefs, for Segment32 and Basins32.
func (c *Config) Watershed32Options() ([]watershed.Option, error) {
	g, _, err := c.Topology()
	if err != nil {
		return nil, err
	}
	return []watershed.Option{
		watershed.WithGrid(g),
		watershed.WithMaxLevel(int(c.Watershed.MaxLevel32)),
	}, nil
}

// DistanceOptions returns the grid and, when set, the edge.
func (c *Config) DistanceOptions() ([]distance.Option, error) {
	g, _, err := c.Topology()
	if err != nil {
		return nil, err
	}
	opts := []distance.Option{distance.WithGrid(g)}
	if e, ok, _ := c.edge(); ok {
		opts = append(opts, distance.WithEdge(e))
	}
	return opts, nil
}

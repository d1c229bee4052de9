package watershed

import (
	"github.com/katalvlaran/lvmorph/core"
	"github.com/katalvlaran/lvmorph/geodesy"
	"github.com/katalvlaran/lvmorph/grid"
	"github.com/katalvlaran/lvmorph/label"
	"github.com/katalvlaran/lvmorph/morpho"
)

// Marker pixel layout.
const (
	// LabelMask selects the label bits of a marker pixel.
	LabelMask uint32 = 0x00FFFFFF
	// StatusMask selects the status byte of a marker pixel.
	StatusMask uint32 = 0xFF000000
	// Line is the status of watershed line pixels.
	Line uint32 = 0xFF000000

	labelled  uint32 = 0
	candidate uint32 = 0x01000000
	queued    uint32 = 0x02000000
)

// Option configures a flood.
type Option func(*Options)

// Options holds the topology, the flood limit and the hook of one call.
type Options struct {
	// Grid is the flooding adjacency.
	Grid grid.Grid

	// MaxLevel stops the flood before this relief level. A negative value
	// floods everything.
	MaxLevel int

	// OnLevel is called each time the water leaves a level.
	OnLevel func(level, popped int)

	err error
}

// DefaultOptions floods everything on the hexagonal grid.
func DefaultOptions() Options {
	return Options{
		Grid:     grid.Default,
		MaxLevel: -1,
		OnLevel:  func(int, int) {},
	}
}

// WithGrid selects the adjacency.
func WithGrid(g grid.Grid) Option {
	return func(o *Options) {
		if err := g.Check(); err != nil {
			o.err = err
			return
		}
		o.Grid = g
	}
}

// WithMaxLevel stops the flood before level l. Negative floods everything.
func WithMaxLevel(l int) Option {
	return func(o *Options) { o.MaxLevel = l }
}

// WithOnLevel registers a per-level hook.
func WithOnLevel(fn func(level, popped int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

func (o Options) labelOpts() []label.Option {
	return []label.Option{label.WithGrid(o.Grid)}
}

func (o Options) geodesyOpts() []geodesy.Option {
	return []geodesy.Option{geodesy.WithGrid(o.Grid)}
}

func (o Options) morphoOpts() []morpho.Option {
	return []morpho.Option{morpho.WithSE(grid.Full(o.Grid))}
}

// checkPair validates a relief of depth relief against a Long marker.
func checkPair(in, marker *core.Image, relief core.Depth) error {
	if err := core.CheckSize(in, marker); err != nil {
		return err
	}
	if err := core.CheckDepth(in, relief); err != nil {
		return err
	}
	return core.CheckDepth(marker, core.Long)
}

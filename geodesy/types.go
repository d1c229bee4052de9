package geodesy

import (
	"fmt"

	"github.com/katalvlaran/lvmorph/core"
	"github.com/katalvlaran/lvmorph/grid"
	"github.com/katalvlaran/lvmorph/morpho"
	"github.com/katalvlaran/lvmorph/neighbor"
)

// Option configures a geodesic operator.
// An invalid Option is recorded and surfaced as core.ErrBadParameter.
type Option func(*Options)

// Options holds the topology and hooks of one call.
type Options struct {
	// Grid drives the reconstructions.
	Grid grid.Grid

	// SE drives the geodesic dilations, erosions and distance.
	SE grid.SE

	// OnLevel is called each time the hierarchical flood leaves a level.
	OnLevel func(level, popped int)

	err error
}

// DefaultOptions returns the hexagonal grid, the hexagon element and a
// no-op hook.
func DefaultOptions() Options {
	return Options{
		Grid:    grid.Default,
		SE:      grid.DefaultSE,
		OnLevel: func(int, int) {},
	}
}

// WithGrid selects the reconstruction grid.
func WithGrid(g grid.Grid) Option {
	return func(o *Options) {
		if !g.Valid() {
			o.err = fmt.Errorf("%w: grid %d", core.ErrBadParameter, int(g))
			return
		}
		o.Grid = g
	}
}

// WithSE selects the element of geodesic dilations and erosions. Its grid
// also becomes the reconstruction grid.
func WithSE(se grid.SE) Option {
	return func(o *Options) {
		if se.Len() == 0 {
			o.err = fmt.Errorf("%w: empty structuring element", core.ErrBadParameter)
			return
		}
		o.SE = se
		o.Grid = se.Grid()
	}
}

// WithOnLevel registers a hook for the hierarchical engines.
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

func (o Options) neighborOpts() []neighbor.Option {
	return []neighbor.Option{neighbor.WithGrid(o.Grid)}
}

func (o Options) morphoOpts() []morpho.Option {
	return []morpho.Option{morpho.WithSE(o.SE)}
}

package morpho

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvmorph/core"
	"github.com/katalvlaran/lvmorph/grid"
	"github.com/katalvlaran/lvmorph/neighbor"
)

// Option configures a morphological operator.
// An invalid Option is recorded and surfaced as core.ErrBadParameter.
type Option func(*Options)

// Options holds the structuring element, grid and edge policy of one call.
type Options struct {
	// SE drives Dilate, Erode and the filters built on them.
	SE grid.SE

	// Grid drives the single-direction operators (linear, double point).
	Grid grid.Grid

	// Edge overrides the operator default when set.
	Edge core.Edge

	edgeSet bool
	err     error
}

// DefaultOptions returns the hexagon element on the hexagonal grid.
func DefaultOptions() Options {
	return Options{SE: grid.DefaultSE, Grid: grid.Default}
}

// WithSE sets the structuring element. Its grid also becomes the grid of
// single-direction operators.
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

// WithGrid sets the grid of single-direction operators.
func WithGrid(g grid.Grid) Option {
	return func(o *Options) {
		if !g.Valid() {
			o.err = fmt.Errorf("%w: grid %d", core.ErrBadParameter, int(g))
			return
		}
		o.Grid = g
	}
}

// WithEdge overrides the default edge policy.
func WithEdge(e core.Edge) Option {
	return func(o *Options) {
		if !e.Valid() {
			o.err = fmt.Errorf("%w: edge %d", core.ErrBadParameter, int(e))
			return
		}
		o.Edge = e
		o.edgeSet = true
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// edgeOr returns the explicit edge or def.
func (o Options) edgeOr(def core.Edge) core.Edge {
	if o.edgeSet {
		return o.Edge
	}
	return def
}

// with returns opts followed by extra without touching the caller's slice.
func with(opts []Option, extra ...Option) []Option {
	return append(slices.Clone(opts), extra...)
}

func (o Options) neighborOpts(edge core.Edge) []neighbor.Option {
	return []neighbor.Option{neighbor.WithGrid(o.Grid), neighbor.WithEdge(edge)}
}

func checkIter(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative size %d", core.ErrBadValue, n)
	}
	return nil
}

// prepare resolves options and validates the image pair and size.
func prepare(in, out *core.Image, n int, opts []Option) (Options, error) {
	o, err := resolve(opts)
	if err != nil {
		return o, err
	}
	if err = core.CheckPair(in, out); err != nil {
		return o, err
	}
	return o, checkIter(n)
}

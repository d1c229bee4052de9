package neighbor

import (
	"fmt"

	"github.com/katalvlaran/lvmorph/core"
	"github.com/katalvlaran/lvmorph/grid"
)

// Option configures a neighbor operator via functional arguments.
// An invalid Option is recorded and surfaced as core.ErrBadParameter
// when the operator runs.
type Option func(*Options)

// Options holds the grid and edge policy of one call.
type Options struct {
	// Grid is the neighborhood topology.
	Grid grid.Grid

	// Edge is the out-of-image policy. When unset the operator default
	// applies.
	Edge core.Edge

	edgeSet bool
	err     error
}

// DefaultOptions returns the hexagonal grid with no explicit edge policy.
func DefaultOptions() Options {
	return Options{Grid: grid.Default, Edge: core.Empty}
}

// WithGrid selects the topology.
func WithGrid(g grid.Grid) Option {
	return func(o *Options) {
		if !g.Valid() {
			o.err = fmt.Errorf("%w: grid %d", core.ErrBadParameter, int(g))
			return
		}
		o.Grid = g
	}
}

// WithEdge overrides the operator's default edge policy.
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

// resolve applies opts over the defaults with def as the fallback edge.
func resolve(def core.Edge, opts []Option) (Options, error) {
	o := DefaultOptions()
	o.Edge = def
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	return o, nil
}

// prepare resolves options and validates an image pair and a direction.
func prepare(in, inout *core.Image, d int, def core.Edge, opts []Option) (Options, error) {
	o, err := resolve(def, opts)
	if err != nil {
		return o, err
	}
	if err = core.CheckPair(in, inout); err != nil {
		return o, err
	}
	if err = o.Grid.Validate(d); err != nil {
		return o, err
	}
	return o, nil
}

// offsetFunc returns the source offset for pixels on row y.
type offsetFunc func(y int) (dx, dy int)

// sweep visits every pixel index of a w×h plane together with the value of
// in at the offset given by off, or edge when that falls outside.
func sweep[T core.Pixel](in []T, w, h int, off offsetFunc, edge T, visit func(i int, nb T)) {
	for y := 0; y < h; y++ {
		dx, dy := off(y)
		base := y * w
		sy := y + dy
		if sy < 0 || sy >= h {
			for x := 0; x < w; x++ {
				visit(base+x, edge)
			}
			continue
		}
		src := in[sy*w : sy*w+w]
		for x := 0; x < w; x++ {
			if sx := x + dx; sx >= 0 && sx < w {
				visit(base+x, src[sx])
			} else {
				visit(base+x, edge)
			}
		}
	}
}

// step returns the offset of direction d for every row.
func step(g grid.Grid, d int) offsetFunc {
	return func(y int) (int, int) { return g.Offset(d, y) }
}

// far returns the offset reached after amp steps in direction d.
func far(g grid.Grid, d, amp int) offsetFunc {
	return func(y int) (int, int) { return g.Displacement(d, amp, y) }
}

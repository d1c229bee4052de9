package distance

import (
	"fmt"

	"github.com/katalvlaran/lvmorph/core"
	"github.com/katalvlaran/lvmorph/grid"
)

// Far is the distance given to the outside of the image under a filled
// edge. It exceeds any distance reachable inside an image.
const Far uint32 = 0x00010000

// Option configures a distance transform.
type Option func(*Options)

// Options holds the grid and edge policy of one call.
type Options struct {
	// Grid is the step adjacency of Compute.
	Grid grid.Grid

	// Edge overrides the operator default when set.
	Edge core.Edge

	edgeSet bool
	err     error
}

// DefaultOptions returns the hexagonal grid and the operator default edge.
func DefaultOptions() Options {
	return Options{Grid: grid.Default}
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

// WithEdge sets the edge policy.
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

func (o Options) edgeOr(def core.Edge) core.Edge {
	if o.edgeSet {
		return o.Edge
	}
	return def
}

package label

import (
	"fmt"

	"github.com/katalvlaran/lvmorph/core"
	"github.com/katalvlaran/lvmorph/grid"
)

// Option configures Label and CountComponents.
type Option func(*Options)

// Options holds the labeling parameters.
type Options struct {
	// Grid is the adjacency used to connect pixels.
	Grid grid.Grid

	// Low and High bound the low byte of the labels: Low <= b < High.
	Low, High uint32

	// OnComponent is called with the label and size of each component.
	OnComponent func(label uint32, size int)

	err error
}

// DefaultOptions returns the hexagonal grid and the range 1..256.
func DefaultOptions() Options {
	return Options{
		Grid:        grid.Default,
		Low:         1,
		High:        256,
		OnComponent: func(uint32, int) {},
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

// WithRange bounds the low byte of the labels to [low, high).
func WithRange(low, high uint32) Option {
	return func(o *Options) {
		if low < 1 || low >= high || high > 256 {
			o.err = fmt.Errorf("%w: label range [%d, %d)", core.ErrBadParameter, low, high)
			return
		}
		o.Low, o.High = low, high
	}
}

// WithOnComponent registers a per-component hook.
func WithOnComponent(fn func(label uint32, size int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnComponent = fn
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

// value returns the label of the k-th component.
func (o Options) value(k uint32) uint32 {
	span := o.High - o.Low
	return o.Low + k%span + 256*(k/span)
}

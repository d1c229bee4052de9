package geodesy

import (
	"github.com/katalvlaran/lvmorph/core"
	"github.com/katalvlaran/lvmorph/neighbor"
)

type buildStep func(mask, inout *core.Image, d int, opts ...neighbor.Option) (uint64, error)

// Build reconstructs inout under mask by iterated directional propagation.
func Build(mask, inout *core.Image, opts ...Option) error {
	o, err := resolve(opts)
	if err != nil {
		return err
	}
	if err = core.CheckPair(mask, inout); err != nil {
		return err
	}
	return iterate(mask, inout, o, neighbor.BuildNeighbor)
}

// DualBuild reconstructs inout over mask by iterated directional
// propagation of minima.
func DualBuild(mask, inout *core.Image, opts ...Option) error {
	o, err := resolve(opts)
	if err != nil {
		return err
	}
	if err = core.CheckPair(mask, inout); err != nil {
		return err
	}
	return iterate(mask, inout, o, neighbor.DualBuildNeighbor)
}

// iterate repeats full direction passes until the volume is stable.
func iterate(mask, inout *core.Image, o Options, fn buildStep) error {
	nopts := o.neighborOpts()
	dirs := o.Grid.Directions()[1:]
	var vol, prev uint64
	for first := true; first || prev != vol; first = false {
		prev = vol
		for _, d := range dirs {
			v, err := fn(mask, inout, d, nopts...)
			if err != nil {
				return err
			}
			vol = v
		}
	}
	return nil
}

// Reconstruct runs the fastest reconstruction for the depth: hierarchical
// for Grey, sliced hierarchical for Long, iterative for Binary.
func Reconstruct(mask, inout *core.Image, opts ...Option) error {
	switch inout.Depth() {
	case core.Grey:
		return HierarBuild(mask, inout, opts...)
	case core.Long:
		return HierarBuild32(mask, inout, opts...)
	default:
		return Build(mask, inout, opts...)
	}
}

// DualReconstruct is the dual of Reconstruct.
func DualReconstruct(mask, inout *core.Image, opts ...Option) error {
	switch inout.Depth() {
	case core.Grey:
		return HierarDualBuild(mask, inout, opts...)
	case core.Long:
		return HierarDualBuild32(mask, inout, opts...)
	default:
		return DualBuild(mask, inout, opts...)
	}
}

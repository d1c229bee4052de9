package geodesy

import (
	"fmt"

	"github.com/katalvlaran/lvmorph/arith"
	"github.com/katalvlaran/lvmorph/core"
	"github.com/katalvlaran/lvmorph/grid"
	"github.com/katalvlaran/lvmorph/morpho"
)

// Minima marks in the Binary out the regional minima of in with a dynamic
// of at least h. h is clamped to 1 from below.
func Minima(in, out *core.Image, h uint32, opts ...Option) error {
	wrk, o, err := prepareExtrema(in, out, opts)
	if err != nil {
		return err
	}
	h = max(h, 1)
	if err = arith.CeilingAddConst(in, wrk, h); err != nil {
		return err
	}
	if err = DualReconstruct(in, wrk, withOptions(o)); err != nil {
		return err
	}
	if err = arith.FloorSub(wrk, in, wrk); err != nil {
		return err
	}
	return arith.Threshold(wrk, out, 1, in.Depth().Max())
}

// Maxima marks in the Binary out the regional maxima of in with a dynamic
// of at least h. h is clamped to 1 from below.
func Maxima(in, out *core.Image, h uint32, opts ...Option) error {
	wrk, o, err := prepareExtrema(in, out, opts)
	if err != nil {
		return err
	}
	h = max(h, 1)
	if err = arith.FloorSubConst(in, wrk, h); err != nil {
		return err
	}
	if err = Reconstruct(in, wrk, withOptions(o)); err != nil {
		return err
	}
	if err = arith.FloorSub(in, wrk, wrk); err != nil {
		return err
	}
	return arith.Threshold(wrk, out, 1, in.Depth().Max())
}

func prepareExtrema(in, out *core.Image, opts []Option) (*core.Image, Options, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, o, err
	}
	if err = core.CheckSize(in, out); err != nil {
		return nil, o, err
	}
	if err = core.CheckDepth(in, core.Grey, core.Long); err != nil {
		return nil, o, err
	}
	if err = core.CheckDepth(out, core.Binary); err != nil {
		return nil, o, err
	}
	wrk, err := core.Like(in, in.Depth())
	return wrk, o, err
}

// withOptions carries resolved options into a nested call.
func withOptions(o Options) Option {
	return func(p *Options) { *p = o }
}

// CloseHoles fills in out every hole of in: the parts of the background
// that cannot be reached from the image edge. Any depth.
func CloseHoles(in, out *core.Image, opts ...Option) error {
	o, err := resolve(opts)
	if err != nil {
		return err
	}
	if err = core.CheckPair(in, out); err != nil {
		return err
	}
	neg, err := core.Like(in, in.Depth())
	if err != nil {
		return err
	}
	if err = arith.Negate(in, neg); err != nil {
		return err
	}
	wrk, err := frame(in, in.Depth(), o)
	if err != nil {
		return err
	}
	if err = arith.Inf(neg, wrk, wrk); err != nil {
		return err
	}
	if err = Reconstruct(neg, wrk, withOptions(o)); err != nil {
		return err
	}
	return arith.Negate(wrk, out)
}

// RemoveEdgeParticles copies into out the particles of in that do not
// touch the image edge. Any depth.
func RemoveEdgeParticles(in, out *core.Image, opts ...Option) error {
	o, err := resolve(opts)
	if err != nil {
		return err
	}
	if err = core.CheckPair(in, out); err != nil {
		return err
	}
	wrk, err := frame(in, in.Depth(), o)
	if err != nil {
		return err
	}
	if err = arith.Inf(in, wrk, wrk); err != nil {
		return err
	}
	if err = Reconstruct(in, wrk, withOptions(o)); err != nil {
		return err
	}
	return arith.Diff(in, wrk, out)
}

// frame returns an image of ref's size holding the depth maximum on its
// one-pixel border and 0 inside.
func frame(ref *core.Image, depth core.Depth, o Options) (*core.Image, error) {
	empty, err := core.Like(ref, depth)
	if err != nil {
		return nil, err
	}
	out, err := core.Like(ref, depth)
	if err != nil {
		return nil, err
	}
	err = morpho.Dilate(empty, out, 1,
		morpho.WithSE(grid.Full(o.Grid)), morpho.WithEdge(core.Filled))
	if err != nil {
		return nil, fmt.Errorf("edge frame: %w", err)
	}
	return out, nil
}

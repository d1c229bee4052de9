package geodesy

import (
	"fmt"

	"github.com/katalvlaran/lvmorph/arith"
	"github.com/katalvlaran/lvmorph/core"
)

// MinDynamics marks in the Binary out the minima of in whose dynamic is
// at least h. h is clamped to 1 from below.
func MinDynamics(in, out *core.Image, h uint32, opts ...Option) error {
	wrk, o, err := prepareExtrema(in, out, opts)
	if err != nil {
		return err
	}
	h = max(h, 1)
	if err = fillPits(in, wrk, h, o); err != nil {
		return err
	}
	if err = arith.FloorSub(wrk, in, wrk); err != nil {
		return err
	}
	return arith.Threshold(wrk, out, h, in.Depth().Max())
}

// MaxDynamics marks in the Binary out the maxima of in whose dynamic is
// at least h. h is clamped to 1 from below.
func MaxDynamics(in, out *core.Image, h uint32, opts ...Option) error {
	wrk, o, err := prepareExtrema(in, out, opts)
	if err != nil {
		return err
	}
	h = max(h, 1)
	if err = razePeaks(in, wrk, h, o); err != nil {
		return err
	}
	if err = arith.FloorSub(in, wrk, wrk); err != nil {
		return err
	}
	return arith.Threshold(wrk, out, h, in.Depth().Max())
}

// DeepMinima marks the minima left once every basin of in is filled by h.
func DeepMinima(in, out *core.Image, h uint32, opts ...Option) error {
	wrk, o, err := prepareExtrema(in, out, opts)
	if err != nil {
		return err
	}
	if err = fillPits(in, wrk, h, o); err != nil {
		return err
	}
	return Minima(wrk, out, 1, withOptions(o))
}

// HighMaxima marks the maxima left once every peak of in is lowered by h.
func HighMaxima(in, out *core.Image, h uint32, opts ...Option) error {
	wrk, o, err := prepareExtrema(in, out, opts)
	if err != nil {
		return err
	}
	if err = razePeaks(in, wrk, h, o); err != nil {
		return err
	}
	return Maxima(wrk, out, 1, withOptions(o))
}

// fillPits writes into wrk the dual reconstruction of in+h over in.
func fillPits(in, wrk *core.Image, h uint32, o Options) error {
	if err := arith.CeilingAddConst(in, wrk, h); err != nil {
		return err
	}
	return DualReconstruct(in, wrk, withOptions(o))
}

// razePeaks writes into wrk the reconstruction of in-h under in.
func razePeaks(in, wrk *core.Image, h uint32, o Options) error {
	if err := arith.FloorSubConst(in, wrk, h); err != nil {
		return err
	}
	return Reconstruct(in, wrk, withOptions(o))
}

// MaxPartialBuild rebuilds in from the regional maxima that touch the
// Binary mask. Other peaks are flattened.
func MaxPartialBuild(in, mask, out *core.Image, opts ...Option) error {
	sel, o, err := preparePartial(in, mask, out, opts)
	if err != nil {
		return err
	}
	if err = Maxima(in, sel, 1, withOptions(o)); err != nil {
		return err
	}
	if err = arith.Inf(mask, sel, sel); err != nil {
		return err
	}
	if err = arith.ConvertByMask(sel, out, 0, in.Depth().Max()); err != nil {
		return err
	}
	if err = arith.Inf(in, out, out); err != nil {
		return err
	}
	return Reconstruct(in, out, withOptions(o))
}

// MinPartialBuild rebuilds in from the regional minima that touch the
// Binary mask. Other pits are filled.
func MinPartialBuild(in, mask, out *core.Image, opts ...Option) error {
	sel, o, err := preparePartial(in, mask, out, opts)
	if err != nil {
		return err
	}
	if err = Minima(in, sel, 1, withOptions(o)); err != nil {
		return err
	}
	if err = arith.Inf(mask, sel, sel); err != nil {
		return err
	}
	if err = arith.ConvertByMask(sel, out, in.Depth().Max(), 0); err != nil {
		return err
	}
	if err = arith.Sup(in, out, out); err != nil {
		return err
	}
	return DualReconstruct(in, out, withOptions(o))
}

func preparePartial(in, mask, out *core.Image, opts []Option) (*core.Image, Options, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, o, err
	}
	if err = core.CheckSize(in, mask, out); err != nil {
		return nil, o, err
	}
	if err = core.CheckDepth(in, core.Grey, core.Long); err != nil {
		return nil, o, err
	}
	if err = core.CheckDepth(mask, core.Binary); err != nil {
		return nil, o, err
	}
	if out.Depth() != in.Depth() {
		return nil, o, fmt.Errorf("%w: %s output for %s input", core.ErrBadDepth, out.Depth(), in.Depth())
	}
	if out == in {
		return nil, o, fmt.Errorf("%w: output aliases the input", core.ErrBadParameter)
	}
	sel, err := core.Like(in, core.Binary)
	return sel, o, err
}

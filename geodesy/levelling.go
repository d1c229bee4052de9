package geodesy

import (
	"fmt"

	"github.com/katalvlaran/lvmorph/arith"
	"github.com/katalvlaran/lvmorph/core"
	"github.com/katalvlaran/lvmorph/grid"
	"github.com/katalvlaran/lvmorph/morpho"
)

// SimpleLevelling levels in towards mask. Where in is at or above mask the
// result is the reconstruction of min(in, mask) under in; elsewhere it is
// the dual reconstruction of max(in, mask) over in. Grey or Long images of
// one depth.
func SimpleLevelling(in, mask, out *core.Image, opts ...Option) error {
	o, err := resolve(opts)
	if err != nil {
		return err
	}
	if err = core.CheckSize(in, mask, out); err != nil {
		return err
	}
	if err = core.CheckDepth(in, core.Grey, core.Long); err != nil {
		return err
	}
	if mask.Depth() != in.Depth() || out.Depth() != in.Depth() {
		return fmt.Errorf("%w: %s, %s and %s operands", core.ErrBadDepth, in.Depth(), mask.Depth(), out.Depth())
	}

	low, err := core.Like(in, in.Depth())
	if err != nil {
		return err
	}
	high, err := core.Like(in, in.Depth())
	if err != nil {
		return err
	}
	above, err := core.Like(in, core.Binary)
	if err != nil {
		return err
	}
	if err = arith.Inf(in, mask, low); err != nil {
		return err
	}
	if err = Reconstruct(in, low, withOptions(o)); err != nil {
		return err
	}
	if err = arith.Sup(in, mask, high); err != nil {
		return err
	}
	if err = DualReconstruct(in, high, withOptions(o)); err != nil {
		return err
	}
	if err = arith.SupMask(in, mask, above, false); err != nil {
		return err
	}

	// out = (above ? low : 0) | (above ? 0 : high)
	if err = arith.ConvertByMask(above, out, 0, in.Depth().Max()); err != nil {
		return err
	}
	if err = arith.Inf(out, low, low); err != nil {
		return err
	}
	if err = arith.Negate(out, out); err != nil {
		return err
	}
	if err = arith.Inf(out, high, out); err != nil {
		return err
	}
	return arith.Sup(low, out, out)
}

// StrongLevelling levels in with its own erosion and dilation of size n
// by the full neighborhood of the grid. With erodeFirst the erosion is
// rebuilt under in first, and the dilation is then rebuilt over it;
// otherwise the roles swap.
func StrongLevelling(in, out *core.Image, n int, erodeFirst bool, opts ...Option) error {
	o, err := resolve(opts)
	if err != nil {
		return err
	}
	if err = core.CheckPair(in, out); err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("%w: size %d", core.ErrBadValue, n)
	}
	if out == in {
		return fmt.Errorf("%w: output aliases the input", core.ErrBadParameter)
	}
	full := morpho.WithSE(grid.Full(o.Grid))
	wrk, err := core.Like(in, in.Depth())
	if err != nil {
		return err
	}
	if erodeFirst {
		if err = morpho.Erode(in, wrk, n, full); err != nil {
			return err
		}
		if err = Reconstruct(in, wrk, withOptions(o)); err != nil {
			return err
		}
		if err = morpho.Dilate(in, out, n, full); err != nil {
			return err
		}
		return DualReconstruct(wrk, out, withOptions(o))
	}
	if err = morpho.Dilate(in, wrk, n, full); err != nil {
		return err
	}
	if err = DualReconstruct(in, wrk, withOptions(o)); err != nil {
		return err
	}
	if err = morpho.Erode(in, out, n, full); err != nil {
		return err
	}
	return Reconstruct(wrk, out, withOptions(o))
}

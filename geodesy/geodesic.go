package geodesy

import (
	"fmt"

	"github.com/katalvlaran/lvmorph/arith"
	"github.com/katalvlaran/lvmorph/core"
	"github.com/katalvlaran/lvmorph/morpho"
)

type geoOp func(in, mask, out *core.Image, o Options, n int) error

func geodesic(in, mask, out *core.Image, n int, opts []Option, op geoOp) error {
	o, err := resolve(opts)
	if err != nil {
		return err
	}
	if err = core.CheckSize(in, mask, out); err != nil {
		return err
	}
	if in.Depth() != mask.Depth() || out.Depth() != in.Depth() {
		return fmt.Errorf("%w: %s, %s and %s operands", core.ErrBadDepth, in.Depth(), mask.Depth(), out.Depth())
	}
	if n < 0 {
		return fmt.Errorf("%w: size %d", core.ErrBadValue, n)
	}
	if out == mask {
		return fmt.Errorf("%w: output aliases the mask", core.ErrBadParameter)
	}
	return op(in, mask, out, o, n)
}

// LowerGeodesicDilate dilates in n times by the element, clipping each step
// under mask.
func LowerGeodesicDilate(in, mask, out *core.Image, n int, opts ...Option) error {
	return geodesic(in, mask, out, n, opts, lowerDilate)
}

func lowerDilate(in, mask, out *core.Image, o Options, n int) error {
	if err := arith.Inf(in, mask, out); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := morpho.Dilate(out, out, 1, o.morphoOpts()...); err != nil {
			return err
		}
		if err := arith.Inf(out, mask, out); err != nil {
			return err
		}
	}
	return nil
}

// UpperGeodesicErode erodes in n times by the element, clipping each step
// over mask.
func UpperGeodesicErode(in, mask, out *core.Image, n int, opts ...Option) error {
	return geodesic(in, mask, out, n, opts, upperErode)
}

func upperErode(in, mask, out *core.Image, o Options, n int) error {
	if err := arith.Sup(in, mask, out); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := morpho.Erode(out, out, 1, o.morphoOpts()...); err != nil {
			return err
		}
		if err := arith.Sup(out, mask, out); err != nil {
			return err
		}
	}
	return nil
}

// UpperGeodesicDilate dilates in n times above mask: only the parts of in
// strictly above mask spread, and the result never drops under mask.
func UpperGeodesicDilate(in, mask, out *core.Image, n int, opts ...Option) error {
	return geodesic(in, mask, out, n, opts, upperDilate)
}

func upperDilate(in, mask, out *core.Image, o Options, n int) error {
	if in.Depth() == core.Binary {
		if err := arith.Diff(in, mask, out); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := morpho.Dilate(out, out, 1, o.morphoOpts()...); err != nil {
				return err
			}
		}
		return arith.Sup(out, mask, out)
	}

	sel, err := core.Like(in, core.Binary)
	if err != nil {
		return err
	}
	keep, err := core.Like(in, in.Depth())
	if err != nil {
		return err
	}
	if err = arith.Sup(in, mask, out); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		// Pixels sitting on the mask must not spread.
		if err = arith.SupMask(out, mask, sel, true); err != nil {
			return err
		}
		if err = arith.ConvertByMask(sel, keep, 0, in.Depth().Max()); err != nil {
			return err
		}
		if err = arith.Inf(out, keep, out); err != nil {
			return err
		}
		if err = morpho.Dilate(out, out, 1, o.morphoOpts()...); err != nil {
			return err
		}
		if err = arith.Sup(out, mask, out); err != nil {
			return err
		}
	}
	return nil
}

// LowerGeodesicErode erodes in n times inside mask: the mask boundary does
// not erode, only the parts of in strictly under mask eat into it.
func LowerGeodesicErode(in, mask, out *core.Image, n int, opts ...Option) error {
	return geodesic(in, mask, out, n, opts, lowerErode)
}

func lowerErode(in, mask, out *core.Image, o Options, n int) error {
	if in.Depth() == core.Binary {
		if err := arith.Diff(mask, in, out); err != nil {
			return err
		}
		if err := lowerDilate(out, mask, out, o, n); err != nil {
			return err
		}
		return arith.Diff(mask, out, out)
	}

	sel, err := core.Like(in, core.Binary)
	if err != nil {
		return err
	}
	raise, err := core.Like(in, in.Depth())
	if err != nil {
		return err
	}
	if err = arith.Inf(in, mask, out); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		// Pixels sitting on the mask must not be eaten.
		if err = arith.SupMask(out, mask, sel, false); err != nil {
			return err
		}
		if err = arith.ConvertByMask(sel, raise, 0, in.Depth().Max()); err != nil {
			return err
		}
		if err = arith.Sup(out, raise, out); err != nil {
			return err
		}
		if err = morpho.Erode(out, out, 1, o.morphoOpts()...); err != nil {
			return err
		}
		if err = arith.Inf(out, mask, out); err != nil {
			return err
		}
	}
	return nil
}

// GeodesicDistance adds into out, for every pixel of the Binary in inside
// the Binary mask, the number of lower geodesic erosions it survives plus
// one. out must be Grey or Long and is reset first. Pixels of mask
// components that in covers entirely never erode; they keep the count
// reached when erosion stalls.
func GeodesicDistance(in, mask, out *core.Image, opts ...Option) error {
	o, err := resolve(opts)
	if err != nil {
		return err
	}
	if err = core.CheckSize(in, mask, out); err != nil {
		return err
	}
	if err = core.CheckDepth(in, core.Binary); err != nil {
		return err
	}
	if err = core.CheckDepth(mask, core.Binary); err != nil {
		return err
	}
	if err = core.CheckDepth(out, core.Grey, core.Long); err != nil {
		return err
	}

	wrk, err := core.Like(in, core.Binary)
	if err != nil {
		return err
	}
	if err = arith.Inf(in, mask, wrk); err != nil {
		return err
	}
	out.Reset()
	vol := core.Volume(wrk)
	for vol != 0 {
		if err = arith.Add(out, wrk, out); err != nil {
			return err
		}
		if err = lowerErode(wrk, mask, wrk, o, 1); err != nil {
			return err
		}
		next := core.Volume(wrk)
		if next == vol {
			break
		}
		vol = next
	}
	return nil
}

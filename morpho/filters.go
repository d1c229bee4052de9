package morpho

import (
	"fmt"

	"github.com/katalvlaran/lvmorph/arith"
	"github.com/katalvlaran/lvmorph/core"
	"github.com/katalvlaran/lvmorph/grid"
)

// Half selects the side of a half gradient.
type Half int

const (
	// Intern is in minus its erosion.
	Intern Half = iota
	// Extern is the dilation minus in.
	Extern
)

// Open erodes in then dilates the result by the transposed element.
func Open(in, out *core.Image, n int, opts ...Option) error {
	o, err := prepare(in, out, n, opts)
	if err != nil {
		return err
	}
	if err = Erode(in, out, n, opts...); err != nil {
		return err
	}
	return Dilate(out, out, n, with(opts, WithSE(o.SE.Transpose()))...)
}

// Close dilates in then erodes the result by the transposed element.
func Close(in, out *core.Image, n int, opts ...Option) error {
	o, err := prepare(in, out, n, opts)
	if err != nil {
		return err
	}
	if err = Dilate(in, out, n, opts...); err != nil {
		return err
	}
	return Erode(out, out, n, with(opts, WithSE(o.SE.Transpose()))...)
}

// Gradient writes dilation minus erosion of size n.
func Gradient(in, out *core.Image, n int, opts ...Option) error {
	if _, err := prepare(in, out, n, opts); err != nil {
		return err
	}
	wrk, err := core.Like(in, in.Depth())
	if err != nil {
		return err
	}
	if err = Erode(in, wrk, n, opts...); err != nil {
		return err
	}
	if err = Dilate(in, out, n, opts...); err != nil {
		return err
	}
	return arith.Sub(out, wrk, out)
}

// HalfGradient writes in minus its erosion (Intern) or the dilation minus
// in (Extern).
func HalfGradient(in, out *core.Image, side Half, n int, opts ...Option) error {
	if _, err := prepare(in, out, n, opts); err != nil {
		return err
	}
	wrk, err := core.Like(in, in.Depth())
	if err != nil {
		return err
	}
	if side == Extern {
		if err = Dilate(in, wrk, n, opts...); err != nil {
			return err
		}
		return arith.Sub(wrk, in, out)
	}
	if err = Erode(in, wrk, n, opts...); err != nil {
		return err
	}
	return arith.Sub(in, wrk, out)
}

// WhiteTopHat writes in minus its opening.
func WhiteTopHat(in, out *core.Image, n int, opts ...Option) error {
	if _, err := prepare(in, out, n, opts); err != nil {
		return err
	}
	wrk, err := core.Like(in, in.Depth())
	if err != nil {
		return err
	}
	if err = Open(in, wrk, n, opts...); err != nil {
		return err
	}
	return arith.Sub(in, wrk, out)
}

// BlackTopHat writes the closing of in minus in.
func BlackTopHat(in, out *core.Image, n int, opts ...Option) error {
	if _, err := prepare(in, out, n, opts); err != nil {
		return err
	}
	wrk, err := core.Like(in, in.Depth())
	if err != nil {
		return err
	}
	if err = Close(in, wrk, n, opts...); err != nil {
		return err
	}
	return arith.Sub(wrk, in, out)
}

// AlternateFilter writes an opening then a closing of size n (a closing
// then an opening when openFirst is false).
func AlternateFilter(in, out *core.Image, n int, openFirst bool, opts ...Option) error {
	if _, err := prepare(in, out, n, opts); err != nil {
		return err
	}
	return alternate(in, out, n, openFirst, opts)
}

func alternate(in, out *core.Image, n int, openFirst bool, opts []Option) error {
	first, second := Open, Close
	if !openFirst {
		first, second = Close, Open
	}
	if err := first(in, out, n, opts...); err != nil {
		return err
	}
	return second(out, out, n, opts...)
}

// FullAlternateFilter chains alternate filters of sizes 1 to n.
func FullAlternateFilter(in, out *core.Image, n int, openFirst bool, opts ...Option) error {
	if _, err := prepare(in, out, n, opts); err != nil {
		return err
	}
	if err := core.Copy(in, out); err != nil {
		return err
	}
	for i := 1; i <= n; i++ {
		if err := alternate(out, out, i, openFirst, opts); err != nil {
			return err
		}
	}
	return nil
}

// AutoMedian writes the median of in and its two alternate filters of
// size n.
func AutoMedian(in, out *core.Image, n int, opts ...Option) error {
	if _, err := prepare(in, out, n, opts); err != nil {
		return err
	}
	oc, err := core.Like(in, in.Depth())
	if err != nil {
		return err
	}
	co, err := core.Like(in, in.Depth())
	if err != nil {
		return err
	}
	wrk, err := core.Like(in, in.Depth())
	if err != nil {
		return err
	}
	if err = alternate(in, oc, n, true, opts); err != nil {
		return err
	}
	if err = alternate(in, co, n, false, opts); err != nil {
		return err
	}
	if err = arith.Sup(oc, co, wrk); err != nil {
		return err
	}
	if err = arith.Inf(in, wrk, out); err != nil {
		return err
	}
	if err = arith.Inf(oc, co, wrk); err != nil {
		return err
	}
	return arith.Sup(out, wrk, out)
}

// RegularisedGradient keeps the contours of in thinner than n: the white
// top hat of the gradient, eroded n-1 times. The element is the full
// neighborhood of the grid. n must be at least 1.
func RegularisedGradient(in, out *core.Image, n int, opts ...Option) error {
	o, err := prepare(in, out, n, opts)
	if err != nil {
		return err
	}
	if n < 1 {
		return fmt.Errorf("%w: regularised gradient size %d", core.ErrBadValue, n)
	}
	full := with(opts, WithSE(grid.Full(o.Grid)))
	wrk, err := core.Like(in, in.Depth())
	if err != nil {
		return err
	}
	if err = Gradient(in, wrk, n, full...); err != nil {
		return err
	}
	if err = WhiteTopHat(wrk, wrk, n, full...); err != nil {
		return err
	}
	return Erode(wrk, out, n-1, full...)
}

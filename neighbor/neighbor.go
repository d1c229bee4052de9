package neighbor

import (
	"fmt"

	"github.com/katalvlaran/lvmorph/core"
)

// mode selects how a neighbor value is folded into the output pixel.
type mode int

const (
	modeSup mode = iota
	modeInf
	modeDiff
	modeCopy
)

func applyPlane[T core.Pixel](m mode, in, io []T, w, h int, off offsetFunc, edge T) {
	var visit func(i int, nb T)
	switch m {
	case modeSup:
		visit = func(i int, nb T) {
			if nb > io[i] {
				io[i] = nb
			}
		}
	case modeInf:
		visit = func(i int, nb T) {
			if nb < io[i] {
				io[i] = nb
			}
		}
	case modeDiff:
		visit = func(i int, nb T) {
			if in[i] > nb {
				io[i] = in[i]
			} else {
				io[i] = 0
			}
		}
	default:
		visit = func(i int, nb T) { io[i] = nb }
	}
	sweep(in, w, h, off, edge, visit)
}

// run applies m once. An aliased in/inout pair reads from a snapshot.
func run(m mode, in, inout *core.Image, off offsetFunc, edge uint32) {
	src := in
	if in == inout {
		src = in.Clone()
	}
	w, h := inout.Size()
	if inout.Depth() == core.Long {
		applyPlane(m, src.Pix32(), inout.Pix32(), w, h, off, edge)
		return
	}
	applyPlane(m, src.Pix8(), inout.Pix8(), w, h, off, uint8(edge))
}

// repeat applies m count times in place.
func repeat(m mode, inout *core.Image, off offsetFunc, edge uint32, count int) {
	if count == 0 {
		return
	}
	work := inout.Clone()
	w, h := inout.Size()
	for k := 0; k < count; k++ {
		if k > 0 {
			copy(work.Pix8(), inout.Pix8())
			copy(work.Pix32(), inout.Pix32())
		}
		if inout.Depth() == core.Long {
			applyPlane(m, work.Pix32(), inout.Pix32(), w, h, off, edge)
		} else {
			applyPlane(m, work.Pix8(), inout.Pix8(), w, h, off, uint8(edge))
		}
	}
}

func checkCount(name string, v int) error {
	if v < 0 {
		return fmt.Errorf("%w: negative %s %d", core.ErrBadValue, name, v)
	}
	return nil
}

// SupNeighbor sets inout[p] = max(inout[p], in[p+off(d)]). Default edge: Empty.
func SupNeighbor(in, inout *core.Image, d int, opts ...Option) error {
	o, err := prepare(in, inout, d, core.Empty, opts)
	if err != nil {
		return err
	}
	run(modeSup, in, inout, step(o.Grid, d), o.Edge.Value(in.Depth()))
	return nil
}

// InfNeighbor sets inout[p] = min(inout[p], in[p+off(d)]). Default edge: Filled.
func InfNeighbor(in, inout *core.Image, d int, opts ...Option) error {
	o, err := prepare(in, inout, d, core.Filled, opts)
	if err != nil {
		return err
	}
	run(modeInf, in, inout, step(o.Grid, d), o.Edge.Value(in.Depth()))
	return nil
}

// SupNeighborRepeat applies the one-step supremum count times in place.
func SupNeighborRepeat(inout *core.Image, d, count int, opts ...Option) error {
	o, err := prepare(inout, inout, d, core.Empty, opts)
	if err != nil {
		return err
	}
	if err = checkCount("count", count); err != nil {
		return err
	}
	repeat(modeSup, inout, step(o.Grid, d), o.Edge.Value(inout.Depth()), count)
	return nil
}

// InfNeighborRepeat applies the one-step infimum count times in place.
func InfNeighborRepeat(inout *core.Image, d, count int, opts ...Option) error {
	o, err := prepare(inout, inout, d, core.Filled, opts)
	if err != nil {
		return err
	}
	if err = checkCount("count", count); err != nil {
		return err
	}
	repeat(modeInf, inout, step(o.Grid, d), o.Edge.Value(inout.Depth()), count)
	return nil
}

// DiffNeighbor keeps in[p] where it is strictly greater than its neighbor in
// direction d and writes 0 elsewhere. Binary and Grey only. Default edge: Empty.
func DiffNeighbor(in, inout *core.Image, d int, opts ...Option) error {
	o, err := prepare(in, inout, d, core.Empty, opts)
	if err != nil {
		return err
	}
	if err = core.CheckDepth(in, core.Binary, core.Grey); err != nil {
		return err
	}
	run(modeDiff, in, inout, step(o.Grid, d), o.Edge.Value(in.Depth()))
	return nil
}

// SupFarNeighbor sets inout[p] = max(inout[p], q) where q is the pixel amp
// steps away from p in direction d. Default edge: Empty.
func SupFarNeighbor(in, inout *core.Image, d, amp int, opts ...Option) error {
	o, err := prepare(in, inout, d, core.Empty, opts)
	if err != nil {
		return err
	}
	if err = checkCount("amplitude", amp); err != nil {
		return err
	}
	run(modeSup, in, inout, far(o.Grid, d, amp), o.Edge.Value(in.Depth()))
	return nil
}

// InfFarNeighbor is the minimum dual of SupFarNeighbor. Default edge: Filled.
func InfFarNeighbor(in, inout *core.Image, d, amp int, opts ...Option) error {
	o, err := prepare(in, inout, d, core.Filled, opts)
	if err != nil {
		return err
	}
	if err = checkCount("amplitude", amp); err != nil {
		return err
	}
	run(modeInf, in, inout, far(o.Grid, d, amp), o.Edge.Value(in.Depth()))
	return nil
}

// Shift translates in by amp steps in direction d into out. Pixels with
// no source take fill (truncated to the depth). amp 0 copies.
func Shift(in, out *core.Image, d, amp int, fill uint32, opts ...Option) error {
	o, err := prepare(in, out, d, core.Empty, opts)
	if err != nil {
		return err
	}
	if err = checkCount("amplitude", amp); err != nil {
		return err
	}
	src := o.Grid.Transpose(d)
	run(modeCopy, in, out, far(o.Grid, src, amp), fillValue(in.Depth(), fill))
	return nil
}

// ShiftVector translates in by (dx, dy) pixels into out, ignoring the grid.
// Pixels with no source take fill.
func ShiftVector(in, out *core.Image, dx, dy int, fill uint32) error {
	if err := core.CheckPair(in, out); err != nil {
		return err
	}
	run(modeCopy, in, out, vector(dx, dy), fillValue(in.Depth(), fill))
	return nil
}

func fillValue(d core.Depth, v uint32) uint32 {
	if d == core.Binary && v != 0 {
		return 1
	}
	return v & d.Max()
}

// SupVector sets inout[p] = max(inout[p], in[p-(dx,dy)]), folding in the
// image translated by (dx, dy). The grid plays no part. Default edge: Empty.
func SupVector(in, inout *core.Image, dx, dy int, opts ...Option) error {
	o, err := prepareVector(in, inout, core.Empty, opts)
	if err != nil {
		return err
	}
	run(modeSup, in, inout, vector(dx, dy), o.Edge.Value(in.Depth()))
	return nil
}

// InfVector is the minimum dual of SupVector. Default edge: Filled.
func InfVector(in, inout *core.Image, dx, dy int, opts ...Option) error {
	o, err := prepareVector(in, inout, core.Filled, opts)
	if err != nil {
		return err
	}
	run(modeInf, in, inout, vector(dx, dy), o.Edge.Value(in.Depth()))
	return nil
}

func prepareVector(in, inout *core.Image, def core.Edge, opts []Option) (Options, error) {
	o, err := resolve(def, opts)
	if err != nil {
		return o, err
	}
	return o, core.CheckPair(in, inout)
}

// vector reads the source pixel a translation by (dx, dy) brings onto p.
func vector(dx, dy int) offsetFunc {
	return func(int) (int, int) { return -dx, -dy }
}

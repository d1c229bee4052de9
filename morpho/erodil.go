package morpho

import (
	"github.com/katalvlaran/lvmorph/core"
	"github.com/katalvlaran/lvmorph/grid"
	"github.com/katalvlaran/lvmorph/neighbor"
)

// Dilate writes the dilation of in by the structuring element, repeated n
// times, into out. Default edge: Empty.
func Dilate(in, out *core.Image, n int, opts ...Option) error {
	o, err := prepare(in, out, n, opts)
	if err != nil {
		return err
	}
	return morph(in, out, n, o.SE, o.edgeOr(core.Empty), true)
}

// Erode writes the erosion of in by the structuring element, repeated n
// times, into out. Default edge: Filled.
func Erode(in, out *core.Image, n int, opts ...Option) error {
	o, err := prepare(in, out, n, opts)
	if err != nil {
		return err
	}
	return morph(in, out, n, o.SE, o.edgeOr(core.Filled), false)
}

func morph(in, out *core.Image, n int, se grid.SE, edge core.Edge, sup bool) error {
	if err := core.Copy(in, out); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	work, err := core.Like(out, out.Depth())
	if err != nil {
		return err
	}
	nopts := []neighbor.Option{neighbor.WithGrid(se.Grid()), neighbor.WithEdge(edge)}
	dirs := se.Neighbors()
	for i := 0; i < n; i++ {
		copy(work.Pix8(), out.Pix8())
		copy(work.Pix32(), out.Pix32())
		if !se.HasCenter() {
			if sup {
				out.Reset()
			} else {
				out.Fill(out.Depth().Max())
			}
		}
		for _, d := range dirs {
			if sup {
				err = neighbor.SupNeighbor(work, out, d, nopts...)
			} else {
				err = neighbor.InfNeighbor(work, out, d, nopts...)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// LinearDilate dilates in by a segment of n steps along direction d.
// The grid comes from WithGrid or WithSE. Default edge: Empty.
func LinearDilate(in, out *core.Image, d, n int, opts ...Option) error {
	o, err := prepare(in, out, n, opts)
	if err != nil {
		return err
	}
	if err = o.Grid.Validate(d); err != nil {
		return err
	}
	if err = core.Copy(in, out); err != nil {
		return err
	}
	return neighbor.SupNeighborRepeat(out, d, n, o.neighborOpts(o.edgeOr(core.Empty))...)
}

// LinearErode erodes in by a segment of n steps along direction d.
// Default edge: Filled.
func LinearErode(in, out *core.Image, d, n int, opts ...Option) error {
	o, err := prepare(in, out, n, opts)
	if err != nil {
		return err
	}
	if err = o.Grid.Validate(d); err != nil {
		return err
	}
	if err = core.Copy(in, out); err != nil {
		return err
	}
	return neighbor.InfNeighborRepeat(out, d, n, o.neighborOpts(o.edgeOr(core.Filled))...)
}

// DoublePointDilate dilates in by the pair {origin, n steps along d}.
// Default edge: Empty.
func DoublePointDilate(in, out *core.Image, d, n int, opts ...Option) error {
	o, err := prepare(in, out, n, opts)
	if err != nil {
		return err
	}
	if err = core.Copy(in, out); err != nil {
		return err
	}
	return neighbor.SupFarNeighbor(out, out, d, n, o.neighborOpts(o.edgeOr(core.Empty))...)
}

// DoublePointErode erodes in by the pair {origin, n steps along d}.
// Default edge: Filled.
func DoublePointErode(in, out *core.Image, d, n int, opts ...Option) error {
	o, err := prepare(in, out, n, opts)
	if err != nil {
		return err
	}
	if err = core.Copy(in, out); err != nil {
		return err
	}
	return neighbor.InfFarNeighbor(out, out, d, n, o.neighborOpts(o.edgeOr(core.Filled))...)
}

// ConjugateHexagonDilate dilates by a conjugate hexagon of the given size:
// alternating tripod and transposed tripod dilations. Hexagonal grid only.
func ConjugateHexagonDilate(in, out *core.Image, size int, opts ...Option) error {
	return conjugate(in, out, size, true, opts)
}

// ConjugateHexagonErode is the erosion counterpart of ConjugateHexagonDilate.
func ConjugateHexagonErode(in, out *core.Image, size int, opts ...Option) error {
	return conjugate(in, out, size, false, opts)
}

func conjugate(in, out *core.Image, size int, sup bool, opts []Option) error {
	o, err := prepare(in, out, size, opts)
	if err != nil {
		return err
	}
	edge := o.edgeOr(core.Filled)
	if sup {
		edge = o.edgeOr(core.Empty)
	}
	if err = core.Copy(in, out); err != nil {
		return err
	}
	tr := grid.Tripod.Transpose()
	for i := 0; i < size; i++ {
		if err = morph(out, out, 1, grid.Tripod, edge, sup); err != nil {
			return err
		}
		if err = morph(out, out, 1, tr, edge, sup); err != nil {
			return err
		}
	}
	return nil
}

// dodecagonSplit divides size between hexagon and conjugate hexagon steps
// so the resulting dodecagon is as isotropic as possible.
func dodecagonSplit(size int) (hex, conj int) {
	hex = int(0.4641 * float64(size))
	if hex%2 != size%2 {
		hex++
	}
	return hex, (size - hex) / 2
}

// DodecagonDilate dilates by a dodecagon of the given size. Hexagonal grid.
func DodecagonDilate(in, out *core.Image, size int, opts ...Option) error {
	hex, conj := dodecagonSplit(size)
	if err := ConjugateHexagonDilate(in, out, conj, opts...); err != nil {
		return err
	}
	return Dilate(out, out, hex, with(opts, WithSE(grid.Hexagon))...)
}

// DodecagonErode erodes by a dodecagon of the given size. Hexagonal grid.
func DodecagonErode(in, out *core.Image, size int, opts ...Option) error {
	hex, conj := dodecagonSplit(size)
	if err := ConjugateHexagonErode(in, out, conj, opts...); err != nil {
		return err
	}
	return Erode(out, out, hex, with(opts, WithSE(grid.Hexagon))...)
}

func octagonSplit(size int) (sq, diamond int) {
	sq = int(0.41421*float64(size) + 0.5)
	return sq, size - sq
}

// OctagonDilate dilates by an octagon of the given size: square then
// diamond steps. Square grid.
func OctagonDilate(in, out *core.Image, size int, opts ...Option) error {
	sq, dm := octagonSplit(size)
	if err := Dilate(in, out, sq, with(opts, WithSE(grid.Square3x3))...); err != nil {
		return err
	}
	return Dilate(out, out, dm, with(opts, WithSE(grid.Diamond))...)
}

// OctagonErode erodes by an octagon of the given size. Square grid.
func OctagonErode(in, out *core.Image, size int, opts ...Option) error {
	sq, dm := octagonSplit(size)
	if err := Erode(in, out, sq, with(opts, WithSE(grid.Square3x3))...); err != nil {
		return err
	}
	return Erode(out, out, dm, with(opts, WithSE(grid.Diamond))...)
}

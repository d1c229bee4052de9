package watershed

import (
	"github.com/katalvlaran/lvmorph/arith"
	"github.com/katalvlaran/lvmorph/core"
	"github.com/katalvlaran/lvmorph/geodesy"
	"github.com/katalvlaran/lvmorph/label"
	"github.com/katalvlaran/lvmorph/morpho"
)

// MarkerControlled floods the Grey in from the components of the Binary
// markers and writes into the Grey out the watershed line valued by in.
// Pixels off the line are 0.
func MarkerControlled(in, markers, out *core.Image, opts ...Option) error {
	o, err := resolve(opts)
	if err != nil {
		return err
	}
	if err = core.CheckSize(in, markers, out); err != nil {
		return err
	}
	if err = core.CheckDepth(in, core.Grey); err != nil {
		return err
	}
	if err = core.CheckDepth(out, core.Grey); err != nil {
		return err
	}
	mark, err := core.Like(in, core.Long)
	if err != nil {
		return err
	}
	if _, err = label.Label(markers, mark, o.labelOpts()...); err != nil {
		return err
	}
	if err = Segment(in, mark, opts...); err != nil {
		return err
	}
	return valueLine(mark, in, out)
}

// valueLine writes min(line byte, in) into out.
func valueLine(mark, in, out *core.Image) error {
	lines, err := core.Like(in, core.Grey)
	if err != nil {
		return err
	}
	if err = arith.CopyBytePlane(mark, lines, 3); err != nil {
		return err
	}
	return arith.Inf(lines, in, out)
}

// Valued writes into out the watershed line of the Grey in flooded from
// its own regional minima, each line pixel keeping its value in in.
func Valued(in, out *core.Image, opts ...Option) error {
	o, err := resolve(opts)
	if err != nil {
		return err
	}
	minima, err := core.Like(in, core.Binary)
	if err != nil {
		return err
	}
	if err = geodesy.Minima(in, minima, 1, o.geodesyOpts()...); err != nil {
		return err
	}
	return MarkerControlled(in, minima, out, opts...)
}

// FastSKIZ writes into the Binary out the zones of influence of the
// particles of the Binary in. The skeleton lines separating the zones
// are 0.
func FastSKIZ(in, out *core.Image, opts ...Option) error {
	if err := core.CheckDepth(in, core.Binary); err != nil {
		return err
	}
	if err := core.CheckDepth(out, core.Binary); err != nil {
		return err
	}
	relief, err := core.Like(in, core.Grey)
	if err != nil {
		return err
	}
	if err = arith.ConvertByMask(in, relief, 1, 0); err != nil {
		return err
	}
	if err = MarkerControlled(relief, in, relief, opts...); err != nil {
		return err
	}
	return arith.Threshold(relief, out, 0, 0)
}

// GeodesicSKIZ is FastSKIZ inside the Binary mask: zones spread only
// through the mask components that hold particles of in.
func GeodesicSKIZ(in, mask, out *core.Image, opts ...Option) error {
	o, err := resolve(opts)
	if err != nil {
		return err
	}
	if err = core.CheckSize(in, mask, out); err != nil {
		return err
	}
	for _, img := range []*core.Image{in, mask, out} {
		if err = core.CheckDepth(img, core.Binary); err != nil {
			return err
		}
	}
	reached := in.Clone()
	if err = geodesy.Build(mask, reached, o.geodesyOpts()...); err != nil {
		return err
	}
	relief, err := core.Like(in, core.Grey)
	if err != nil {
		return err
	}
	if err = arith.ConvertByMask(reached, relief, 2, 1); err != nil {
		return err
	}
	if err = arith.Sub(relief, in, relief); err != nil {
		return err
	}
	if err = MarkerControlled(relief, in, relief, opts...); err != nil {
		return err
	}
	if err = arith.Threshold(relief, out, 0, 0); err != nil {
		return err
	}
	return arith.Inf(out, reached, out)
}

// Mosaic writes into out the tiles of the watershed of the gradient of
// the Grey in. Each tile takes the largest value of in inside the
// gradient minimum it grew from. wts receives 255 on the watershed line
// and 0 elsewhere.
func Mosaic(in, out, wts *core.Image, opts ...Option) error {
	o, err := resolve(opts)
	if err != nil {
		return err
	}
	if err = core.CheckSize(in, out, wts); err != nil {
		return err
	}
	for _, img := range []*core.Image{in, out, wts} {
		if err = core.CheckDepth(img, core.Grey); err != nil {
			return err
		}
	}

	grad, err := core.Like(in, core.Grey)
	if err != nil {
		return err
	}
	if err = morpho.Gradient(in, grad, 1, o.morphoOpts()...); err != nil {
		return err
	}
	minima, err := core.Like(in, core.Binary)
	if err != nil {
		return err
	}
	if err = geodesy.Minima(grad, minima, 1, o.geodesyOpts()...); err != nil {
		return err
	}

	// Tile values: the maximum of in over each minimum, plus one so that
	// a zero tile still labels its minimum.
	mask, err := core.Like(in, core.Grey)
	if err != nil {
		return err
	}
	if err = arith.Convert(minima, mask); err != nil {
		return err
	}
	tiles := in.Clone()
	if err = geodesy.Reconstruct(mask, tiles, o.geodesyOpts()...); err != nil {
		return err
	}
	mark, err := core.Like(in, core.Long)
	if err != nil {
		return err
	}
	if err = arith.Add(mark, minima, mark); err != nil {
		return err
	}
	if err = arith.Add(mark, tiles, mark); err != nil {
		return err
	}

	if err = Segment(grad, mark, opts...); err != nil {
		return err
	}
	if err = arith.CopyBytePlane(mark, wts, 3); err != nil {
		return err
	}
	if err = arith.SubConst(mark, mark, 1); err != nil {
		return err
	}
	return arith.CopyBytePlane(mark, out, 0)
}

// MosaicGradient writes into out the mosaic gradient of the Grey in: 0
// inside the mosaic tiles, and on the watershed line the difference
// between the largest and the smallest adjacent tile.
func MosaicGradient(in, out *core.Image, opts ...Option) error {
	o, err := resolve(opts)
	if err != nil {
		return err
	}
	if err = core.CheckSize(in, out); err != nil {
		return err
	}
	if err = core.CheckDepth(out, core.Grey); err != nil {
		return err
	}
	tiles, err := core.Like(in, core.Grey)
	if err != nil {
		return err
	}
	wts, err := core.Like(in, core.Grey)
	if err != nil {
		return err
	}
	if err = Mosaic(in, tiles, wts, opts...); err != nil {
		return err
	}

	// upper carries the tiles with 0 on the line, lower their negation.
	upper, err := core.Like(in, core.Grey)
	if err != nil {
		return err
	}
	if err = arith.Sub(tiles, wts, upper); err != nil {
		return err
	}
	lower, err := core.Like(in, core.Grey)
	if err != nil {
		return err
	}
	if err = arith.Sup(tiles, wts, lower); err != nil {
		return err
	}
	if err = arith.Negate(lower, lower); err != nil {
		return err
	}

	line, err := core.Like(in, core.Binary)
	if err != nil {
		return err
	}
	if err = arith.Threshold(wts, line, 1, 255); err != nil {
		return err
	}
	junction := junctions(line, o)
	reach, err := core.Like(in, core.Grey)
	if err != nil {
		return err
	}
	if err = arith.ConvertByMask(junction, reach, 0, 255); err != nil {
		return err
	}

	mopts := o.morphoOpts()
	supUp, err := core.Like(in, core.Grey)
	if err != nil {
		return err
	}
	supLow, err := core.Like(in, core.Grey)
	if err != nil {
		return err
	}
	if err = morpho.Dilate(upper, supUp, 1, mopts...); err != nil {
		return err
	}
	if err = morpho.Dilate(lower, supLow, 1, mopts...); err != nil {
		return err
	}
	// Junctions sit farther from the tiles than plain line pixels.
	for !core.IsEmpty(reach) {
		for _, step := range []struct{ src, acc *core.Image }{{upper, supUp}, {lower, supLow}} {
			if err = morpho.Dilate(step.src, step.src, 2, mopts...); err != nil {
				return err
			}
			if err = arith.Inf(step.src, reach, step.src); err != nil {
				return err
			}
			if err = arith.Sup(step.src, step.acc, step.acc); err != nil {
				return err
			}
		}
		if err = morpho.Erode(reach, reach, 2, mopts...); err != nil {
			return err
		}
	}
	if err = arith.Negate(supLow, supLow); err != nil {
		return err
	}
	return arith.Sub(supUp, supLow, out)
}

// junctions marks the line pixels with at least three line neighbors.
func junctions(line *core.Image, o Options) *core.Image {
	out := core.MustCreate(line.Width(), line.Height(), core.Binary)
	src, dst := line.Pix8(), out.Pix8()
	w, h := line.Size()
	for i, v := range src {
		if v == 0 {
			continue
		}
		x, y := i%w, i/w
		count := 0
		for d := 1; d <= o.Grid.Neighbors(); d++ {
			dx, dy := o.Grid.Offset(d, y)
			nx, ny := x+dx, y+dy
			if nx >= 0 && nx < w && ny >= 0 && ny < h && src[ny*w+nx] != 0 {
				count++
			}
		}
		if count >= 3 {
			dst[i] = 1
		}
	}
	return out
}

package neighbor

import (
	"github.com/katalvlaran/lvmorph/core"
	"github.com/katalvlaran/lvmorph/grid"
)

// BuildNeighbor propagates inout along direction d under mask:
//
//	inout[p] = min(mask[p], max(inout[p], inout[q]))
//
// where q is the pixel whose neighbor in direction d is p. Pixels are
// visited in propagation order so a value can travel across the whole
// image in one call. Sources outside the image read 0. It returns the
// volume of inout afterwards.
func BuildNeighbor(mask, inout *core.Image, d int, opts ...Option) (uint64, error) {
	o, err := prepare(mask, inout, d, core.Empty, opts)
	if err != nil {
		return 0, err
	}
	propagate(mask, inout, o.Grid, d, false)
	return core.Volume(inout), nil
}

// DualBuildNeighbor is the dual of BuildNeighbor:
//
//	inout[p] = max(mask[p], min(inout[p], inout[q]))
//
// Sources outside the image read the depth maximum.
func DualBuildNeighbor(mask, inout *core.Image, d int, opts ...Option) (uint64, error) {
	o, err := prepare(mask, inout, d, core.Filled, opts)
	if err != nil {
		return 0, err
	}
	propagate(mask, inout, o.Grid, d, true)
	return core.Volume(inout), nil
}

func propagate(mask, inout *core.Image, g grid.Grid, d int, dual bool) {
	w, h := inout.Size()
	src := step(g, g.Transpose(d))
	var edge uint32
	if dual {
		edge = inout.Depth().Max()
	}
	if inout.Depth() == core.Long {
		buildPlane(mask.Pix32(), inout.Pix32(), w, h, src, edge, dual)
		return
	}
	buildPlane(mask.Pix8(), inout.Pix8(), w, h, src, uint8(edge), dual)
}

// buildPlane walks rows and columns so that every source pixel is final
// before it is read.
func buildPlane[T core.Pixel](mask, io []T, w, h int, src offsetFunc, edge T, dual bool) {
	sdx, sdy := src(0)
	for k := 0; k < h; k++ {
		y := k
		if sdy > 0 {
			y = h - 1 - k
		}
		dx, dy := src(y)
		sy := y + dy
		inRows := sy >= 0 && sy < h
		for j := 0; j < w; j++ {
			x := j
			if sdy == 0 && sdx > 0 {
				x = w - 1 - j
			}
			s := edge
			if sx := x + dx; inRows && sx >= 0 && sx < w {
				s = io[sy*w+sx]
			}
			i := y*w + x
			if dual {
				io[i] = max(min(io[i], s), mask[i])
			} else {
				io[i] = min(max(io[i], s), mask[i])
			}
		}
	}
}

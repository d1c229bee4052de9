package watershed

import (
	"github.com/katalvlaran/lvmorph/arith"
	"github.com/katalvlaran/lvmorph/core"
	"github.com/katalvlaran/lvmorph/hqueue"
)

// stride is the relief advance between two Grey windows. The last level
// of a window is served again as level 0 of the next one, where the
// labelled pixels are reseeded.
const stride = hqueue.Levels - 2

// Segment32 is Segment for a Long relief. WithMaxLevel bounds the flood
// in relief units; the default floods everything.
func Segment32(in, marker *core.Image, opts ...Option) error {
	return sliced(in, marker, opts, true)
}

// Basins32 is Basins for a Long relief.
func Basins32(in, marker *core.Image, opts ...Option) error {
	return sliced(in, marker, opts, false)
}

func sliced(in, marker *core.Image, opts []Option, lines bool) error {
	o, err := resolve(opts)
	if err != nil {
		return err
	}
	if err = checkPair(in, marker, core.Long); err != nil {
		return err
	}

	lo, hi := core.Range(in)
	top := uint64(hi) + 1
	high := top
	if o.MaxLevel >= 0 {
		high = min(uint64(o.MaxLevel), top)
	}

	w, h := in.Size()
	rel := core.MustCreate(w, h, core.Long)
	clip := core.MustCreate(w, h, core.Long)
	ceil := core.MustCreate(w, h, core.Long)
	ceil.Fill(hqueue.Levels - 1)
	window := core.MustCreate(w, h, core.Grey)

	if err = arith.FloorSubConst(in, rel, lo); err != nil {
		return err
	}
	for cur := uint64(lo); ; cur += stride {
		if err = arith.Inf(rel, ceil, clip); err != nil {
			return err
		}
		if err = arith.CopyBytePlane(clip, window, 0); err != nil {
			return err
		}

		level := hqueue.Levels - 1
		if rem := high - min(cur, high); rem < hqueue.Levels {
			level = int(rem)
			if high == top {
				level = hqueue.Levels
			}
		}
		f := newFlooder(window, marker, o)
		f.run(level, lines)
		if level != hqueue.Levels-1 {
			return nil
		}

		if err = arith.FloorSubConst(rel, rel, stride); err != nil {
			return err
		}
		if lines {
			clearLines(marker)
		}
	}
}

// clearLines resets line pixels so the next window floods them again.
func clearLines(marker *core.Image) {
	pix := marker.Pix32()
	for i, v := range pix {
		if v&StatusMask == Line {
			pix[i] = 0
		}
	}
}

package geodesy

import (
	"fmt"

	"github.com/katalvlaran/lvmorph/arith"
	"github.com/katalvlaran/lvmorph/core"
	"github.com/katalvlaran/lvmorph/hqueue"
)

// Flood status of a pixel.
const (
	fresh  uint8 = iota // seeded only
	queued              // queued by a neighbor, value settled
	final               // served
)

// HierarBuild reconstructs the Grey marker inout under the Grey mask in a
// single hierarchical flood. The result equals Build.
func HierarBuild(mask, inout *core.Image, opts ...Option) error {
	o, err := prepareGrey(mask, inout, opts)
	if err != nil {
		return err
	}
	flood(mask.Pix8(), inout.Pix8(), inout.Width(), inout.Height(), o, false)
	return nil
}

// HierarDualBuild is the dual of HierarBuild. The result equals DualBuild.
func HierarDualBuild(mask, inout *core.Image, opts ...Option) error {
	o, err := prepareGrey(mask, inout, opts)
	if err != nil {
		return err
	}
	flood(mask.Pix8(), inout.Pix8(), inout.Width(), inout.Height(), o, true)
	return nil
}

func prepareGrey(mask, inout *core.Image, opts []Option) (Options, error) {
	o, err := resolve(opts)
	if err != nil {
		return o, err
	}
	if err = core.CheckSize(mask, inout); err != nil {
		return o, err
	}
	if mask.Depth() != core.Grey || inout.Depth() != core.Grey {
		return o, fmt.Errorf("%w: hierarchical build needs grey images, got %s and %s",
			core.ErrBadDepth, mask.Depth(), inout.Depth())
	}
	return o, nil
}

// flood runs the hierarchical reconstruction in place on io.
func flood(mask, io []uint8, w, h int, o Options, dual bool) {
	order := hqueue.Descending
	if dual {
		order = hqueue.Ascending
	}
	q := hqueue.New(order)
	q.OnDrain(o.OnLevel)

	for i := range io {
		if dual {
			io[i] = max(io[i], mask[i])
		} else {
			io[i] = min(io[i], mask[i])
		}
		q.Push(int(io[i]), i)
	}

	status := make([]uint8, len(io))
	n := o.Grid.Neighbors()
	for {
		p, _, ok := q.Pop()
		if !ok {
			break
		}
		if status[p] == final {
			continue
		}
		status[p] = final

		v := io[p]
		x, y := p%w, p/w
		for d := 1; d <= n; d++ {
			dx, dy := o.Grid.Offset(d, y)
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			nb := ny*w + nx
			if status[nb] != fresh {
				continue
			}
			if dual {
				io[nb] = max(v, mask[nb])
			} else {
				io[nb] = min(v, mask[nb])
			}
			q.Push(int(io[nb]), nb)
			status[nb] = queued
		}
	}
	q.Finish()
}

// HierarBuild32 reconstructs the Long marker inout under the Long mask.
//
// The value range [lo, hi] of both images is cut into windows 255 levels
// wide. Each window is clamped into a Grey pair, rebuilt with HierarBuild
// and accumulated into the result. Reconstruction commutes with the
// clamp, so the sum of the windows is the exact 32-bit result.
func HierarBuild32(mask, inout *core.Image, opts ...Option) error {
	return sliced(mask, inout, opts, false)
}

// HierarDualBuild32 is the dual of HierarBuild32.
func HierarDualBuild32(mask, inout *core.Image, opts ...Option) error {
	return sliced(mask, inout, opts, true)
}

// window is the height of one Grey slice of a Long image.
const window = 255

func sliced(mask, inout *core.Image, opts []Option, dual bool) error {
	o, err := resolve(opts)
	if err != nil {
		return err
	}
	if err = core.CheckSize(mask, inout); err != nil {
		return err
	}
	if mask.Depth() != core.Long || inout.Depth() != core.Long {
		return fmt.Errorf("%w: sliced build needs long images, got %s and %s",
			core.ErrBadDepth, mask.Depth(), inout.Depth())
	}

	mlo, mhi := core.Range(mask)
	ilo, ihi := core.Range(inout)
	lo, hi := min(mlo, ilo), max(mhi, ihi)

	w, h := inout.Size()
	wrkMask := core.MustCreate(w, h, core.Long)
	wrkMarker := core.MustCreate(w, h, core.Long)
	clip := core.MustCreate(w, h, core.Long)
	cutMask := core.MustCreate(w, h, core.Grey)
	cutMarker := core.MustCreate(w, h, core.Grey)
	acc := core.MustCreate(w, h, core.Long)
	ceil := core.MustCreate(w, h, core.Long)
	ceil.Fill(window)

	if err = arith.FloorSubConst(mask, wrkMask, lo); err != nil {
		return err
	}
	if err = arith.FloorSubConst(inout, wrkMarker, lo); err != nil {
		return err
	}
	acc.Fill(lo)

	for cur := uint64(lo); cur < uint64(hi); cur += window {
		if err = cut(wrkMask, ceil, clip, cutMask); err != nil {
			return err
		}
		if err = cut(wrkMarker, ceil, clip, cutMarker); err != nil {
			return err
		}
		flood(cutMask.Pix8(), cutMarker.Pix8(), w, h, o, dual)

		if err = arith.Add(acc, cutMarker, acc); err != nil {
			return err
		}
		if err = arith.FloorSubConst(wrkMask, wrkMask, window); err != nil {
			return err
		}
		if err = arith.FloorSubConst(wrkMarker, wrkMarker, window); err != nil {
			return err
		}
	}
	return core.Copy(acc, inout)
}

// cut writes min(src, 255) into the Grey image dst.
func cut(src, ceil, clip, dst *core.Image) error {
	if err := arith.Inf(src, ceil, clip); err != nil {
		return err
	}
	return arith.CopyBytePlane(clip, dst, 0)
}

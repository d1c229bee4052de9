package label

import (
	"github.com/katalvlaran/lvmorph/core"
	"github.com/katalvlaran/lvmorph/grid"
	"github.com/katalvlaran/lvmorph/hqueue"
)

// Label writes the component labels of the Binary in into the Long out
// and returns the number of components.
func Label(in, out *core.Image, opts ...Option) (int, error) {
	o, err := resolve(opts)
	if err != nil {
		return 0, err
	}
	if err = core.CheckSize(in, out); err != nil {
		return 0, err
	}
	if err = core.CheckDepth(in, core.Binary); err != nil {
		return 0, err
	}
	if err = core.CheckDepth(out, core.Long); err != nil {
		return 0, err
	}

	out.Reset()
	w, h := in.Size()
	n := flood(in.Pix8(), w, h, o.Grid, func(k int, comp []int) {
		v := o.value(uint32(k))
		lab := out.Pix32()
		for _, p := range comp {
			lab[p] = v
		}
		o.OnComponent(v, len(comp))
	})
	return n, nil
}

// CountComponents returns the number of connected components of the
// Binary in.
func CountComponents(in *core.Image, opts ...Option) (int, error) {
	o, err := resolve(opts)
	if err != nil {
		return 0, err
	}
	if err = core.CheckDepth(in, core.Binary); err != nil {
		return 0, err
	}
	w, h := in.Size()
	return flood(in.Pix8(), w, h, o.Grid, func(k int, comp []int) {
		o.OnComponent(o.value(uint32(k)), len(comp))
	}), nil
}

// flood visits every component in raster discovery order and hands its
// pixel offsets to visit. The slice is reused between calls.
func flood(pix []uint8, w, h int, g grid.Grid, visit func(k int, comp []int)) int {
	seen := make([]bool, len(pix))
	var (
		q    hqueue.FIFO
		comp []int
	)
	n := g.Neighbors()
	count := 0
	for i0, v := range pix {
		if v == 0 || seen[i0] {
			continue
		}
		seen[i0] = true
		q.Reset()
		q.Push(i0)
		comp = comp[:0]
		for {
			u, ok := q.Pop()
			if !ok {
				break
			}
			comp = append(comp, u)
			ux, uy := u%w, u/w
			for d := 1; d <= n; d++ {
				dx, dy := g.Offset(d, uy)
				vx, vy := ux+dx, uy+dy
				if vx < 0 || vx >= w || vy < 0 || vy >= h {
					continue
				}
				vi := vy*w + vx
				if pix[vi] != 0 && !seen[vi] {
					seen[vi] = true
					q.Push(vi)
				}
			}
		}
		visit(count, comp)
		count++
	}
	return count
}

package distance

import (
	"github.com/katalvlaran/lvmorph/arith"
	"github.com/katalvlaran/lvmorph/core"
	"github.com/katalvlaran/lvmorph/grid"
	"github.com/katalvlaran/lvmorph/hqueue"
	"github.com/katalvlaran/lvmorph/morpho"
)

// Compute writes into the Long out the distance of every set pixel of the
// Binary in to the background.
func Compute(in, out *core.Image, opts ...Option) error {
	o, err := resolve(opts)
	if err != nil {
		return err
	}
	if err = core.CheckSize(in, out); err != nil {
		return err
	}
	if err = core.CheckDepth(in, core.Binary); err != nil {
		return err
	}
	if err = core.CheckDepth(out, core.Long); err != nil {
		return err
	}

	out.Reset()
	w, h := in.Size()
	t := transform{
		set:  in.Pix8(),
		dist: out.Pix32(),
		w:    w,
		h:    h,
		g:    o.Grid,
	}
	filled := o.edgeOr(core.Empty) == core.Filled

	// Pixels on the set boundary start the propagation.
	for p, v := range t.set {
		if v == 0 {
			continue
		}
		if bg, edge := t.touches(p); bg || (edge && !filled) {
			t.seed(p, 1)
		}
	}
	t.propagate()
	if !filled {
		return nil
	}

	// Components with no background inside the image grow from the edge.
	for p, v := range t.set {
		if v == 0 || t.dist[p] != 0 {
			continue
		}
		if _, edge := t.touches(p); edge {
			t.seed(p, Far+1)
		}
	}
	t.propagate()
	return nil
}

// transform is one breadth-first distance propagation.
type transform struct {
	set   []uint8
	dist  []uint32
	w, h  int
	g     grid.Grid
	front hqueue.FIFO
}

// touches reports whether p has a background neighbor inside the image
// and whether one of its neighbors falls outside.
func (t *transform) touches(p int) (bg, edge bool) {
	x, y := p%t.w, p/t.w
	for d := 1; d <= t.g.Neighbors(); d++ {
		dx, dy := t.g.Offset(d, y)
		nx, ny := x+dx, y+dy
		if nx < 0 || nx >= t.w || ny < 0 || ny >= t.h {
			edge = true
			continue
		}
		if t.set[ny*t.w+nx] == 0 {
			bg = true
		}
	}
	return bg, edge
}

func (t *transform) seed(p int, d uint32) {
	t.dist[p] = d
	t.front.Push(p)
}

// propagate settles the set pixels reachable from the queued front, one
// grid step per distance unit.
func (t *transform) propagate() {
	for {
		p, ok := t.front.Pop()
		if !ok {
			return
		}
		next := t.dist[p] + 1
		x, y := p%t.w, p/t.w
		for d := 1; d <= t.g.Neighbors(); d++ {
			dx, dy := t.g.Offset(d, y)
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= t.w || ny < 0 || ny >= t.h {
				continue
			}
			nb := ny*t.w + nx
			if t.set[nb] != 0 && t.dist[nb] == 0 {
				t.seed(nb, next)
			}
		}
	}
}

// Isotropic adds into out, for every set pixel of the Binary in, the
// number of dodecagonal erosions it survives plus one. Hexagon and
// conjugate hexagon erosions alternate so that each level approximates a
// dodecagon of growing size. out must be Grey or Long and is reset first.
// The default edge is core.Filled.
func Isotropic(in, out *core.Image, opts ...Option) error {
	o, err := resolve(opts)
	if err != nil {
		return err
	}
	if err = core.CheckSize(in, out); err != nil {
		return err
	}
	if err = core.CheckDepth(in, core.Binary); err != nil {
		return err
	}
	if err = core.CheckDepth(out, core.Grey, core.Long); err != nil {
		return err
	}

	edge := morpho.WithEdge(o.edgeOr(core.Filled))
	cur := in.Clone()
	prev, err := core.Like(in, core.Binary)
	if err != nil {
		return err
	}
	out.Reset()
	var hex, size int
	for !core.IsEmpty(cur) {
		if err = arith.Add(out, cur, out); err != nil {
			return err
		}
		size++
		n := int(0.4641 * float64(size))
		if n%2 != size%2 {
			n++
		}
		if n-hex == 1 {
			if err = core.Copy(cur, prev); err != nil {
				return err
			}
			err = morpho.Erode(cur, cur, 1, morpho.WithSE(grid.Hexagon), edge)
		} else {
			err = morpho.ConjugateHexagonErode(prev, cur, 1, edge)
		}
		if err != nil {
			return err
		}
		hex = n
	}
	return nil
}

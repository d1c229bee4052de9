package watershed

import (
	"fmt"

	"github.com/katalvlaran/lvmorph/core"
	"github.com/katalvlaran/lvmorph/grid"
	"github.com/katalvlaran/lvmorph/hqueue"
)

// Segment floods the Grey relief in from the labels of the Long marker and
// writes the basins and the watershed line back into marker.
func Segment(in, marker *core.Image, opts ...Option) error {
	o, level, err := prepare(in, marker, opts)
	if err != nil {
		return err
	}
	f := newFlooder(in, marker, o)
	f.run(level, true)
	return nil
}

// Basins is Segment without the watershed line.
func Basins(in, marker *core.Image, opts ...Option) error {
	o, level, err := prepare(in, marker, opts)
	if err != nil {
		return err
	}
	f := newFlooder(in, marker, o)
	f.run(level, false)
	return nil
}

// prepare validates a Grey flood and returns its level count.
func prepare(in, marker *core.Image, opts []Option) (Options, int, error) {
	o, err := resolve(opts)
	if err != nil {
		return o, 0, err
	}
	if err = checkPair(in, marker, core.Grey); err != nil {
		return o, 0, err
	}
	level := o.MaxLevel
	switch {
	case level > hqueue.Levels:
		return o, 0, fmt.Errorf("%w: max level %d above %d", core.ErrBadValue, level, hqueue.Levels)
	case level < 0:
		level = hqueue.Levels
	}
	return o, level, nil
}

// flooder holds one Grey flood over a marker plane.
type flooder struct {
	relief []uint8
	mark   []uint32
	w, h   int
	g      grid.Grid
	q      *hqueue.Queue
}

func newFlooder(in, marker *core.Image, o Options) *flooder {
	q := hqueue.New(hqueue.Ascending)
	q.OnDrain(o.OnLevel)
	return &flooder{
		relief: in.Pix8(),
		mark:   marker.Pix32(),
		w:      in.Width(),
		h:      in.Height(),
		g:      o.Grid,
		q:      q,
	}
}

// run floods levels [0, level). lines selects Segment over Basins.
func (f *flooder) run(level int, lines bool) {
	for i, v := range f.mark {
		if v&LabelMask != 0 {
			f.mark[i] = v&LabelMask | queued
			f.q.Push(0, i)
		} else {
			f.mark[i] = candidate
		}
	}

	var nbs [8]int
	for {
		if next := f.q.Next(); next < 0 || next >= level {
			break
		}
		p, _, _ := f.q.Pop()
		n := f.neighbors(p, nbs[:0])
		if lines {
			f.settle(p, n)
		} else {
			f.spread(p, n)
		}
	}
	f.q.Finish()

	switch {
	case !lines:
		for i, v := range f.mark {
			f.mark[i] = v & LabelMask
		}
	case level == hqueue.Levels:
		// Candidates left are enclosed by line pixels.
		for i, v := range f.mark {
			if v&StatusMask == candidate {
				f.mark[i] = v&LabelMask | Line
			}
		}
	}
}

// neighbors appends the in-image neighbors of p to buf.
func (f *flooder) neighbors(p int, buf []int) []int {
	x, y := p%f.w, p/f.w
	for d := 1; d <= f.g.Neighbors(); d++ {
		dx, dy := f.g.Offset(d, y)
		nx, ny := x+dx, y+dy
		if nx < 0 || nx >= f.w || ny < 0 || ny >= f.h {
			continue
		}
		buf = append(buf, ny*f.w+nx)
	}
	return buf
}

// settle labels p from its labelled neighbors, or makes it line, then
// queues its candidates unless it is line.
func (f *flooder) settle(p int, nbs []int) {
	lab := f.mark[p] & LabelMask
	f.mark[p] = lab | labelled
	for _, nb := range nbs {
		v := f.mark[nb]
		if v&StatusMask != labelled {
			continue
		}
		switch nl := v & LabelMask; {
		case lab == 0:
			lab = nl
			f.mark[p] = lab
		case lab != nl:
			f.mark[p] = lab | Line
		}
	}
	if f.mark[p]&StatusMask == Line {
		return
	}
	for _, nb := range nbs {
		if f.mark[nb]&StatusMask == candidate {
			f.mark[nb] = queued
			f.q.Push(int(f.relief[nb]), nb)
		}
	}
}

// spread finalises p and hands its label to its candidates.
func (f *flooder) spread(p int, nbs []int) {
	lab := f.mark[p] & LabelMask
	f.mark[p] = lab | labelled
	for _, nb := range nbs {
		if f.mark[nb]&StatusMask == candidate {
			f.mark[nb] = lab | queued
			f.q.Push(int(f.relief[nb]), nb)
		}
	}
}

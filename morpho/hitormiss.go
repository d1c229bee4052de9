package morpho

import (
	"fmt"

	"github.com/katalvlaran/lvmorph/arith"
	"github.com/katalvlaran/lvmorph/core"
	"github.com/katalvlaran/lvmorph/grid"
	"github.com/katalvlaran/lvmorph/neighbor"
)

// Pattern is a binary hit-or-miss template on one grid. Direction 0 is
// the pixel itself.
type Pattern struct {
	Grid grid.Grid

	// Hit lists the directions that must hold 1.
	Hit []int

	// Miss lists the directions that must hold 0. A direction in both
	// lists is a hit.
	Miss []int
}

// HitOrMiss writes into out the Binary pixels of in whose neighborhood
// matches p. Pixels outside the image read as 0. in and out must differ.
func HitOrMiss(in, out *core.Image, p Pattern) error {
	if err := core.CheckPair(in, out); err != nil {
		return err
	}
	if err := core.CheckDepth(in, core.Binary); err != nil {
		return err
	}
	if in == out {
		return fmt.Errorf("%w: hit-or-miss needs distinct images", core.ErrBadParameter)
	}
	if err := p.Grid.Check(); err != nil {
		return err
	}
	hit := make([]bool, p.Grid.Neighbors()+1)
	miss := make([]bool, len(hit))
	for _, d := range p.Hit {
		if err := p.Grid.Validate(d); err != nil {
			return err
		}
		hit[d] = true
	}
	for _, d := range p.Miss {
		if err := p.Grid.Validate(d); err != nil {
			return err
		}
		miss[d] = !hit[d]
	}

	var err error
	switch {
	case hit[0]:
		err = core.Copy(in, out)
	case miss[0]:
		err = arith.Negate(in, out)
	default:
		out.Fill(1)
	}
	if err != nil {
		return err
	}

	// A miss is a hit on the complement, whose outside reads as 1.
	var neg *core.Image
	hitOpts := []neighbor.Option{neighbor.WithGrid(p.Grid), neighbor.WithEdge(core.Empty)}
	missOpts := []neighbor.Option{neighbor.WithGrid(p.Grid), neighbor.WithEdge(core.Filled)}
	for d := 1; d < len(hit); d++ {
		switch {
		case hit[d]:
			err = neighbor.InfNeighbor(in, out, d, hitOpts...)
		case miss[d]:
			if neg == nil {
				if neg, err = core.Like(in, core.Binary); err != nil {
					return err
				}
				if err = arith.Negate(in, neg); err != nil {
					return err
				}
			}
			err = neighbor.InfNeighbor(neg, out, d, missOpts...)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

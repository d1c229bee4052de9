package measure

import (
	"image"
	"math"

	"github.com/katalvlaran/lvmorph/core"
	"github.com/katalvlaran/lvmorph/grid"
	"github.com/katalvlaran/lvmorph/label"
	"github.com/katalvlaran/lvmorph/morpho"
	"github.com/katalvlaran/lvmorph/neighbor"
)

// Scale is the spacing between two horizontal (X) and two vertical (Y)
// pixel centres.
type Scale struct {
	X, Y float64
}

// Unit is the default one-by-one spacing. On the hexagonal grid it is not
// isotropic.
var Unit = Scale{X: 1, Y: 1}

// Area returns the scaled pixel count of the Binary in.
func Area(in *core.Image, s Scale) (float64, error) {
	if err := core.CheckDepth(in, core.Binary); err != nil {
		return 0, err
	}
	return s.X * s.Y * float64(core.Volume(in)), nil
}

// Diameter returns the diametral variation of the Binary in along
// direction d: the number of set pixels whose d-neighbor is background,
// times the spacing of the lines crossed in that direction. Directions
// past half the neighbor count fold onto their opposite; 0 gives 0.
func Diameter(in *core.Image, d int, s Scale, g grid.Grid) (float64, error) {
	if err := core.CheckDepth(in, core.Binary); err != nil {
		return 0, err
	}
	if err := g.Validate(d); err != nil {
		return 0, err
	}
	if d == 0 {
		return 0, nil
	}
	d = (d-1)%(g.Neighbors()/2) + 1

	wrk := in.Clone()
	err := neighbor.DiffNeighbor(in, wrk, d, neighbor.WithGrid(g), neighbor.WithEdge(core.Empty))
	if err != nil {
		return 0, err
	}
	return spacing(d, s, g) * float64(core.Volume(wrk)), nil
}

// spacing is the distance between two lines of pixels crossed when
// stepping in direction d.
func spacing(d int, s Scale, g grid.Grid) float64 {
	if g == grid.Hexagonal {
		if d == 2 {
			return s.Y
		}
		return 2 * s.Y * s.X / math.Sqrt(s.X*s.X+4*s.Y*s.Y)
	}
	switch d {
	case 1:
		return s.X
	case 3:
		return s.Y
	default:
		return s.X * s.Y / math.Sqrt(s.X*s.X+s.Y*s.Y)
	}
}

// Perimeter returns the Cauchy-Crofton perimeter of the particles of the
// Binary in.
func Perimeter(in *core.Image, s Scale, g grid.Grid) (float64, error) {
	if err := g.Check(); err != nil {
		return 0, err
	}
	var sum float64
	for d := 1; d <= g.Neighbors()/2; d++ {
		v, err := Diameter(in, d, s, g)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return 2 * math.Pi * sum / float64(g.Neighbors()), nil
}

// ComponentsNumber returns the number of connected components of the
// Binary in.
func ComponentsNumber(in *core.Image, g grid.Grid) (int, error) {
	return label.CountComponents(in, label.WithGrid(g))
}

// ConnectivityNumber returns the Euler-Poincaré number of the Binary in:
// components minus holes. It counts local hit-or-miss configurations, so
// it never labels anything.
func ConnectivityNumber(in *core.Image, g grid.Grid) (int, error) {
	if err := core.CheckDepth(in, core.Binary); err != nil {
		return 0, err
	}
	if err := g.Check(); err != nil {
		return 0, err
	}
	terms := eulerSquare
	if g == grid.Hexagonal {
		terms = eulerHex
	}
	wrk, err := core.Like(in, core.Binary)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, t := range terms {
		p := morpho.Pattern{Grid: g, Hit: t.hit, Miss: t.miss}
		if err = morpho.HitOrMiss(in, wrk, p); err != nil {
			return 0, err
		}
		n += t.sign * int(core.Volume(wrk))
	}
	return n, nil
}

type eulerTerm struct {
	hit, miss []int
	sign      int
}

var (
	eulerHex = []eulerTerm{
		{hit: []int{0}, miss: []int{1, 6}, sign: 1},
		{hit: []int{0, 2}, miss: []int{1}, sign: -1},
	}
	eulerSquare = []eulerTerm{
		{hit: []int{0}, miss: []int{3, 4, 5}, sign: 1},
		{hit: []int{0, 3, 5}, miss: []int{4}, sign: -1},
		{hit: []int{0, 4}, miss: []int{3, 5}, sign: 1},
	}
)

// Frame returns the smallest rectangle holding every pixel of in at or
// above threshold. ok is false when there is none.
func Frame(in *core.Image, threshold uint32) (r image.Rectangle, ok bool) {
	w, h := in.Size()
	x0, y0, x1, y1 := w, h, -1, -1
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if in.At(y*w+x) < threshold {
				continue
			}
			x0, y0 = min(x0, x), min(y0, y)
			x1, y1 = max(x1, x), max(y1, y)
		}
	}
	if x1 < 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(x0, y0, x1+1, y1+1), true
}

// FeretDiameters returns the scaled width and height of the bounding box
// of the Binary in. An empty image gives 0, 0.
func FeretDiameters(in *core.Image, s Scale) (hd, vd float64, err error) {
	if err = core.CheckDepth(in, core.Binary); err != nil {
		return 0, 0, err
	}
	r, ok := Frame(in, 1)
	if !ok {
		return 0, 0, nil
	}
	return s.X * float64(r.Dx()), s.Y * float64(r.Dy()), nil
}

package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmorph/core"
)

// Grid selects the neighborhood topology.
type Grid int

const (
	// Hexagonal is the 6-neighbor grid with half-pixel shifted odd rows.
	Hexagonal Grid = iota
	// Square is the 8-neighbor grid.
	Square
)

// Default is the grid used when a caller does not choose one.
const Default = Hexagonal

// sqOffsets holds the square offsets indexed by direction.
var sqOffsets = [9][2]int{
	{0, 0}, {0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// hxOffsets holds the hexagonal offsets indexed by row parity then direction.
var hxOffsets = [2][7][2]int{
	{{0, 0}, {0, -1}, {1, 0}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}},
	{{0, 0}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 0}, {0, -1}},
}

// Parse converts "hexagonal" or "square" (case-insensitive) into a Grid.
func Parse(name string) (Grid, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hexagonal", "hexagon", "hex":
		return Hexagonal, nil
	case "square", "sq":
		return Square, nil
	default:
		return 0, fmt.Errorf("%w: unknown grid %q", core.ErrBadParameter, name)
	}
}

// Valid reports whether g is Hexagonal or Square.
func (g Grid) Valid() bool {
	return g == Hexagonal || g == Square
}

// Check returns ErrBadParameter for an unknown grid value.
func (g Grid) Check() error {
	if !g.Valid() {
		return fmt.Errorf("%w: grid %d", core.ErrBadParameter, int(g))
	}
	return nil
}

// String implements fmt.Stringer.
func (g Grid) String() string {
	switch g {
	case Hexagonal:
		return "hexagonal"
	case Square:
		return "square"
	default:
		return fmt.Sprintf("grid(%d)", int(g))
	}
}

// Neighbors returns 6 for Hexagonal and 8 for Square.
func (g Grid) Neighbors() int {
	if g == Square {
		return 8
	}
	return 6
}

// Directions returns every direction of g, 0 included, in order.
func (g Grid) Directions() []int {
	dirs := make([]int, g.Neighbors()+1)
	for i := range dirs {
		dirs[i] = i
	}
	return dirs
}

// Validate returns ErrBadDirection if d is not a direction of g.
func (g Grid) Validate(d int) error {
	if err := g.Check(); err != nil {
		return err
	}
	if d < 0 || d > g.Neighbors() {
		return fmt.Errorf("%w: %d on %s grid", core.ErrBadDirection, d, g)
	}
	return nil
}

// Offset returns the pixel offset of direction d for a pixel on row y.
// d must be valid for g.
func (g Grid) Offset(d, y int) (dx, dy int) {
	if g == Square {
		o := sqOffsets[d]
		return o[0], o[1]
	}
	o := hxOffsets[y&1][d]
	return o[0], o[1]
}

// Rotate turns d by step directions (clockwise for step > 0).
// Direction 0 is unchanged.
func (g Grid) Rotate(d, step int) int {
	if d == 0 {
		return 0
	}
	n := g.Neighbors()
	r := (d - 1 + step) % n
	if r < 0 {
		r += n
	}
	return r + 1
}

// Transpose returns the direction opposite to d.
func (g Grid) Transpose(d int) int {
	return g.Rotate(d, g.Neighbors()/2)
}

// Displacement returns the total offset reached after amp steps in
// direction d, starting from a pixel on row y. On the hexagonal grid the
// horizontal component depends on the parity of every row crossed.
func (g Grid) Displacement(d, amp, y int) (dx, dy int) {
	if g == Square {
		o := sqOffsets[d]
		return o[0] * amp, o[1] * amp
	}
	for i := 0; i < amp; i++ {
		o := hxOffsets[(y+dy)&1][d]
		dx += o[0]
		dy += o[1]
	}
	return dx, dy
}

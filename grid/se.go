package grid

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/lvmorph/core"
)

// SE is a structuring element: a sorted set of directions on one grid.
// The zero value is not usable; build one with NewSE.
type SE struct {
	grid Grid
	dirs []int
}

// Predefined structuring elements.
var (
	Hexagon   = MustSE(Hexagonal, 0, 1, 2, 3, 4, 5, 6)
	Square3x3 = MustSE(Square, 0, 1, 2, 3, 4, 5, 6, 7, 8)
	Triangle  = MustSE(Hexagonal, 0, 3, 4)
	Square2x2 = MustSE(Square, 0, 1, 2, 3)
	Tripod    = MustSE(Hexagonal, 0, 1, 3, 5)
	Segment   = MustSE(Square, 0, 3)
	Diamond   = MustSE(Square, 0, 1, 3, 5, 7)

	// DefaultSE is used by operators called without an explicit element.
	DefaultSE = Hexagon
)

// NewSE validates dirs against g and returns the deduplicated element.
func NewSE(g Grid, dirs ...int) (SE, error) {
	if err := g.Check(); err != nil {
		return SE{}, err
	}
	if len(dirs) == 0 {
		return SE{}, fmt.Errorf("%w: empty structuring element", core.ErrBadParameter)
	}
	for _, d := range dirs {
		if err := g.Validate(d); err != nil {
			return SE{}, err
		}
	}
	set := slices.Clone(dirs)
	slices.Sort(set)
	return SE{grid: g, dirs: slices.Compact(set)}, nil
}

// MustSE is NewSE for literal elements; it panics on error.
func MustSE(g Grid, dirs ...int) SE {
	se, err := NewSE(g, dirs...)
	if err != nil {
		panic(err)
	}
	return se
}

// Full returns the element holding every direction of g.
func Full(g Grid) SE {
	return MustSE(g, g.Directions()...)
}

// Grid returns the grid the element is defined on.
func (se SE) Grid() Grid { return se.grid }

// Len returns the number of directions, 0 included.
func (se SE) Len() int { return len(se.dirs) }

// Directions returns a copy of the sorted direction set.
func (se SE) Directions() []int { return slices.Clone(se.dirs) }

// HasCenter reports whether direction 0 belongs to the element.
func (se SE) HasCenter() bool {
	return len(se.dirs) > 0 && se.dirs[0] == 0
}

// Neighbors returns the directions other than 0.
func (se SE) Neighbors() []int {
	if se.HasCenter() {
		return slices.Clone(se.dirs[1:])
	}
	return slices.Clone(se.dirs)
}

// Contains reports whether d belongs to the element.
func (se SE) Contains(d int) bool {
	_, ok := slices.BinarySearch(se.dirs, d)
	return ok
}

// Rotate returns the element turned by step directions.
func (se SE) Rotate(step int) SE {
	out := make([]int, len(se.dirs))
	for i, d := range se.dirs {
		out[i] = se.grid.Rotate(d, step)
	}
	return MustSE(se.grid, out...)
}

// Transpose returns the element mirrored through the center.
func (se SE) Transpose() SE {
	return se.Rotate(se.grid.Neighbors() / 2)
}

// Equal reports whether both elements hold the same directions on the
// same grid.
func (se SE) Equal(other SE) bool {
	return se.grid == other.grid && slices.Equal(se.dirs, other.dirs)
}

// String implements fmt.Stringer, e.g. "hexagonal[0 3 4]".
func (se SE) String() string {
	parts := make([]string, len(se.dirs))
	for i, d := range se.dirs {
		parts[i] = fmt.Sprint(d)
	}
	return se.grid.String() + "[" + strings.Join(parts, " ") + "]"
}

// Named returns a predefined element by its lower-case name:
// hexagon, square3x3, triangle, square2x2, tripod, segment, diamond.
func Named(name string) (SE, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hexagon":
		return Hexagon, nil
	case "square3x3", "square":
		return Square3x3, nil
	case "triangle":
		return Triangle, nil
	case "square2x2":
		return Square2x2, nil
	case "tripod":
		return Tripod, nil
	case "segment":
		return Segment, nil
	case "diamond":
		return Diamond, nil
	default:
		return SE{}, fmt.Errorf("%w: unknown structuring element %q", core.ErrBadParameter, name)
	}
}

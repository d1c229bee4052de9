package core

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by all lvmorph operators.
var (
	// ErrBadSize indicates zero or oversize dimensions, or a coordinate
	// outside the image.
	ErrBadSize = errors.New("core: bad image size")

	// ErrBadDepth indicates a pixel depth the operator does not accept.
	ErrBadDepth = errors.New("core: bad image depth")

	// ErrSizeMismatch indicates two images of different width or height.
	ErrSizeMismatch = errors.New("core: image sizes do not match")

	// ErrBadDirection indicates a direction outside the grid numbering.
	ErrBadDirection = errors.New("core: bad direction")

	// ErrBadParameter indicates an invalid grid, range or option.
	ErrBadParameter = errors.New("core: bad parameter")

	// ErrBadValue indicates an invalid scalar argument.
	ErrBadValue = errors.New("core: bad value")

	// ErrCannotAllocate indicates a pixel buffer that cannot be addressed.
	ErrCannotAllocate = errors.New("core: cannot allocate image buffer")
)

// Depth is the number of bits per pixel.
type Depth int

const (
	// Binary images hold 0/1 pixels.
	Binary Depth = 1
	// Grey images hold 8-bit pixels.
	Grey Depth = 8
	// Long images hold 32-bit pixels.
	Long Depth = 32
)

// Valid reports whether d is one of the supported depths.
func (d Depth) Valid() bool {
	return d == Binary || d == Grey || d == Long
}

// Max returns the largest pixel value representable at depth d.
func (d Depth) Max() uint32 {
	switch d {
	case Binary:
		return 1
	case Grey:
		return 0xFF
	default:
		return 0xFFFFFFFF
	}
}

// String implements fmt.Stringer.
func (d Depth) String() string {
	switch d {
	case Binary:
		return "binary"
	case Grey:
		return "grey"
	case Long:
		return "long"
	default:
		return fmt.Sprintf("depth(%d)", int(d))
	}
}

// Edge is the policy for neighbor reads that fall outside the image.
type Edge int

const (
	// Empty reads 0 outside the image.
	Empty Edge = iota
	// Filled reads the depth maximum outside the image.
	Filled
)

// Value returns the virtual out-of-image pixel for depth d.
func (e Edge) Value(d Depth) uint32 {
	if e == Filled {
		return d.Max()
	}
	return 0
}

// Valid reports whether e is Empty or Filled.
func (e Edge) Valid() bool {
	return e == Empty || e == Filled
}

// String implements fmt.Stringer.
func (e Edge) String() string {
	if e == Filled {
		return "filled"
	}
	return "empty"
}

// Pixel is the set of concrete plane element types.
type Pixel interface {
	uint8 | uint32
}

// Image is a padded raster of fixed-depth unsigned pixels.
//
// Binary and Grey images store one byte per pixel in pix8;
// Long images store one word per pixel in pix32.
type Image struct {
	width  int
	height int
	depth  Depth
	pix8   []uint8
	pix32  []uint32
}

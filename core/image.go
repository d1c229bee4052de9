package core

import (
	"fmt"
	"math"
	"slices"
)

const (
	// widthAlign is the column multiple every image width is rounded to.
	widthAlign = 64
	// heightAlign is the row multiple every image height is rounded to.
	heightAlign = 2
	// maxPixels bounds the padded area of an image.
	maxPixels = uint64(1) << 32
)

// Create allocates a zeroed image of at least w×h pixels at the given depth.
// Width is rounded up to a multiple of 64 and height to a multiple of 2.
//
// Errors: ErrBadSize (zero or oversize area), ErrBadDepth,
// ErrCannotAllocate (buffer not addressable on this platform).
func Create(w, h int, depth Depth) (*Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, w, h)
	}
	if !depth.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadDepth, int(depth))
	}
	pw := uint64(roundUp(w, widthAlign))
	ph := uint64(roundUp(h, heightAlign))
	n := pw * ph
	if n > maxPixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrBadSize, pw, ph, maxPixels)
	}
	unit := uint64(1)
	if depth == Long {
		unit = 4
	}
	if n*unit > uint64(math.MaxInt) {
		return nil, fmt.Errorf("%w: %d bytes", ErrCannotAllocate, n*unit)
	}

	img := &Image{width: int(pw), height: int(ph), depth: depth}
	if depth == Long {
		img.pix32 = make([]uint32, n)
	} else {
		img.pix8 = make([]uint8, n)
	}
	return img, nil
}

// MustCreate is Create for dimensions known to be valid; it panics on error.
func MustCreate(w, h int, depth Depth) *Image {
	img, err := Create(w, h, depth)
	if err != nil {
		panic(err)
	}
	return img
}

// Like allocates a zeroed image with the size of ref and the given depth.
func Like(ref *Image, depth Depth) (*Image, error) {
	return Create(ref.width, ref.height, depth)
}

func roundUp(v, m int) int {
	return (v + m - 1) / m * m
}

// Width returns the padded width in pixels.
func (img *Image) Width() int { return img.width }

// Height returns the padded height in pixels.
func (img *Image) Height() int { return img.height }

// Depth returns the pixel depth.
func (img *Image) Depth() Depth { return img.depth }

// Size returns width and height.
func (img *Image) Size() (int, int) { return img.width, img.height }

// Len returns the number of pixels.
func (img *Image) Len() int { return img.width * img.height }

// Index returns the plane offset of pixel (x,y). No bounds check.
func (img *Image) Index(x, y int) int { return y*img.width + x }

// Contains reports whether (x,y) lies inside the image.
func (img *Image) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < img.width && y < img.height
}

// Pix8 exposes the byte plane of a Binary or Grey image (nil for Long).
func (img *Image) Pix8() []uint8 { return img.pix8 }

// Pix32 exposes the word plane of a Long image (nil otherwise).
func (img *Image) Pix32() []uint32 { return img.pix32 }

// Plane returns the pixel plane of img typed as []T.
// It panics if T does not match the storage class of img.
func Plane[T Pixel](img *Image) []T {
	var zero T
	switch any(zero).(type) {
	case uint8:
		if img.depth == Long {
			panic("core: 8-bit plane requested from a 32-bit image")
		}
		return any(img.pix8).([]T)
	default:
		if img.depth != Long {
			panic("core: 32-bit plane requested from a " + img.depth.String() + " image")
		}
		return any(img.pix32).([]T)
	}
}

// Pixel returns the value at (x,y).
func (img *Image) Pixel(x, y int) (uint32, error) {
	if !img.Contains(x, y) {
		return 0, fmt.Errorf("%w: pixel (%d,%d) outside %dx%d", ErrBadSize, x, y, img.width, img.height)
	}
	return img.At(img.Index(x, y)), nil
}

// SetPixel stores v at (x,y), truncated to the image depth.
func (img *Image) SetPixel(x, y int, v uint32) error {
	if !img.Contains(x, y) {
		return fmt.Errorf("%w: pixel (%d,%d) outside %dx%d", ErrBadSize, x, y, img.width, img.height)
	}
	img.Set(img.Index(x, y), v)
	return nil
}

// At returns the pixel at plane offset i.
func (img *Image) At(i int) uint32 {
	if img.depth == Long {
		return img.pix32[i]
	}
	return uint32(img.pix8[i])
}

// Set stores v at plane offset i, truncated to the image depth.
func (img *Image) Set(i int, v uint32) {
	switch img.depth {
	case Long:
		img.pix32[i] = v
	case Grey:
		img.pix8[i] = uint8(v)
	default:
		img.pix8[i] = truth(v)
	}
}

func truth(v uint32) uint8 {
	if v != 0 {
		return 1
	}
	return 0
}

// Fill sets every pixel to v (truncated to the depth).
func (img *Image) Fill(v uint32) {
	if img.depth == Long {
		for i := range img.pix32 {
			img.pix32[i] = v
		}
		return
	}
	b := uint8(v)
	if img.depth == Binary {
		b = truth(v)
	}
	for i := range img.pix8 {
		img.pix8[i] = b
	}
}

// Reset sets every pixel to 0.
func (img *Image) Reset() {
	clear(img.pix8)
	clear(img.pix32)
}

// Clone returns a deep copy of img.
func (img *Image) Clone() *Image {
	return &Image{
		width:  img.width,
		height: img.height,
		depth:  img.depth,
		pix8:   slices.Clone(img.pix8),
		pix32:  slices.Clone(img.pix32),
	}
}

// Copy copies src into dst. Both images must share size and depth.
func Copy(src, dst *Image) error {
	if err := CheckPair(src, dst); err != nil {
		return err
	}
	if src == dst {
		return nil
	}
	copy(dst.pix8, src.pix8)
	copy(dst.pix32, src.pix32)
	return nil
}

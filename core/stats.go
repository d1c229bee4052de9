package core

// Volume returns the sum of all pixel values.
func Volume(img *Image) uint64 {
	var vol uint64
	if img.depth == Long {
		for _, v := range img.pix32 {
			vol += uint64(v)
		}
		return vol
	}
	for _, v := range img.pix8 {
		vol += uint64(v)
	}
	return vol
}

// Range returns the smallest and largest pixel values of img.
func Range(img *Image) (lo, hi uint32) {
	if img.depth == Long {
		return planeRange(img.pix32)
	}
	l, h := planeRange(img.pix8)
	return uint32(l), uint32(h)
}

func planeRange[T Pixel](p []T) (lo, hi T) {
	if len(p) == 0 {
		return 0, 0
	}
	lo, hi = p[0], p[0]
	for _, v := range p[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// DepthRange returns the minimum and maximum representable values at d.
func DepthRange(d Depth) (uint32, uint32) {
	return 0, d.Max()
}

// IsEmpty reports whether every pixel of img is 0.
func IsEmpty(img *Image) bool {
	for _, v := range img.pix8 {
		if v != 0 {
			return false
		}
	}
	for _, v := range img.pix32 {
		if v != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether a and b share size, depth and every pixel.
func Equal(a, b *Image) bool {
	if CheckPair(a, b) != nil {
		return false
	}
	if a.depth == Long {
		for i, v := range a.pix32 {
			if b.pix32[i] != v {
				return false
			}
		}
		return true
	}
	for i, v := range a.pix8 {
		if b.pix8[i] != v {
			return false
		}
	}
	return true
}

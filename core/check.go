package core

import "fmt"

// CheckSize returns ErrSizeMismatch unless all images share a's size.
func CheckSize(a *Image, others ...*Image) error {
	for _, b := range others {
		if a.width != b.width || a.height != b.height {
			return fmt.Errorf("%w: %dx%d vs %dx%d", ErrSizeMismatch, a.width, a.height, b.width, b.height)
		}
	}
	return nil
}

// CheckPair validates two images for an operator that requires equal size
// and equal depth.
func CheckPair(a, b *Image) error {
	if err := CheckSize(a, b); err != nil {
		return err
	}
	if a.depth != b.depth {
		return fmt.Errorf("%w: %s vs %s", ErrBadDepth, a.depth, b.depth)
	}
	return nil
}

// CheckDepth returns ErrBadDepth unless img has one of the allowed depths.
func CheckDepth(img *Image, allowed ...Depth) error {
	for _, d := range allowed {
		if img.depth == d {
			return nil
		}
	}
	return fmt.Errorf("%w: %s not in %v", ErrBadDepth, img.depth, allowed)
}

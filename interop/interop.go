// Package interop moves pixels between standard library images and engine
// images.
//
// Engine images are padded: their width is a multiple of 64 and their
// height a multiple of 2. FromImage and FromImageBinary place the source
// at the origin and leave the padding at 0. ToGray returns the whole
// padded plane; Crop cuts it back to the source size.
package interop

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"

	"github.com/katalvlaran/lvmorph/core"
)

// FromImage converts any image into a Grey engine image holding its
// luminance.
func FromImage(src image.Image) (*core.Image, error) {
	grey := imaging.Grayscale(src)
	b := grey.Bounds()
	out, err := core.Create(b.Dx(), b.Dy(), core.Grey)
	if err != nil {
		return nil, err
	}
	pix := out.Pix8()
	for y := 0; y < b.Dy(); y++ {
		row := grey.Pix[y*grey.Stride:]
		for x := 0; x < b.Dx(); x++ {
			pix[y*out.Width()+x] = row[4*x]
		}
	}
	return out, nil
}

// FromImageBinary converts any image into a Binary engine image set where
// the luminance is at least level.
func FromImageBinary(src image.Image, level uint8) (*core.Image, error) {
	th := segment.Threshold(src, level)
	b := th.Bounds()
	out, err := core.Create(b.Dx(), b.Dy(), core.Binary)
	if err != nil {
		return nil, err
	}
	pix := out.Pix8()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if th.GrayAt(b.Min.X+x, b.Min.Y+y).Y != 0 {
				pix[y*out.Width()+x] = 1
			}
		}
	}
	return out, nil
}

// ToGray renders img as a standard grey image of its padded size. Binary
// pixels become 0 or 255; Long pixels keep their low byte.
func ToGray(img *core.Image) (*image.Gray, error) {
	w, h := img.Size()
	out := image.NewGray(image.Rect(0, 0, w, h))
	switch img.Depth() {
	case core.Binary:
		for i, v := range img.Pix8() {
			out.Pix[i] = v * 0xFF
		}
	case core.Grey:
		copy(out.Pix, img.Pix8())
	case core.Long:
		for i, v := range img.Pix32() {
			out.Pix[i] = uint8(v)
		}
	default:
		return nil, fmt.Errorf("%w: %s", core.ErrBadDepth, img.Depth())
	}
	return out, nil
}

// Crop renders img with ToGray and cuts it to w×h from the origin. The
// result is an independent copy.
func Crop(img *core.Image, w, h int) (*image.Gray, error) {
	if w <= 0 || h <= 0 || w > img.Width() || h > img.Height() {
		return nil, fmt.Errorf("%w: crop %dx%d of %dx%d", core.ErrBadSize, w, h, img.Width(), img.Height())
	}
	full, err := ToGray(img)
	if err != nil {
		return nil, err
	}
	sub := imaging.Crop(full, image.Rect(0, 0, w, h))
	out := image.NewGray(sub.Bounds())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.Pix[y*out.Stride+x] = sub.Pix[y*sub.Stride+4*x]
		}
	}
	return out, nil
}

package measure

import (
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvmorph/core"
)

// Histogram counts the pixels of the Grey in per value.
func Histogram(in *core.Image) ([256]uint64, error) {
	var h [256]uint64
	if err := core.CheckDepth(in, core.Grey); err != nil {
		return h, err
	}
	for _, v := range in.Pix8() {
		h[v]++
	}
	return h, nil
}

// sample returns the values of in sorted ascending with their weights.
// Grey images fold into their histogram; Long images list every pixel.
func sample(in *core.Image) (x, w []float64, err error) {
	if err = core.CheckDepth(in, core.Grey, core.Long); err != nil {
		return nil, nil, err
	}
	if in.Depth() == core.Grey {
		h, _ := Histogram(in)
		for v, n := range h {
			if n == 0 {
				continue
			}
			x = append(x, float64(v))
			w = append(w, float64(n))
		}
		return x, w, nil
	}
	x = make([]float64, 0, in.Len())
	for _, v := range in.Pix32() {
		x = append(x, float64(v))
	}
	slices.Sort(x)
	return x, nil, nil
}

// Mean returns the mean pixel value of the Grey or Long in.
func Mean(in *core.Image) (float64, error) {
	x, w, err := sample(in)
	if err != nil {
		return 0, err
	}
	return stat.Mean(x, w), nil
}

// Median returns the smallest pixel value reaching half the pixels.
func Median(in *core.Image) (float64, error) {
	x, w, err := sample(in)
	if err != nil {
		return 0, err
	}
	return stat.Quantile(0.5, stat.Empirical, x, w), nil
}

// Variance returns the unbiased sample variance of the pixel values.
func Variance(in *core.Image) (float64, error) {
	x, w, err := sample(in)
	if err != nil {
		return 0, err
	}
	return stat.Variance(x, w), nil
}

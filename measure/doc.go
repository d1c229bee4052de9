// Package measure extracts global measures from images.
//
// What:
//
//   - Histogram, Mean, Median and Variance summarise the pixel values of a
//     Grey or Long image. The statistics run through gonum's stat package,
//     weighted by the histogram for Grey images.
//   - Area, Diameter, Perimeter, FeretDiameters, ComponentsNumber and
//     ConnectivityNumber measure the set of a Binary image. Lengths honour a Scale giving the
//     pixel spacing along each axis.
//   - Frame returns the bounding box of the pixels at or above a threshold.
//
// Perimeter follows the Cauchy-Crofton formula: the mean of the diameters
// over the grid directions, times π. The outside of the image always counts
// as background.
//
// Errors:
//
//   - core.ErrBadDepth: a set measure on a non-Binary image, or a statistic
//     on a Binary one.
//   - core.ErrBadParameter: a bad grid.
package measure

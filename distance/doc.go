// Package distance computes distance functions of binary sets.
//
// What:
//
//   - Compute writes into a Long image, for every set pixel of a Binary
//     input, the number of grid steps to the nearest background pixel
//     while staying inside the set. A pixel touching the background gets
//     1, background pixels get 0.
//   - Isotropic writes a more isotropic distance built from alternating
//     hexagon and conjugate hexagon erosions. Hexagonal grid only.
//
// Edge policy:
//
// With core.Empty (the Compute default) the outside of the image is
// background, so border pixels are at distance 1. With core.Filled the
// outside is part of the set at distance Far: components that touch no
// background get Far plus their distance to the image edge.
//
// Complexity: Compute is O(W×H×n) with n the number of grid neighbors.
// Isotropic runs one erosion per distance level.
//
// Errors:
//
//   - core.ErrBadDepth: input not Binary, or output not Long (Grey is also
//     accepted by Isotropic).
//   - core.ErrSizeMismatch: images of different sizes.
//   - core.ErrBadParameter: a bad grid or edge option.
package distance

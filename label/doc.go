// Package label assigns labels to the connected components of a binary
// image.
//
// What:
//
//   - Label writes into a Long image one label per component of the Binary
//     input and returns the component count. Background pixels get 0.
//   - CountComponents returns the count only.
//
// Components are discovered in raster order (top-left first) and flooded
// breadth-first under the grid adjacency. Hexagonal and square grids give
// different counts on the same input: two pixels touching by a corner on
// the square grid are often not neighbors on the hexagonal one.
//
// Label values:
//
// With WithRange(low, high) the k-th component (counting from 0) gets
//
//	low + k mod (high-low) + 256 * (k div (high-low))
//
// so the low byte of every label stays inside [low, high). The default
// range 1..256 never yields a multiple of 256, which keeps labels usable as
// watershed seeds.
//
// Hooks: WithOnComponent(fn) is called once per component with its label
// and pixel count.
//
// Complexity: O(W×H×n) time with n the number of grid neighbors, O(W×H)
// memory.
//
// Errors:
//
//   - core.ErrBadDepth: input not Binary or output not Long.
//   - core.ErrSizeMismatch: images of different sizes.
//   - core.ErrBadParameter: low < 1, low >= high, high > 256 or a bad grid.
package label

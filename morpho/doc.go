// Package morpho composes the neighbor primitives into erosions, dilations
// and the classic filters derived from them.
//
// Dilate and Erode iterate n times over a structuring element. Each
// iteration snapshots the current output, resets it when the element lacks
// direction 0 (to 0 for a dilation, to the depth maximum for an erosion)
// and folds in the snapshot's neighbor along every non-zero direction.
//
// The element origin is always direction 0, even when the element does
// not contain it.
//
// Defaults: grid.Hexagon, Empty edge for dilations, Filled edge for
// erosions. With those defaults erosion and dilation are dual:
//
//	Erode(A) == Negate(Dilate(Negate(A)))
//
// Derived operators: Open, Close, Gradient, HalfGradient, WhiteTopHat,
// BlackTopHat, RegularisedGradient, the linear and double-point forms, and
// the large isotropic shapes (conjugate hexagon, dodecagon, octagon).
//
// Filters: AlternateFilter (opening then closing, or the reverse),
// FullAlternateFilter (sizes 1 to n) and AutoMedian.
//
// HitOrMiss matches a binary Pattern: the Hit directions must hold 1 and
// the Miss directions 0, with the outside of the image read as 0.
package morpho

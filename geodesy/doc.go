// Package geodesy implements geodesic reconstruction and the operators
// built on it.
//
// What:
//
//   - Build / DualBuild: iterative reconstruction. Every pass runs
//     neighbor.BuildNeighbor in each non-zero direction; passes repeat until
//     the volume stops changing. Any depth.
//   - HierarBuild / HierarDualBuild: the same fixpoint on Grey images,
//     computed in one flood with a hierarchical queue.
//   - HierarBuild32 / HierarDualBuild32: Long images, solved as a stack of
//     255-wide grey windows each rebuilt with the 8-bit engine.
//   - Reconstruct / DualReconstruct pick the fastest engine for the depth.
//   - Minima, Maxima, CloseHoles, RemoveEdgeParticles, the upper and lower
//     geodesic dilations and erosions, and GeodesicDistance.
//   - MinDynamics / MaxDynamics keep the extrema whose dynamic reaches h;
//     DeepMinima / HighMaxima take the extrema of the image filled (or
//     razed) by h; MinPartialBuild / MaxPartialBuild rebuild the image
//     from the extrema a binary mask selects.
//   - SimpleLevelling and StrongLevelling flatten homogeneous regions
//     with a pair of reconstructions.
//
// Hierarchical flood:
//
//  1. Clip the marker to the mask (min; max for the dual).
//  2. Queue every pixel at its own value, in raster order.
//  3. Serve levels 255 down to 0 (0 up to 255 for the dual), FIFO within
//     a level. A popped pixel that is not final becomes final; each
//     neighbor that was never queued by a neighbor takes
//     min(popped value, mask) (max for the dual) and joins the queue.
//
// Seeding every pixel reaches the same fixpoint as seeding the regional
// maxima only; pixels that are not maxima are simply overwritten before
// they are served.
//
// Hooks: WithOnLevel(fn) receives each drained level and the number of
// tokens served there.
//
// Errors: core.ErrSizeMismatch, core.ErrBadDepth, core.ErrBadParameter.
package geodesy

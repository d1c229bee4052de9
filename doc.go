// Package lvmorph is a mathematical-morphology engine: erosions and
// dilations, geodesic reconstruction, connected-component labeling,
// distance functions and watershed segmentation over binary, grey and
// 32-bit raster images.
//
// 🚀 What is lvmorph?
//
//	A pure-Go image-algebra library working on raw pixel planes:
//		• Images: 1-bit, 8-bit and 32-bit planes with saturating arithmetic
//		• Topology: hexagonal (6 neighbors) or square (8 neighbors) grids
//		• Elementary operators: neighbor folds, erosion, dilation, hit-or-miss
//		• Filters: openings, closings, alternate filters, top hats
//		• Geodesy: reconstruction, extrema, dynamics, levellings
//		• Labeling: connected components with bounded label bytes
//		• Watershed: marker flooding with or without watershed lines
//		• Distances: grid-step and isotropic distance functions
//
// ✨ Design
//
//   - Explicit parameters: grid, element and edge policy travel through
//     functional options or a config.Config value, never globals
//   - Errors, not panics: sentinel errors in core, wrapped with context
//   - Hooks instead of logging: WithOnLevel, WithOnComponent
//
// Packages:
//
//	core/       Image, Depth, Edge, sentinel errors, raw byte layout
//	grid/       Grid topologies and structuring elements
//	arith/      pixel-wise arithmetic, logic, thresholds, planes
//	neighbor/   single-direction neighbor folds and build steps
//	morpho/     erosion, dilation, hit-or-miss and the filters built on them
//	hqueue/     the 256-level hierarchical queue and a FIFO
//	geodesy/    reconstruction, extrema, dynamics, levellings
//	label/      connected-component labeling
//	watershed/  flooding, SKIZ, mosaic
//	distance/   distance functions
//	measure/    statistics and set measures
//	config/     YAML settings turned into options
//	interop/    conversion from and to the image package
//
// Quick ASCII example (hexagonal grid, direction 0 is the centre):
//
//	   6   1
//	 5   0   2
//	   4   3
//
// is the Hexagon element on an even row.
package lvmorph

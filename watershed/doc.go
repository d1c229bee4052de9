// Package watershed floods a greyscale relief from labelled markers with a
// hierarchical queue and partitions it into catchment basins.
//
// What:
//
//   - Segment: basins plus a watershed line. Grey relief, Long marker.
//   - Basins: basins only, faster.
//   - Segment32 / Basins32: Long relief, flooded as successive Grey windows
//     that reuse the marker between windows.
//   - MarkerControlled, Valued, FastSKIZ, GeodesicSKIZ, Mosaic,
//     MosaicGradient: operators built on Segment.
//
// Marker encoding:
//
// The low three bytes of a marker pixel carry its label (0: none). The top
// byte carries the flood status:
//
//	0x00  labelled (final)
//	0x01  candidate, never queued
//	0x02  queued
//	0xFF  watershed line
//
// After a complete flood only 0x00 and 0xFF remain. A flood stopped by
// WithMaxLevel leaves the pixels it did not reach as candidate or queued.
//
// Flood:
//
//  1. Every labelled pixel is queued at level 0; every other pixel becomes
//     a candidate.
//  2. Levels are served from 0 up to the maximum level, FIFO within a level.
//  3. A served pixel takes the label of its first labelled neighbor and
//     becomes line when it meets a second, different label. A pixel that is
//     not line queues its candidate neighbors at max(water, relief).
//  4. After the last level, remaining candidates become line pixels.
//
// Basins assigns the label when a neighbor is queued instead, so no line
// forms, and clears every status byte on exit.
//
// Hooks: WithOnLevel(fn) reports each drained level.
//
// Errors:
//
//   - core.ErrBadDepth: relief or marker of the wrong depth.
//   - core.ErrSizeMismatch: relief and marker sizes differ.
//   - core.ErrBadValue: a maximum level above 256 for the Grey engines.
package watershed

// Package hqueue provides the queues behind lvmorph's flooding algorithms.
//
// FIFO is a reusable first-in first-out buffer of pixel offsets.
//
// Queue is a hierarchical queue: 256 FIFO levels indexed by grey value and
// a water level. Levels are served in strict order (ascending or
// descending), FIFO within a level. A push below the water level (above
// it, for a descending queue) is clamped to the water level, so the level
// being drained may keep growing until it is exhausted.
//
// Complexity: Push and Pop are amortized O(1); moving the water level scans
// at most 256 levels over a whole flood.
package hqueue

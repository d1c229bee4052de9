// Package neighbor implements the single-direction primitives every
// morphological operator is composed from.
//
// What:
//
//	SupNeighbor(in, inout, d)        inout[p] = max(inout[p], in[p+off(d)])
//	InfNeighbor(in, inout, d)        inout[p] = min(inout[p], in[p+off(d)])
//	DiffNeighbor(in, inout, d)       inout[p] = in[p] > in[p+off(d)] ? in[p] : 0
//	SupFarNeighbor / InfFarNeighbor  same, with the pixel amp steps away
//	Shift(in, out, d, amp, fill)     out[p] = in[p - amp·off(d)]
//	ShiftVector(in, out, dx, dy, ..) out[x,y] = in[x-dx, y-dy]
//	SupVector / InfVector(in, inout, dx, dy)
//	                                 fold with in[x-dx, y-dy]
//	BuildNeighbor(mask, inout, d)    cascading masked propagation along d
//
// The one-step operators apply once. SupNeighborRepeat and
// InfNeighborRepeat are the in-place forms: they apply the one-step
// operator count times, each step reading the result of the previous one.
// Calling a one-step operator with in == inout behaves like a repeat
// count of 1.
//
// Edges:
//
// Reads that fall outside the image return the edge value: 0 for
// core.Empty and the depth maximum for core.Filled. Defaults are Empty for
// Sup, Diff and Shift style operators and Filled for Inf ones. The vector
// operators ignore the grid.
//
// Options:
//
//	WithGrid(g)  topology, default grid.Hexagonal
//	WithEdge(e)  edge policy, default depends on the operator
//
// Complexity: O(W·H) per application; far neighbors on the hexagonal grid
// add O(amp) per row.
//
// Errors: core.ErrSizeMismatch, core.ErrBadDepth, core.ErrBadDirection,
// core.ErrBadParameter (invalid option) and core.ErrBadValue (negative
// count or amplitude). All checks run before any pixel is written.
package neighbor

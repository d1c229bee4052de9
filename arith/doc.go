// Package arith implements pixelwise arithmetic, logic, conversions and
// plane copies between lvmorph images.
//
// Overflow policy:
//
//   - Grey (8-bit) results saturate into 0..255.
//   - Long (32-bit) results wrap modulo 2^32, except for the Ceiling/Floor
//     family which clamps.
//   - Binary results are logical: Add is OR, Sub is AND-NOT, Mul is AND.
//
// Two-operand operators accept mixed input depths when the output has the
// deepest of them; narrower inputs are widened (a binary pixel reads 0/1).
// All size and depth checks run before any output pixel is written.
//
// Errors:
//
//	core.ErrSizeMismatch – operands of different sizes
//	core.ErrBadDepth     – unsupported depth combination
//	core.ErrBadValue     – division by zero, plane index out of range
//	core.ErrBadParameter – malformed lookup table
package arith

// Package grid defines the discrete topologies lvmorph operators work on
// and the structuring elements built from them.
//
// What:
//
//   - Hexagonal : 6 neighbors. Odd rows are shifted half a pixel to the
//     right; row 0 is even. Directions:
//
//     6 1          even row offsets: 1(0,-1) 2(1,0) 3(0,1)
//     5 0 2                          4(-1,1) 5(-1,0) 6(-1,-1)
//     4 3          odd row offsets:  1(1,-1) 2(1,0) 3(1,1)
//     .                              4(0,1) 5(-1,0) 6(0,-1)
//
//   - Square : 8 neighbors, parity independent:
//
//     8 1 2
//     7 0 3
//     6 5 4
//
// Direction 0 is the center pixel itself.
//
// Rotation maps d≠0 to ((d-1+step) mod n)+1 and keeps 0 fixed; a positive
// step turns clockwise. Transposition is rotation by n/2.
//
// Structuring elements (SE) are deduplicated, sorted direction sets bound to
// a grid. The predefined ones are Hexagon, Square3x3, Triangle, Square2x2,
// Tripod, Segment and Diamond; DefaultSE is Hexagon.
//
// Errors:
//
//	core.ErrBadDirection – direction outside 0..Neighbors()
//	core.ErrBadParameter – unknown grid value or name
package grid

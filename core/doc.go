// Package core provides the raster Image shared by every lvmorph operator,
// together with the pixel-depth model, the edge policy and the error
// taxonomy.
//
// An Image is a W×H grid of unsigned pixels of a single depth:
//
//   - Binary (1 bit)   : pixel values 0 or 1
//   - Grey   (8 bits)  : pixel values 0..255
//   - Long   (32 bits) : pixel values 0..0xFFFFFFFF
//
// Why this layout?
//
//   - Width is always a multiple of 64 and height a multiple of 2, so every
//     row of a binary image packs into whole 64-bit words and hexagonal row
//     parity is stable from one image to the next.
//   - Binary and grey pixels share a []uint8 plane, 32-bit pixels use a
//     []uint32 plane; operators dispatch once on Depth and then run a
//     generic kernel over the concrete plane (see Plane).
//   - Edge policy (Empty / Filled) decides the virtual value read outside
//     the image, so border handling never needs a special case.
//
// Raw buffer ABI:
//
//	img, err := core.Create(100, 50, core.Grey) // padded to 128×50
//	core.Load(img, raw)                           // len(raw) == 128*50
//	out := core.Extract(img)
//
// Binary rows pack 8 pixels per byte, least significant bit first. 32-bit
// pixels are little-endian. A length mismatch in Load is a programming
// error and panics.
//
// Errors:
//
//	ErrBadSize         – zero or oversize dimensions, coordinates out of range
//	ErrBadDepth        – depth unsupported by the operator for that role
//	ErrSizeMismatch    – two images disagree on width or height
//	ErrBadDirection    – direction outside the grid numbering
//	ErrBadParameter    – invalid grid, label range or option
//	ErrBadValue        – invalid scalar argument (zero divisor, flood level)
//	ErrCannotAllocate  – pixel buffer larger than the address space allows
//
// Every operator validates sizes and depths before writing any pixel.
package core

package arith

import (
	"fmt"

	"github.com/katalvlaran/lvmorph/core"
)

// Add writes a+b into out: saturated for Grey, wrapped for Long, OR for Binary.
func Add(a, b, out *core.Image) error {
	if err := checkWidening(a, b, out); err != nil {
		return err
	}
	return apply(a, b, out, pairOp{
		bin:  func(x, y uint8) uint8 { return x | y },
		grey: satAdd8,
		long: func(x, y uint32) uint32 { return x + y },
	})
}

// Sub writes a-b into out: floored at 0 for Grey, wrapped for Long,
// AND-NOT for Binary.
func Sub(a, b, out *core.Image) error {
	if err := checkWidening(a, b, out); err != nil {
		return err
	}
	return apply(a, b, out, pairOp{
		bin:  func(x, y uint8) uint8 { return x &^ y },
		grey: satSub8,
		long: func(x, y uint32) uint32 { return x - y },
	})
}

// Mul writes a*b into out: saturated for Grey, wrapped for Long, AND for Binary.
func Mul(a, b, out *core.Image) error {
	if err := checkWidening(a, b, out); err != nil {
		return err
	}
	return apply(a, b, out, pairOp{
		bin: func(x, y uint8) uint8 { return x & y },
		grey: func(x, y uint8) uint8 {
			if p := uint16(x) * uint16(y); p < 0xFF {
				return uint8(p)
			}
			return 0xFF
		},
		long: func(x, y uint32) uint32 { return x * y },
	})
}

// CeilingAdd writes a+b into out, clamped at the depth maximum.
func CeilingAdd(a, b, out *core.Image) error {
	if err := checkWidening(a, b, out); err != nil {
		return err
	}
	return apply(a, b, out, pairOp{
		bin:  func(x, y uint8) uint8 { return x | y },
		grey: satAdd8,
		long: satAdd32,
	})
}

// FloorSub writes a-b into out, clamped at 0.
func FloorSub(a, b, out *core.Image) error {
	if err := checkWidening(a, b, out); err != nil {
		return err
	}
	return apply(a, b, out, pairOp{
		bin:  func(x, y uint8) uint8 { return x &^ y },
		grey: satSub8,
		long: satSub32,
	})
}

// Diff keeps a where a > b and writes 0 elsewhere.
func Diff(a, b, out *core.Image) error {
	if err := checkSame(out, a, b); err != nil {
		return err
	}
	return apply(a, b, out, pairOp{
		bin:  func(x, y uint8) uint8 { return x &^ y },
		grey: diff[uint8],
		long: diff[uint32],
	})
}

func diff[T core.Pixel](x, y T) T {
	if x > y {
		return x
	}
	return 0
}

// Inf writes the pixelwise minimum of a and b into out.
func Inf(a, b, out *core.Image) error {
	if err := checkSame(out, a, b); err != nil {
		return err
	}
	return apply(a, b, out, pairOp{bin: minOf[uint8], grey: minOf[uint8], long: minOf[uint32]})
}

// Sup writes the pixelwise maximum of a and b into out.
func Sup(a, b, out *core.Image) error {
	if err := checkSame(out, a, b); err != nil {
		return err
	}
	return apply(a, b, out, pairOp{bin: maxOf[uint8], grey: maxOf[uint8], long: maxOf[uint32]})
}

func minOf[T core.Pixel](x, y T) T { return min(x, y) }

func maxOf[T core.Pixel](x, y T) T { return max(x, y) }

// And writes the bitwise AND of a and b into out.
func And(a, b, out *core.Image) error {
	if err := checkSame(out, a, b); err != nil {
		return err
	}
	return apply(a, b, out, pairOp{
		bin:  func(x, y uint8) uint8 { return x & y },
		grey: func(x, y uint8) uint8 { return x & y },
		long: func(x, y uint32) uint32 { return x & y },
	})
}

// Or writes the bitwise OR of a and b into out.
func Or(a, b, out *core.Image) error {
	if err := checkSame(out, a, b); err != nil {
		return err
	}
	return apply(a, b, out, pairOp{
		bin:  func(x, y uint8) uint8 { return x | y },
		grey: func(x, y uint8) uint8 { return x | y },
		long: func(x, y uint32) uint32 { return x | y },
	})
}

// Xor writes the bitwise XOR of a and b into out.
func Xor(a, b, out *core.Image) error {
	if err := checkSame(out, a, b); err != nil {
		return err
	}
	return apply(a, b, out, pairOp{
		bin:  func(x, y uint8) uint8 { return x ^ y },
		grey: func(x, y uint8) uint8 { return x ^ y },
		long: func(x, y uint32) uint32 { return x ^ y },
	})
}

// SupMask writes a binary image holding 1 where a > b (strict) or
// a >= b (not strict).
func SupMask(a, b, out *core.Image, strict bool) error {
	if err := core.CheckSize(out, a, b); err != nil {
		return err
	}
	if a.Depth() != b.Depth() {
		return fmt.Errorf("%w: %s vs %s", core.ErrBadDepth, a.Depth(), b.Depth())
	}
	if err := core.CheckDepth(out, core.Binary); err != nil {
		return err
	}
	p := out.Pix8()
	if a.Depth() == core.Long {
		supMask(a.Pix32(), b.Pix32(), p, strict)
	} else {
		supMask(a.Pix8(), b.Pix8(), p, strict)
	}
	return nil
}

func supMask[T core.Pixel](a, b []T, out []uint8, strict bool) {
	for i := range out {
		if a[i] > b[i] || (!strict && a[i] == b[i]) {
			out[i] = 1
		} else {
			out[i] = 0
		}
	}
}

// Compare looks for the first pixel, in raster order, where in and cmp
// differ. It returns its coordinates and copies the in value there into
// out, or returns (-1, -1) when the images are identical.
func Compare(in, cmp, out *core.Image) (x, y int, err error) {
	if err = checkSame(out, in, cmp); err != nil {
		return -1, -1, err
	}
	for i := 0; i < in.Len(); i++ {
		if v := in.At(i); v != cmp.At(i) {
			out.Set(i, v)
			return i % in.Width(), i / in.Width(), nil
		}
	}
	return -1, -1, nil
}

package arith

import (
	"fmt"

	"github.com/katalvlaran/lvmorph/core"
)

// constOp runs f8 or f32 over a Grey or Long image pair of equal depth.
func constOp(in, out *core.Image, f8 func(uint8) uint8, f32 func(uint32) uint32) error {
	if err := checkSame(out, in); err != nil {
		return err
	}
	if err := core.CheckDepth(in, core.Grey, core.Long); err != nil {
		return err
	}
	if in.Depth() == core.Long {
		each(in.Pix32(), out.Pix32(), f32)
	} else {
		each(in.Pix8(), out.Pix8(), f8)
	}
	return nil
}

func sat8(v uint32) uint8 {
	if v > 0xFF {
		return 0xFF
	}
	return uint8(v)
}

// Negate writes the depth complement of in: 1-v, 255-v or ^v.
func Negate(in, out *core.Image) error {
	if err := checkSame(out, in); err != nil {
		return err
	}
	switch in.Depth() {
	case core.Long:
		each(in.Pix32(), out.Pix32(), func(v uint32) uint32 { return ^v })
	case core.Grey:
		each(in.Pix8(), out.Pix8(), func(v uint8) uint8 { return ^v })
	default:
		each(in.Pix8(), out.Pix8(), func(v uint8) uint8 { return v ^ 1 })
	}
	return nil
}

// AddConst adds v to every pixel: saturated for Grey, wrapped for Long.
func AddConst(in, out *core.Image, v uint32) error {
	c := sat8(v)
	return constOp(in, out,
		func(p uint8) uint8 { return satAdd8(p, c) },
		func(p uint32) uint32 { return p + v })
}

// SubConst subtracts v from every pixel: floored for Grey, wrapped for Long.
func SubConst(in, out *core.Image, v uint32) error {
	c := sat8(v)
	return constOp(in, out,
		func(p uint8) uint8 { return satSub8(p, c) },
		func(p uint32) uint32 { return p - v })
}

// CeilingAddConst adds v to every pixel, clamped at the depth maximum.
func CeilingAddConst(in, out *core.Image, v uint32) error {
	c := sat8(v)
	return constOp(in, out,
		func(p uint8) uint8 { return satAdd8(p, c) },
		func(p uint32) uint32 { return satAdd32(p, v) })
}

// FloorSubConst subtracts v from every pixel, clamped at 0.
func FloorSubConst(in, out *core.Image, v uint32) error {
	c := sat8(v)
	return constOp(in, out,
		func(p uint8) uint8 { return satSub8(p, c) },
		func(p uint32) uint32 { return satSub32(p, v) })
}

// MulConst multiplies every pixel by v: saturated for Grey, wrapped for Long.
func MulConst(in, out *core.Image, v uint32) error {
	return constOp(in, out,
		func(p uint8) uint8 { return sat8(uint32(p) * min(v, 0x100)) },
		func(p uint32) uint32 { return p * v })
}

// DivConst divides every pixel by v. A Grey divisor above 255 acts as 255.
func DivConst(in, out *core.Image, v uint32) error {
	if v == 0 {
		return fmt.Errorf("%w: division by zero", core.ErrBadValue)
	}
	c := sat8(v)
	return constOp(in, out,
		func(p uint8) uint8 { return p / c },
		func(p uint32) uint32 { return p / v })
}

// Threshold writes a binary image holding 1 where low <= in <= high.
func Threshold(in, out *core.Image, low, high uint32) error {
	if err := core.CheckSize(out, in); err != nil {
		return err
	}
	if err := core.CheckDepth(out, core.Binary); err != nil {
		return err
	}
	p := out.Pix8()
	for i := range p {
		if v := in.At(i); v >= low && v <= high {
			p[i] = 1
		} else {
			p[i] = 0
		}
	}
	return nil
}

// Convert copies in into out across Binary and Grey: a binary 1 becomes
// 255 and only a grey 255 becomes binary 1. Equal depths copy.
func Convert(in, out *core.Image) error {
	if err := core.CheckSize(out, in); err != nil {
		return err
	}
	switch {
	case in.Depth() == out.Depth():
		return core.Copy(in, out)
	case in.Depth() == core.Binary && out.Depth() == core.Grey:
		each(in.Pix8(), out.Pix8(), func(v uint8) uint8 { return v * 0xFF })
	case in.Depth() == core.Grey && out.Depth() == core.Binary:
		each(in.Pix8(), out.Pix8(), func(v uint8) uint8 {
			if v == 0xFF {
				return 1
			}
			return 0
		})
	default:
		return fmt.Errorf("%w: cannot convert %s to %s", core.ErrBadDepth, in.Depth(), out.Depth())
	}
	return nil
}

// ConvertByMask maps a binary image onto a Grey or Long image:
// 0 becomes mFalse and 1 becomes mTrue (truncated to the output depth).
func ConvertByMask(in, out *core.Image, mFalse, mTrue uint32) error {
	if err := core.CheckSize(out, in); err != nil {
		return err
	}
	if err := core.CheckDepth(in, core.Binary); err != nil {
		return err
	}
	if err := core.CheckDepth(out, core.Grey, core.Long); err != nil {
		return err
	}
	for i, v := range in.Pix8() {
		if v != 0 {
			out.Set(i, mTrue)
		} else {
			out.Set(i, mFalse)
		}
	}
	return nil
}

// CopyBitPlane moves bit plane 0..7 between a Grey and a Binary image.
// Binary to Grey sets or clears that bit in out and leaves the other bits;
// Grey to Binary extracts it.
func CopyBitPlane(in, out *core.Image, plane int) error {
	if err := core.CheckSize(out, in); err != nil {
		return err
	}
	if plane < 0 || plane > 7 {
		return fmt.Errorf("%w: bit plane %d", core.ErrBadValue, plane)
	}
	bit := uint8(1) << plane
	po := out.Pix8()
	switch {
	case in.Depth() == core.Binary && out.Depth() == core.Grey:
		for i, v := range in.Pix8() {
			if v != 0 {
				po[i] |= bit
			} else {
				po[i] &^= bit
			}
		}
	case in.Depth() == core.Grey && out.Depth() == core.Binary:
		for i, v := range in.Pix8() {
			po[i] = (v & bit) >> plane
		}
	default:
		return fmt.Errorf("%w: bit plane copy from %s to %s", core.ErrBadDepth, in.Depth(), out.Depth())
	}
	return nil
}

// CopyBytePlane moves byte plane 0..3 between a Long and a Grey image.
// Grey to Long replaces that byte of out and leaves the others;
// Long to Grey extracts it.
func CopyBytePlane(in, out *core.Image, plane int) error {
	if err := core.CheckSize(out, in); err != nil {
		return err
	}
	if plane < 0 || plane > 3 {
		return fmt.Errorf("%w: byte plane %d", core.ErrBadValue, plane)
	}
	shift := uint(plane * 8)
	switch {
	case in.Depth() == core.Grey && out.Depth() == core.Long:
		po := out.Pix32()
		mask := ^(uint32(0xFF) << shift)
		for i, v := range in.Pix8() {
			po[i] = po[i]&mask | uint32(v)<<shift
		}
	case in.Depth() == core.Long && out.Depth() == core.Grey:
		po := out.Pix8()
		for i, v := range in.Pix32() {
			po[i] = uint8(v >> shift)
		}
	default:
		return fmt.Errorf("%w: byte plane copy from %s to %s", core.ErrBadDepth, in.Depth(), out.Depth())
	}
	return nil
}

// Lookup maps every Grey pixel through a 256-entry table.
// Table values are truncated to 8 bits.
func Lookup(in, out *core.Image, table []uint32) error {
	if err := checkSame(out, in); err != nil {
		return err
	}
	if err := core.CheckDepth(in, core.Grey); err != nil {
		return err
	}
	if len(table) != 256 {
		return fmt.Errorf("%w: lookup table has %d entries, want 256", core.ErrBadParameter, len(table))
	}
	each(in.Pix8(), out.Pix8(), func(v uint8) uint8 { return uint8(table[v]) })
	return nil
}

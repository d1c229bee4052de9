package arith

import (
	"fmt"

	"github.com/katalvlaran/lvmorph/core"
)

// pairOp holds the per-storage-class kernels of a two-operand operator.
// bin may be nil when the operator has no binary form.
type pairOp struct {
	bin  func(x, y uint8) uint8
	grey func(x, y uint8) uint8
	long func(x, y uint32) uint32
}

func zip[T core.Pixel](a, b, out []T, f func(x, y T) T) {
	for i := range out {
		out[i] = f(a[i], b[i])
	}
}

func each[T core.Pixel](in, out []T, f func(T) T) {
	for i := range out {
		out[i] = f(in[i])
	}
}

// checkSame requires every image to share the size and depth of out.
func checkSame(out *core.Image, in ...*core.Image) error {
	if err := core.CheckSize(out, in...); err != nil {
		return err
	}
	for _, img := range in {
		if img.Depth() != out.Depth() {
			return fmt.Errorf("%w: %s operand for %s output", core.ErrBadDepth, img.Depth(), out.Depth())
		}
	}
	return nil
}

// checkWidening requires out to carry the deepest of a and b.
func checkWidening(a, b, out *core.Image) error {
	if err := core.CheckSize(out, a, b); err != nil {
		return err
	}
	deepest := max(a.Depth(), b.Depth())
	if out.Depth() != deepest {
		return fmt.Errorf("%w: %s and %s operands need a %s output, got %s",
			core.ErrBadDepth, a.Depth(), b.Depth(), deepest, out.Depth())
	}
	return nil
}

// apply runs op over a, b into out, widening mixed-depth operands.
func apply(a, b, out *core.Image, op pairOp) error {
	if out.Depth() == core.Binary && op.bin == nil {
		return fmt.Errorf("%w: operator has no binary form", core.ErrBadDepth)
	}
	if a.Depth() == out.Depth() && b.Depth() == out.Depth() {
		switch out.Depth() {
		case core.Long:
			zip(a.Pix32(), b.Pix32(), out.Pix32(), op.long)
		case core.Grey:
			zip(a.Pix8(), b.Pix8(), out.Pix8(), op.grey)
		default:
			zip(a.Pix8(), b.Pix8(), out.Pix8(), op.bin)
		}
		return nil
	}
	// mixed depths: out is strictly deeper than one operand
	switch out.Depth() {
	case core.Long:
		p := out.Pix32()
		for i := range p {
			p[i] = op.long(a.At(i), b.At(i))
		}
	default:
		p := out.Pix8()
		for i := range p {
			p[i] = op.grey(uint8(a.At(i)), uint8(b.At(i)))
		}
	}
	return nil
}

func satAdd8(x, y uint8) uint8 {
	if s := uint16(x) + uint16(y); s < 0xFF {
		return uint8(s)
	}
	return 0xFF
}

func satSub8(x, y uint8) uint8 {
	if x > y {
		return x - y
	}
	return 0
}

func satAdd32(x, y uint32) uint32 {
	if s := x + y; s >= x {
		return s
	}
	return 0xFFFFFFFF
}

func satSub32(x, y uint32) uint32 {
	if x > y {
		return x - y
	}
	return 0
}

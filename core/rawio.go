package core

import (
	"encoding/binary"
	"fmt"
)

// ByteLen returns the raw buffer length for img: width*height*depth/8.
func ByteLen(img *Image) int {
	return img.width * img.height * int(img.depth) / 8
}

// Load copies a raw row-major buffer into img.
// It panics if len(data) != ByteLen(img).
func Load(img *Image, data []byte) {
	if len(data) != ByteLen(img) {
		panic(fmt.Sprintf("core: Load expects %d bytes, got %d", ByteLen(img), len(data)))
	}
	switch img.depth {
	case Binary:
		for i, b := range data {
			base := i * 8
			for bit := 0; bit < 8; bit++ {
				img.pix8[base+bit] = (b >> bit) & 1
			}
		}
	case Grey:
		copy(img.pix8, data)
	case Long:
		for i := range img.pix32 {
			img.pix32[i] = binary.LittleEndian.Uint32(data[4*i:])
		}
	}
}

// Extract returns the raw row-major buffer of img.
func Extract(img *Image) []byte {
	out := make([]byte, ByteLen(img))
	switch img.depth {
	case Binary:
		for i := range out {
			var b byte
			base := i * 8
			for bit := 0; bit < 8; bit++ {
				b |= img.pix8[base+bit] << bit
			}
			out[i] = b
		}
	case Grey:
		copy(out, img.pix8)
	case Long:
		for i, v := range img.pix32 {
			binary.LittleEndian.PutUint32(out[4*i:], v)
		}
	}
	return out
}

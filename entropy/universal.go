package entropy

import (
	"math/bits"

	"github.com/extrafox/qowi/bitstream"
)

// universalOrder returns floor(log2(v+2)), the order used by both EncodeUint
// and universalLen. v+2 is always >= 2, so order is always >= 1.
func universalOrder(v uint64) int {
	return bits.Len64(v+2) - 1
}

// universalLen returns the number of bits EncodeUint would write for v,
// without writing them. It is used to compare the CACHE/DELTA/VALUE
// candidate encodings by length before committing to one.
func universalLen(v uint64) int {
	return 2 * universalOrder(v)
}

// EncodeUint writes v as a unary order prefix (order-1 ones then a zero)
// followed by an order-bit offset delta, a universal code that favors small
// values: order = floor(log2(v+2)), offset = 2^order - 2, delta = v - offset.
func EncodeUint(w *bitstream.Writer, v uint64) {
	order := universalOrder(v)
	offset := uint64(1)<<uint(order) - 2
	delta := v - offset

	for i := 0; i < order-1; i++ {
		w.WriteBit(1)
	}
	w.WriteBit(0)
	w.WriteBits(delta, order)
}

// DecodeUint reads a value written by EncodeUint.
func DecodeUint(r *bitstream.Reader) (uint64, error) {
	order := 1
	offset := uint64(0)
	for {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		if bit == 0 {
			break
		}
		offset += uint64(1) << uint(order)
		order++
	}

	delta, err := r.ReadBits(order)
	if err != nil {
		return 0, err
	}
	return offset + delta, nil
}

package entropy

import "fmt"

// Triplet holds one coefficient value per channel at a single wavelet
// position. Its length is the image's channel count (1, 2, 3, or 4), not a
// fixed array, since channel count is a runtime property of the stream.
type Triplet []int64

// Equal reports whether two triplets hold the same values.
func (t Triplet) Equal(other Triplet) bool {
	if len(t) != len(other) {
		return false
	}
	for i := range t {
		if t[i] != other[i] {
			return false
		}
	}
	return true
}

// SubtractTriplets returns a - b element-wise. a and b must have equal
// length.
func SubtractTriplets(a, b Triplet) Triplet {
	out := make(Triplet, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

// key returns a comparable string encoding of t, used as a map key by Cache.
func (t Triplet) key() string {
	// Each component is variable-width in decimal with a separator; this is
	// never serialized to the stream, only used as an in-memory cache key.
	buf := make([]byte, 0, len(t)*8)
	for i, v := range t {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = fmt.Appendf(buf, "%d", v)
	}
	return string(buf)
}

package entropy

import (
	"fmt"

	"github.com/extrafox/qowi/bitstream"
)

// Opcode identifies one of the four 2-bit prefixes used to encode a
// triplet relative to the coder's running state.
type Opcode int

const (
	OpRun Opcode = iota
	OpCache
	OpDelta
	OpValue
)

// Coder serializes a sequence of triplets, picking for each one whichever of
// CACHE, DELTA, or VALUE produces the fewest bits, and coalescing runs of
// triplets equal to the previous one into a single RUN opcode.
type Coder struct {
	cache     *Cache
	last      Triplet
	runLength int
}

// NewCoder creates a Coder for triplets of the given channel count, backed
// by a cache of cacheSize. The all-zero triplet is the coder's initial
// state and is pre-seeded into the cache, matching the decoder's initial
// state.
func NewCoder(channels, cacheSize int) *Coder {
	c := &Coder{
		cache: NewCache(cacheSize),
		last:  make(Triplet, channels),
	}
	c.cache.Observe(c.last)
	return c
}

// EncodeNext encodes the next triplet in the sequence.
func (c *Coder) EncodeNext(w *bitstream.Writer, t Triplet) error {
	if len(t) != len(c.last) {
		// A triplet whose channel count doesn't match the coder's own state
		// can't be compared against last or the cache: every candidate
		// (CACHE, DELTA, VALUE) would be meaningless, so there is nothing
		// valid to encode it as.
		return fmt.Errorf("%w: triplet has %d channels, coder expects %d", ErrInternalInvariant, len(t), len(c.last))
	}

	if t.Equal(c.last) {
		c.runLength++
		return nil
	}

	if c.runLength > 0 {
		writeRun(w, c.runLength)
		c.runLength = 0
	}

	cacheLen, cachePos, cacheOK := c.cacheCandidate(t)
	deltaLen, deltaZigzag := c.deltaCandidate(t)
	valueLen, valueZigzag := valueCandidate(t)

	smallest := deltaLen
	if cacheOK && cacheLen < smallest {
		smallest = cacheLen
	}
	if valueLen < smallest {
		smallest = valueLen
	}

	// Ties favor CACHE over DELTA over VALUE, matching the order the
	// reference encoder compares candidates in.
	op := OpValue
	switch {
	case cacheOK && cacheLen == smallest:
		op = OpCache
	case deltaLen == smallest:
		op = OpDelta
	}

	switch op {
	case OpCache:
		w.WriteBits(uint64(OpCache), 2)
		EncodeUint(w, uint64(cachePos))
	case OpDelta:
		w.WriteBits(uint64(OpDelta), 2)
		for _, z := range deltaZigzag {
			EncodeUint(w, z)
		}
	case OpValue:
		w.WriteBits(uint64(OpValue), 2)
		for _, z := range valueZigzag {
			EncodeUint(w, z)
		}
	}

	c.cache.Observe(t)
	c.last = t
	return nil
}

// Finish flushes any pending run at the end of the sequence. It must be
// called exactly once, after the last call to EncodeNext.
func (c *Coder) Finish(w *bitstream.Writer) error {
	if c.runLength > 0 {
		writeRun(w, c.runLength)
		c.runLength = 0
	}
	return nil
}

func writeRun(w *bitstream.Writer, runLength int) {
	w.WriteBits(uint64(OpRun), 2)
	EncodeUint(w, uint64(runLength-1))
}

func (c *Coder) cacheCandidate(t Triplet) (length, pos int, ok bool) {
	pos, ok = c.cache.IndexOf(t)
	if !ok {
		return 0, 0, false
	}
	return 2 + universalLen(uint64(pos)), pos, true
}

func (c *Coder) deltaCandidate(t Triplet) (length int, zigzag []uint64) {
	delta := SubtractTriplets(c.last, t)
	zigzag = make([]uint64, len(delta))
	length = 2
	for i, d := range delta {
		zigzag[i] = Zigzag(d)
		length += universalLen(zigzag[i])
	}
	return length, zigzag
}

func valueCandidate(t Triplet) (length int, zigzag []uint64) {
	zigzag = make([]uint64, len(t))
	length = 2
	for i, v := range t {
		zigzag[i] = Zigzag(v)
		length += universalLen(zigzag[i])
	}
	return length, zigzag
}

// Decoder is the mirror image of Coder: it reconstructs the triplet sequence
// a Coder produced.
type Decoder struct {
	cache     *Cache
	last      Triplet
	channels  int
	runLength int
}

// NewDecoder creates a Decoder matching a Coder constructed with the same
// channels and cacheSize.
func NewDecoder(channels, cacheSize int) *Decoder {
	d := &Decoder{
		cache:    NewCache(cacheSize),
		last:     make(Triplet, channels),
		channels: channels,
	}
	d.cache.Observe(d.last)
	return d
}

// DecodeNext decodes the next triplet in the sequence.
func (d *Decoder) DecodeNext(r *bitstream.Reader) (Triplet, error) {
	if d.runLength > 0 {
		d.runLength--
		return d.last, nil
	}

	opBits, err := r.ReadBits(2)
	if err != nil {
		return nil, err
	}

	switch Opcode(opBits) {
	case OpRun:
		n, err := DecodeUint(r)
		if err != nil {
			return nil, err
		}
		d.runLength = int(n)
		return d.last, nil

	case OpCache:
		posU, err := DecodeUint(r)
		if err != nil {
			return nil, err
		}
		t, err := d.cache.At(int(posU))
		if err != nil {
			return nil, err
		}
		d.cache.Observe(t)
		d.last = t
		return t, nil

	case OpDelta:
		delta := make(Triplet, d.channels)
		for i := range delta {
			z, err := DecodeUint(r)
			if err != nil {
				return nil, err
			}
			delta[i] = Unzigzag(z)
		}
		t := SubtractTriplets(d.last, delta)
		d.cache.Observe(t)
		d.last = t
		return t, nil

	case OpValue:
		t := make(Triplet, d.channels)
		for i := range t {
			z, err := DecodeUint(r)
			if err != nil {
				return nil, err
			}
			t[i] = Unzigzag(z)
		}
		d.cache.Observe(t)
		d.last = t
		return t, nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidOpcode, opBits)
	}
}

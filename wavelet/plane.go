package wavelet

import "math/bits"

// Plane is a square N x N grid of Channels-wide coefficient triplets, stored
// as a flat row-major slice. N is always a power of two: the smallest one
// large enough to hold the source image's width and height, so the Haar
// decomposition can proceed in exact square quadrants down to a 1x1 root.
type Plane struct {
	N        int
	Channels int
	Data     []int64
}

// PlaneSize returns the side length NewPlaneFromImage would allocate for an
// image of the given width and height: the smallest power of two at least
// as large as both.
func PlaneSize(width, height int) int {
	return 1 << uint(ceilLog2(maxInt(width, height)))
}

// NewPlane allocates a zeroed n x n plane with the given channel count. n
// must be a power of two.
func NewPlane(n, channels int) *Plane {
	return &Plane{
		N:        n,
		Channels: channels,
		Data:     make([]int64, n*n*channels),
	}
}

// NewPlaneFromImage builds a Plane sized to the smallest power of two at
// least as large as both width and height, with the source pixels copied
// into its top-left width x height corner (row-major, width*channels
// stride) and the remainder zero-filled.
//
// It takes raw dimensions and a pixel slice rather than an *qowi.Image so
// that this package has no dependency on the qowi package, which itself
// depends on wavelet.Plane; qowi adapts its Image type to these arguments.
func NewPlaneFromImage(width, height, channels int, pix []uint8) *Plane {
	n := 1 << uint(ceilLog2(maxInt(width, height)))
	p := NewPlane(n, channels)

	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			dst := p.At(i, j)
			src := pix[(i*width+j)*channels : (i*width+j)*channels+channels]
			for k := 0; k < channels; k++ {
				dst[k] = int64(src[k])
			}
		}
	}
	return p
}

// At returns the Channels-length slice of coefficients at (i, j). The
// returned slice aliases p.Data and may be written through.
func (p *Plane) At(i, j int) []int64 {
	off := (i*p.N + j) * p.Channels
	return p.Data[off : off+p.Channels]
}

// NumLevels returns log2(N), the number of times the plane can be halved
// before reaching a single root cell.
func (p *Plane) NumLevels() int {
	return ceilLog2(p.N)
}

// ToImage copies the plane's top-left width x height corner into a
// row-major uint8 pixel slice, clamping each channel value to [0, 255].
func (p *Plane) ToImage(width, height int) []uint8 {
	out := make([]uint8, width*height*p.Channels)
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			src := p.At(i, j)
			dst := out[(i*width+j)*p.Channels : (i*width+j)*p.Channels+p.Channels]
			for k := 0; k < p.Channels; k++ {
				v := src[k]
				switch {
				case v < 0:
					v = 0
				case v > 255:
					v = 255
				}
				dst[k] = uint8(v)
			}
		}
	}
	return out
}

func ceilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

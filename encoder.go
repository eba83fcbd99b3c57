package qowi

import (
	"github.com/extrafox/qowi/bitstream"
	"github.com/extrafox/qowi/entropy"
	"github.com/extrafox/qowi/wavelet"
)

// Encode serializes img into a QOWI byte stream under opts.
func Encode(img *Image, opts Options) ([]byte, error) {
	if img.Width <= 0 || img.Width > 65535 || img.Height <= 0 || img.Height > 65535 {
		return nil, ErrInvalidInput
	}
	if img.Channels < 1 || img.Channels > 4 {
		return nil, ErrInvalidInput
	}
	opts = opts.normalize()

	plane := wavelet.NewPlaneFromImage(img.Width, img.Height, img.Channels, img.Pix)
	plane.Forward(opts.WaveletLevels, opts.PrecisionDigits)

	if opts.HardThreshold >= 0 {
		plane.ApplyHardThreshold(opts.WaveletLevels, int64(opts.HardThreshold), opts.PrecisionDigits)
	} else if opts.SoftThreshold >= 0 {
		plane.ApplySoftThreshold(opts.WaveletLevels, int64(opts.SoftThreshold), opts.PrecisionDigits)
	}

	header := Header{
		Width:           img.Width,
		Height:          img.Height,
		ColorDepth:      img.Channels,
		CacheSize:       opts.CacheSize,
		WaveletLevels:   opts.WaveletLevels,
		PrecisionDigits: opts.PrecisionDigits,
	}

	w := bitstream.NewWriter()
	if err := header.write(w); err != nil {
		return nil, err
	}

	root := plane.At(0, 0)
	for _, v := range root {
		entropy.EncodeUint(w, entropy.Zigzag(v))
	}

	if err := writeCoefficients(w, plane, opts.CacheSize); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// traversalFrame is one entry on the depth-first traversal stack: a
// (level, band, i, j) cell to encode or decode next.
type traversalFrame struct {
	level int
	band  wavelet.Band
	i, j  int
}

// writeCoefficients walks every non-root coefficient of plane in the order
// defined by the traversal stack and encodes each one with coder. The
// traversal always covers the plane's full depth regardless of how many
// levels Forward actually transformed: levels below that depth still hold
// meaningful (if untransformed) values that the decoder must mirror back
// into the same positions.
//
// A plane with numLevels == 0 (a single-pixel image, N == 1) has no
// non-root coefficients at all: the root LL written by Encode is the
// entire stream, and the traversal is skipped entirely rather than seeded
// with frames that would index past the plane's single cell.
func writeCoefficients(w *bitstream.Writer, plane *wavelet.Plane, cacheSize int) error {
	numLevels := plane.NumLevels()
	if numLevels == 0 {
		return nil
	}

	coder := entropy.NewCoder(plane.Channels, cacheSize)

	stack := []traversalFrame{
		{0, wavelet.HH, 0, 0},
		{0, wavelet.LH, 0, 0},
		{0, wavelet.HL, 0, 0},
	}

	for len(stack) > 0 {
		n := len(stack) - 1
		f := stack[n]
		stack = stack[:n]

		pi, pj := wavelet.Position{Level: f.level, Band: f.band, I: f.i, J: f.j}.Coords()
		if err := assertInvariant(pi >= 0 && pi < plane.N && pj >= 0 && pj < plane.N, "traversal position out of plane bounds"); err != nil {
			return err
		}
		if err := coder.EncodeNext(w, entropy.Triplet(plane.At(pi, pj))); err != nil {
			return err
		}

		if f.level+1 < numLevels {
			stack = append(stack,
				traversalFrame{f.level + 1, f.band, 2 * f.i, 2 * f.j},
				traversalFrame{f.level + 1, f.band, 2 * f.i, 2*f.j + 1},
				traversalFrame{f.level + 1, f.band, 2*f.i + 1, 2 * f.j},
				traversalFrame{f.level + 1, f.band, 2*f.i + 1, 2*f.j + 1},
			)
		}
	}

	return coder.Finish(w)
}

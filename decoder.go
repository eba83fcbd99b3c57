package qowi

import (
	"fmt"

	"github.com/extrafox/qowi/bitstream"
	"github.com/extrafox/qowi/entropy"
	"github.com/extrafox/qowi/wavelet"
)

// Decode parses a QOWI byte stream produced by Encode and reconstructs the
// pixel matrix it represents.
func Decode(data []byte) (*Image, error) {
	r := bitstream.NewReader(data)

	header, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	n := wavelet.PlaneSize(header.Width, header.Height)
	plane := wavelet.NewPlane(n, header.ColorDepth)

	root := plane.At(0, 0)
	for k := range root {
		z, err := entropy.DecodeUint(r)
		if err != nil {
			return nil, wrapStreamErr(fmt.Sprintf("reading root LL channel %d", k), err)
		}
		root[k] = entropy.Unzigzag(z)
	}

	if err := readCoefficients(r, plane, header.CacheSize); err != nil {
		return nil, err
	}

	plane.Inverse(header.WaveletLevels, header.PrecisionDigits)

	img, err := NewImage(header.Width, header.Height, header.ColorDepth)
	if err != nil {
		return nil, err
	}
	copy(img.Pix, plane.ToImage(header.Width, header.Height))
	return img, nil
}

// readCoefficients walks the same traversal order writeCoefficients used
// and fills plane with the decoded triplet at each position.
//
// A plane with numLevels == 0 (a single-pixel image) has no non-root
// coefficients; writeCoefficients wrote none, so this reads none.
func readCoefficients(r *bitstream.Reader, plane *wavelet.Plane, cacheSize int) error {
	numLevels := plane.NumLevels()
	if numLevels == 0 {
		return nil
	}

	decoder := entropy.NewDecoder(plane.Channels, cacheSize)

	stack := []traversalFrame{
		{0, wavelet.HH, 0, 0},
		{0, wavelet.LH, 0, 0},
		{0, wavelet.HL, 0, 0},
	}

	for len(stack) > 0 {
		n := len(stack) - 1
		f := stack[n]
		stack = stack[:n]

		t, err := decoder.DecodeNext(r)
		if err != nil {
			return wrapStreamErr(fmt.Sprintf("level %d band %s (%d,%d)", f.level, f.band, f.i, f.j), err)
		}

		pi, pj := wavelet.Position{Level: f.level, Band: f.band, I: f.i, J: f.j}.Coords()
		if err := assertInvariant(pi >= 0 && pi < plane.N && pj >= 0 && pj < plane.N, "traversal position out of plane bounds"); err != nil {
			return err
		}
		dst := plane.At(pi, pj)
		copy(dst, t)

		if f.level+1 < numLevels {
			stack = append(stack,
				traversalFrame{f.level + 1, f.band, 2 * f.i, 2 * f.j},
				traversalFrame{f.level + 1, f.band, 2 * f.i, 2*f.j + 1},
				traversalFrame{f.level + 1, f.band, 2*f.i + 1, 2 * f.j},
				traversalFrame{f.level + 1, f.band, 2*f.i + 1, 2*f.j + 1},
			)
		}
	}

	return nil
}

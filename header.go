package qowi

import (
	"fmt"

	"github.com/extrafox/qowi/bitstream"
)

// Header carries the fixed-width fields written at the start of every QOWI
// stream, in this exact order (62 bits total): width (16), height (16),
// color_depth-1 (2), cache_size (16), wavelet_levels (4), precision_digits
// (8). Field widths and order match the reference implementation's header
// layout exactly.
type Header struct {
	Width, Height   int
	ColorDepth      int
	CacheSize       int
	WaveletLevels   int
	PrecisionDigits int
}

func (h Header) write(w *bitstream.Writer) error {
	if h.Width <= 0 || h.Width > 65535 {
		return fmt.Errorf("%w: width %d out of range", ErrInvalidInput, h.Width)
	}
	if h.Height <= 0 || h.Height > 65535 {
		return fmt.Errorf("%w: height %d out of range", ErrInvalidInput, h.Height)
	}
	if h.ColorDepth < 1 || h.ColorDepth > 4 {
		return fmt.Errorf("%w: color depth %d out of range", ErrInvalidInput, h.ColorDepth)
	}

	w.WriteBits(uint64(h.Width), 16)
	w.WriteBits(uint64(h.Height), 16)
	w.WriteBits(uint64(h.ColorDepth-1), 2)
	w.WriteBits(uint64(h.CacheSize), 16)
	w.WriteBits(uint64(h.WaveletLevels), 4)
	w.WriteBits(uint64(h.PrecisionDigits), 8)
	return nil
}

func readHeader(r *bitstream.Reader) (Header, error) {
	width, err := r.ReadBits(16)
	if err != nil {
		return Header{}, fmt.Errorf("%w: reading width: %w", ErrTruncatedStream, err)
	}
	height, err := r.ReadBits(16)
	if err != nil {
		return Header{}, fmt.Errorf("%w: reading height: %w", ErrTruncatedStream, err)
	}
	colorDepthMinusOne, err := r.ReadBits(2)
	if err != nil {
		return Header{}, fmt.Errorf("%w: reading color depth: %w", ErrTruncatedStream, err)
	}
	cacheSize, err := r.ReadBits(16)
	if err != nil {
		return Header{}, fmt.Errorf("%w: reading cache size: %w", ErrTruncatedStream, err)
	}
	waveletLevels, err := r.ReadBits(4)
	if err != nil {
		return Header{}, fmt.Errorf("%w: reading wavelet levels: %w", ErrTruncatedStream, err)
	}
	precisionDigits, err := r.ReadBits(8)
	if err != nil {
		return Header{}, fmt.Errorf("%w: reading precision digits: %w", ErrTruncatedStream, err)
	}

	h := Header{
		Width:           int(width),
		Height:          int(height),
		ColorDepth:      int(colorDepthMinusOne) + 1,
		CacheSize:       int(cacheSize),
		WaveletLevels:   int(waveletLevels),
		PrecisionDigits: int(precisionDigits),
	}
	if h.Width == 0 {
		return Header{}, fmt.Errorf("%w: width is 0", ErrMalformedHeader)
	}
	if h.Height == 0 {
		return Header{}, fmt.Errorf("%w: height is 0", ErrMalformedHeader)
	}
	return h, nil
}

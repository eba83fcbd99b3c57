// Package qowi implements the Quite OK Wavelet Image codec: a lossless or
// precision-limited lossy image format built on a multilevel integer Haar
// wavelet transform and a recency-and-delta entropy coder.
package qowi

import (
	"errors"
	"fmt"

	"github.com/extrafox/qowi/bitstream"
	"github.com/extrafox/qowi/entropy"
)

// Error taxonomy for Encode and Decode. All are sentinel errors: callers
// should use errors.Is against these values, not string matching, since the
// wrapped message may include positional detail.
var (
	// ErrInvalidInput is returned when an image's dimensions or channel
	// count are out of range for Encode.
	ErrInvalidInput = errors.New("qowi: invalid input")

	// ErrMalformedHeader is returned when a decoded header field takes an
	// impossible value (e.g. width 0).
	ErrMalformedHeader = errors.New("qowi: malformed header")

	// ErrTruncatedStream is returned when the bitstream ends before the
	// expected number of coefficients has been read.
	ErrTruncatedStream = errors.New("qowi: truncated stream")

	// ErrInvalidOpcode is returned when a 2-bit opcode does not correspond
	// to RUN, CACHE, DELTA, or VALUE. All four two-bit patterns are
	// assigned, so Decode never returns it, even for malformed input.
	ErrInvalidOpcode = entropy.ErrInvalidOpcode

	// ErrCacheIndexOutOfRange is returned when a decoded CACHE position
	// exceeds the cache's current size.
	ErrCacheIndexOutOfRange = entropy.ErrCacheIndexOutOfRange

	// ErrInternalInvariant indicates an assertion about encoder or decoder
	// state was violated. It should never surface for well-formed input and
	// correct code; seeing it indicates a bug in this package.
	ErrInternalInvariant = entropy.ErrInternalInvariant
)

// assertInvariant returns an error wrapping ErrInternalInvariant when cond is
// false, and nil otherwise. It guards the few points in the traversal where a
// violation would mean the traversal itself computed an inconsistent
// position, not that the input stream is malformed.
func assertInvariant(cond bool, msg string) error {
	if cond {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInternalInvariant, msg)
}

// wrapStreamErr classifies an error from the bitstream/entropy layers into
// the package's taxonomy: a bare bitstream.ErrTruncated becomes
// ErrTruncatedStream; anything else (cache-index, opcode errors) already
// carries its own sentinel and is passed through with added position
// context.
func wrapStreamErr(where string, err error) error {
	if errors.Is(err, bitstream.ErrTruncated) {
		return fmt.Errorf("%w: %s: %w", ErrTruncatedStream, where, err)
	}
	return fmt.Errorf("%s: %w", where, err)
}

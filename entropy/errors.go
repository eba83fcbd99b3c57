package entropy

import "errors"

// ErrCacheIndexOutOfRange is returned by Cache.At and by Decoder.DecodeNext
// when a CACHE opcode names a position beyond the cache's current size.
// qowi.ErrCacheIndexOutOfRange is the same sentinel, re-exported for callers
// that only import the top-level package.
var ErrCacheIndexOutOfRange = errors.New("entropy: cache index out of range")

// ErrInvalidOpcode is returned by Decoder.DecodeNext when the 2-bit opcode
// read from the stream does not match RUN, CACHE, DELTA, or VALUE (it always
// will, since all 4 two-bit patterns are assigned, but the check guards
// against a caller misusing DecodeNext on an unrelated bitstream).
var ErrInvalidOpcode = errors.New("entropy: invalid opcode")

// ErrInternalInvariant indicates an assertion about the coder's state was
// violated. qowi.ErrInternalInvariant is the same sentinel, re-exported for
// callers that only import the top-level package.
var ErrInternalInvariant = errors.New("entropy: internal invariant violated")

package qowi

// Options configures Encode. Zero values are not meaningful on their own;
// use DefaultOptions and override only the fields that matter, since -1
// disables the two threshold fields rather than 0.
type Options struct {
	// HardThreshold, if >= 0, zeroes detail coefficients with scaled
	// magnitude below this value. -1 disables hard thresholding.
	HardThreshold int

	// SoftThreshold, if >= 0, shrinks detail coefficients toward zero by
	// this scaled amount. -1 disables soft thresholding.
	SoftThreshold int

	// WaveletLevels bounds how many levels of the Haar decomposition run;
	// clamped to [0, 15]. Default 10.
	WaveletLevels int

	// PrecisionDigits enables precision-control (lossy) mode when > 0 and
	// less than a level's accumulated scaling factor; clamped to [0, 255].
	// Default 0 (lossless).
	PrecisionDigits int

	// CacheSize bounds the entropy coder's recency cache. The header field
	// is 16 bits, so this is clamped to [0, 65535]. Default 65533, matching
	// the reference implementation's historical default.
	CacheSize int
}

// DefaultOptions returns the codec's default settings: lossless, 10 wavelet
// levels, no thresholding, a 65533-entry cache.
func DefaultOptions() Options {
	return Options{
		HardThreshold:   -1,
		SoftThreshold:   -1,
		WaveletLevels:   10,
		PrecisionDigits: 0,
		CacheSize:       65533,
	}
}

// normalize clamps option fields to their valid ranges. It never errors:
// out-of-range values after clamping cannot occur, per the codec's error
// taxonomy.
func (o Options) normalize() Options {
	if o.WaveletLevels < 0 {
		o.WaveletLevels = 0
	}
	if o.WaveletLevels > 15 {
		o.WaveletLevels = 15
	}
	if o.PrecisionDigits < 0 {
		o.PrecisionDigits = 0
	}
	if o.PrecisionDigits > 255 {
		o.PrecisionDigits = 255
	}
	if o.CacheSize < 0 {
		o.CacheSize = 0
	}
	if o.CacheSize > 65535 {
		o.CacheSize = 65535
	}
	if o.HardThreshold < -1 {
		o.HardThreshold = -1
	}
	if o.SoftThreshold < -1 {
		o.SoftThreshold = -1
	}
	return o
}

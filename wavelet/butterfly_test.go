package wavelet

import "testing"

func TestButterflyRoundTrip(t *testing.T) {
	for a := int64(0); a < 256; a += 17 {
		for b := int64(0); b < 256; b += 23 {
			for c := int64(0); c < 256; c += 29 {
				for d := int64(0); d < 256; d += 31 {
					ll, hl, lh, hh := ButterflyForward(a, b, c, d)
					ga, gb, gc, gd := ButterflyInverse(ll, hl, lh, hh)
					if ga != a || gb != b || gc != c || gd != d {
						t.Fatalf("round trip(%d,%d,%d,%d) = (%d,%d,%d,%d)", a, b, c, d, ga, gb, gc, gd)
					}
				}
			}
		}
	}
}

func TestButterflyForward_KnownValues(t *testing.T) {
	ll, hl, lh, hh := ButterflyForward(1, 2, 3, 4)
	if ll != 10 || hl != -4 || lh != -2 || hh != 0 {
		t.Errorf("ButterflyForward(1,2,3,4) = (%d,%d,%d,%d), want (10,-4,-2,0)", ll, hl, lh, hh)
	}
}

func FuzzButterflyRoundTrip(f *testing.F) {
	f.Add(int64(0), int64(0), int64(0), int64(0))
	f.Add(int64(255), int64(0), int64(128), int64(64))
	f.Fuzz(func(t *testing.T, a, b, c, d int64) {
		// Keep inputs within a range where 4x growth per level over 15
		// levels cannot overflow int64.
		clamp := func(x int64) int64 {
			if x < -1<<20 {
				return -1 << 20
			}
			if x > 1<<20 {
				return 1 << 20
			}
			return x
		}
		a, b, c, d = clamp(a), clamp(b), clamp(c), clamp(d)

		ll, hl, lh, hh := ButterflyForward(a, b, c, d)
		ga, gb, gc, gd := ButterflyInverse(ll, hl, lh, hh)
		if ga != a || gb != b || gc != c || gd != d {
			t.Fatalf("round trip(%d,%d,%d,%d) = (%d,%d,%d,%d)", a, b, c, d, ga, gb, gc, gd)
		}
	})
}

func TestRescale(t *testing.T) {
	tests := []struct {
		x, expected int64
		digits      int
	}{
		{5, 5, 0},
		{5, 10, 1},
		{5, 20, 2},
		{4, 2, -1},
		{5, 3, -1},  // 2.5 rounds away from zero to 3
		{3, 2, -1},  // 1.5 rounds away from zero to 2
		{-5, -3, -1},
		{-3, -2, -1},
		{0, 0, -1},
	}
	for _, tt := range tests {
		if got := Rescale(tt.x, tt.digits); got != tt.expected {
			t.Errorf("Rescale(%d, %d) = %d, want %d", tt.x, tt.digits, got, tt.expected)
		}
	}
}

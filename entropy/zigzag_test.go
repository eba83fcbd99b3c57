package entropy

import (
	"math"
	"testing"
)

func TestZigzag(t *testing.T) {
	tests := []struct {
		in       int64
		expected uint64
	}{
		{0, 0},
		{1, 2},
		{-1, 3},
		{2, 4},
		{-2, 5},
		{3, 6},
		{-3, 7},
		{100, 200},
		{-100, 201},
	}
	for _, tt := range tests {
		if got := Zigzag(tt.in); got != tt.expected {
			t.Errorf("Zigzag(%d) = %d, want %d", tt.in, got, tt.expected)
		}
	}
}

func TestUnzigzag(t *testing.T) {
	tests := []struct {
		in       uint64
		expected int64
	}{
		{0, 0},
		{2, 1},
		{3, -1},
		{4, 2},
		{5, -2},
		{200, 100},
		{201, -100},
	}
	for _, tt := range tests {
		if got := Unzigzag(tt.in); got != tt.expected {
			t.Errorf("Unzigzag(%d) = %d, want %d", tt.in, got, tt.expected)
		}
	}
}

func TestZigzagRoundTrip(t *testing.T) {
	for x := int64(-5000); x <= 5000; x++ {
		if got := Unzigzag(Zigzag(x)); got != x {
			t.Fatalf("round trip failed for %d: got %d", x, got)
		}
	}
}

func FuzzZigzagRoundTrip(f *testing.F) {
	for _, seed := range []int64{0, 1, -1, 2, -2, 1 << 30, -(1 << 30)} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, x int64) {
		if x == math.MinInt64 {
			t.Skip("negation overflows at the int64 boundary; out of range for wavelet coefficients")
		}
		if got := Unzigzag(Zigzag(x)); got != x {
			t.Fatalf("round trip failed for %d: got %d", x, got)
		}
	})
}

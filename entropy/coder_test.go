package entropy

import (
	"testing"

	"github.com/extrafox/qowi/bitstream"
)

func TestCoderDecoder_RoundTrip(t *testing.T) {
	sequence := []Triplet{
		{0, 0, 0},
		{0, 0, 0}, // RUN candidate
		{0, 0, 0},
		{10, 10, 10},
		{10, 10, 10},
		{-5, 3, 7},
		{10, 10, 10}, // should hit the cache
		{0, 0, 0},    // should hit the cache
		{1, 2, 3},
	}

	w := bitstream.NewWriter()
	enc := NewCoder(3, 16)
	for _, tr := range sequence {
		if err := enc.EncodeNext(w, tr); err != nil {
			t.Fatalf("EncodeNext(%v): %v", tr, err)
		}
	}
	if err := enc.Finish(w); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	r := bitstream.NewReader(w.Bytes())
	dec := NewDecoder(3, 16)
	for i, want := range sequence {
		got, err := dec.DecodeNext(r)
		if err != nil {
			t.Fatalf("DecodeNext at %d: %v", i, err)
		}
		if !got.Equal(want) {
			t.Errorf("DecodeNext at %d = %v, want %v", i, got, want)
		}
	}
}

func TestCoderDecoder_LongRun(t *testing.T) {
	sequence := make([]Triplet, 0, 50)
	for i := 0; i < 50; i++ {
		sequence = append(sequence, Triplet{7, 7, 7})
	}
	sequence = append(sequence, Triplet{1, 1, 1})

	w := bitstream.NewWriter()
	enc := NewCoder(3, 16)
	for _, tr := range sequence {
		if err := enc.EncodeNext(w, tr); err != nil {
			t.Fatalf("EncodeNext(%v): %v", tr, err)
		}
	}
	if err := enc.Finish(w); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	r := bitstream.NewReader(w.Bytes())
	dec := NewDecoder(3, 16)
	for i, want := range sequence {
		got, err := dec.DecodeNext(r)
		if err != nil {
			t.Fatalf("DecodeNext at %d: %v", i, err)
		}
		if !got.Equal(want) {
			t.Errorf("DecodeNext at %d = %v, want %v", i, got, want)
		}
	}
}

func TestCoderDecoder_SingleChannel(t *testing.T) {
	sequence := []Triplet{{0}, {1}, {1}, {2}, {1}, {0}}

	w := bitstream.NewWriter()
	enc := NewCoder(1, 8)
	for _, tr := range sequence {
		if err := enc.EncodeNext(w, tr); err != nil {
			t.Fatalf("EncodeNext(%v): %v", tr, err)
		}
	}
	if err := enc.Finish(w); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	r := bitstream.NewReader(w.Bytes())
	dec := NewDecoder(1, 8)
	for i, want := range sequence {
		got, err := dec.DecodeNext(r)
		if err != nil {
			t.Fatalf("DecodeNext at %d: %v", i, err)
		}
		if !got.Equal(want) {
			t.Errorf("DecodeNext at %d = %v, want %v", i, got, want)
		}
	}
}

func FuzzCoderDecoderRoundTrip(f *testing.F) {
	f.Add([]byte{0, 0, 10, 10, 5, 1, 10, 0})
	f.Fuzz(func(t *testing.T, raw []byte) {
		if len(raw) == 0 || len(raw) > 256 {
			t.Skip("empty or oversized input")
		}

		sequence := make([]Triplet, 0, len(raw))
		for _, b := range raw {
			v := int64(b) - 128
			sequence = append(sequence, Triplet{v, v, v})
		}

		w := bitstream.NewWriter()
		enc := NewCoder(3, 32)
		for _, tr := range sequence {
			if err := enc.EncodeNext(w, tr); err != nil {
				t.Fatalf("EncodeNext(%v): %v", tr, err)
			}
		}
		if err := enc.Finish(w); err != nil {
			t.Fatalf("Finish: %v", err)
		}

		r := bitstream.NewReader(w.Bytes())
		dec := NewDecoder(3, 32)
		for i, want := range sequence {
			got, err := dec.DecodeNext(r)
			if err != nil {
				t.Fatalf("DecodeNext at %d: %v", i, err)
			}
			if !got.Equal(want) {
				t.Fatalf("DecodeNext at %d = %v, want %v", i, got, want)
			}
		}
	})
}

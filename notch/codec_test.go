package notch

import (
	"errors"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for r := 0; r <= MaxPattern; r++ {
		p, err := Decode(r)
		if err != nil {
			t.Fatalf("Decode(%d) returned error: %v", r, err)
		}
		if q := Encode(p); q != r {
			t.Errorf("Encode(Decode(%d)) = %d", r, q)
		}
	}
}

func TestDecodeRejectsOutOfRange(t *testing.T) {
	for _, r := range []int{-1, MaxPattern + 1, 128, 1 << 20} {
		_, err := Decode(r)
		var mpe *MalformedPatternError
		if !errors.As(err, &mpe) {
			t.Fatalf("Decode(%d): expected MalformedPatternError, got %v", r, err)
		}
		if mpe.Value != r || mpe.Bits != Slots {
			t.Errorf("Decode(%d): unexpected error payload %+v", r, mpe)
		}
	}
}

func TestDecodeLowBitFirst(t *testing.T) {
	p, err := Decode(0b101110)
	if err != nil {
		t.Fatal(err)
	}
	want := Pattern{false, true, true, true, false, true}
	if p != want {
		t.Errorf("Decode(46) = %v, want %v", p, want)
	}
}

func TestPopcount(t *testing.T) {
	tests := []struct {
		r, want int
	}{
		{0, 0},
		{1, 1},
		{7, 3},
		{46, 4},
		{63, 6},
	}
	for _, tt := range tests {
		if got := Popcount(tt.r); got != tt.want {
			t.Errorf("Popcount(%d) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

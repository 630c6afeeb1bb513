package notch

import "testing"

func TestCanonicalIdempotent(t *testing.T) {
	for r := 0; r <= MaxPattern; r++ {
		c := Canonical(r)
		if Canonical(c) != c {
			t.Fatalf("Canonical not idempotent for %d: %d then %d", r, c, Canonical(c))
		}
	}
}

func TestCanonicalForms(t *testing.T) {
	forms := CanonicalForms()
	if len(forms) != 24 {
		t.Fatalf("expected 24 canonical forms, got %d", len(forms))
	}
	set := make(map[int]bool, len(forms))
	prev := -1
	for _, f := range forms {
		if f < 0 || f > MaxPattern {
			t.Errorf("canonical form %d out of range", f)
		}
		if f <= prev {
			t.Errorf("canonical forms not strictly increasing around %d", f)
		}
		if Canonical(f) != f {
			t.Errorf("form %d is not its own canonical form", f)
		}
		set[f] = true
		prev = f
	}
	for r := 0; r <= MaxPattern; r++ {
		if !set[Canonical(r)] {
			t.Errorf("Canonical(%d) = %d is not a listed form", r, Canonical(r))
		}
	}
}

func TestCanonicalOfOrientedViews(t *testing.T) {
	// 29, 43, 46 and 53 are the four oriented views of one physical stick.
	for _, r := range []int{29, 43, 46, 53} {
		if got := Canonical(r); got != 29 {
			t.Errorf("Canonical(%d) = %d, want 29", r, got)
		}
	}
}

func TestIsCanonical(t *testing.T) {
	tests := []struct {
		r    int
		want bool
	}{
		{2, true},
		{7, true},
		{13, true},
		{16, false}, // 16 canonicalizes to 2
		{46, false},
		{-1, false},
		{64, false},
	}
	for _, tt := range tests {
		if got := IsCanonical(tt.r); got != tt.want {
			t.Errorf("IsCanonical(%d) = %t, want %t", tt.r, got, tt.want)
		}
	}
}

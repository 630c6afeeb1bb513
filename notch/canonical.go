package notch

import "sync"

// Canonical returns the smallest encoding among the 4 oriented views of r.
// Two patterns describe the same physical stick iff their canonical
// encodings are equal.
func Canonical(r int) int {
	min := r
	for _, o := range Orientations[1:] {
		if q := Reorient(r, o); q < min {
			min = q
		}
	}
	return min
}

// IsCanonical reports whether r is a valid pattern that is its own
// canonical form. Stick inventories are cataloged by canonical pattern, so
// this is the validity check for an inventory entry.
func IsCanonical(r int) bool {
	return r >= 0 && r <= MaxPattern && Canonical(r) == r
}

var canonicalForms struct {
	once  sync.Once
	forms []int
}

// CanonicalForms returns the 24 canonical stick patterns in increasing
// order. The set is fixed for 6-groove sticks; it is computed once by
// sweeping the 64 possible encodings and cached. Callers must not modify
// the returned slice.
func CanonicalForms() []int {
	canonicalForms.once.Do(func() {
		for r := 0; r <= MaxPattern; r++ {
			if Canonical(r) == r {
				canonicalForms.forms = append(canonicalForms.forms, r)
			}
		}
	})
	return canonicalForms.forms
}

package notch

import "fmt"

// An Orientation is one of the 4 allowed placements of a stick. Together
// they form the symmetry group of a rectangle: composing any two distinct
// non-identity orientations yields the third.
type Orientation uint8

const (
	// Identity leaves the stick as-is.
	Identity Orientation = iota
	// MirrorLR flips the stick left-right: slots 0 and 2 swap, as do 3 and 5.
	MirrorLR
	// MirrorTB flips the stick top-bottom: the two rows swap wholesale.
	MirrorTB
	// Rotate180 gives the stick a half turn: the slot order fully reverses.
	Rotate180
)

// Orientations lists every orientation, identity first.
var Orientations = [...]Orientation{Identity, MirrorLR, MirrorTB, Rotate180}

func (o Orientation) String() string {
	switch o {
	case Identity:
		return "identity"
	case MirrorLR:
		return "mirror-lr"
	case MirrorTB:
		return "mirror-tb"
	case Rotate180:
		return "rotate-180"
	}
	return fmt.Sprintf("orientation(%d)", uint8(o))
}

// slotPerm holds, per orientation, the unoriented slot whose flag is seen
// at each oriented slot. All four permutations are involutions.
var slotPerm = [len(Orientations)][Slots]int{
	Identity:  {0, 1, 2, 3, 4, 5},
	MirrorLR:  {2, 1, 0, 5, 4, 3},
	MirrorTB:  {3, 4, 5, 0, 1, 2},
	Rotate180: {5, 4, 3, 2, 1, 0},
}

// Remap returns the unoriented slot index read at slot i under o.
func Remap(o Orientation, i int) int {
	return slotPerm[o][i]
}

// At reports whether the oriented view of encoded pattern r has a groove at
// slot i. One table lookup and one shift; safe to call in tight loops.
func At(r int, o Orientation, i int) bool {
	return r>>slotPerm[o][i]&1 == 1
}

// Apply returns the expanded pattern as seen under orientation o.
func Apply(p Pattern, o Orientation) Pattern {
	var q Pattern
	for i := range q {
		q[i] = p[slotPerm[o][i]]
	}
	return q
}

// Reorient returns the encoded pattern as seen under orientation o.
func Reorient(r int, o Orientation) int {
	q := 0
	for i := 0; i < Slots; i++ {
		if At(r, o, i) {
			q |= 1 << i
		}
	}
	return q
}

// SymmetricLR reports whether r reads the same after a left-right mirror.
func SymmetricLR(r int) bool {
	return r>>0&1 == r>>2&1 && r>>3&1 == r>>5&1
}

// SymmetricTB reports whether r reads the same after a top-bottom mirror.
func SymmetricTB(r int) bool {
	return r>>0&1 == r>>3&1 && r>>1&1 == r>>4&1 && r>>2&1 == r>>5&1
}

// SymmetricRot reports whether r reads the same after a half turn. Any
// pattern with both mirror symmetries has this one too.
func SymmetricRot(r int) bool {
	return r>>0&1 == r>>5&1 && r>>1&1 == r>>4&1 && r>>2&1 == r>>3&1
}

// Redundant returns the orientations of r that reproduce a groove layout
// some retained orientation already yields. A model builder must pin the
// matching placement variables to zero: left free, they only add spurious
// alternate optima for the same physical assembly.
func Redundant(r int) []Orientation {
	lr, tb := SymmetricLR(r), SymmetricTB(r)
	switch {
	case lr && tb:
		return []Orientation{MirrorLR, MirrorTB, Rotate180}
	case lr:
		return []Orientation{MirrorLR}
	case tb, SymmetricRot(r):
		return []Orientation{MirrorTB, Rotate180}
	}
	return nil
}

package notch

import (
	"fmt"
	"math/bits"
)

const (
	// Slots is the number of groove slots on a stick.
	Slots = 6
	// RowLen is the number of grooves in one row.
	RowLen = Slots / 2
	// MaxPattern is the highest valid encoded pattern.
	MaxPattern = 1<<Slots - 1
)

// A Pattern is the expanded groove layout of a stick. Slots 0 to 2 form the
// bottom row, slots 3 to 5 the top row; true means a groove is cut.
type Pattern [Slots]bool

// A MalformedPatternError reports an encoded pattern that needs more bits
// than its layout allows.
type MalformedPatternError struct {
	Value int
	Bits  int
}

func (e *MalformedPatternError) Error() string {
	return fmt.Sprintf("pattern %d does not fit in %d bits", e.Value, e.Bits)
}

// Decode expands an encoded pattern into its groove flags, low bit first.
// Values outside [0, MaxPattern] are rejected, never truncated.
func Decode(r int) (Pattern, error) {
	var p Pattern
	if r < 0 || r > MaxPattern {
		return p, &MalformedPatternError{Value: r, Bits: Slots}
	}
	for i := 0; i < Slots; i++ {
		p[i] = r>>i&1 == 1
	}
	return p, nil
}

// Encode is the exact inverse of Decode.
func Encode(p Pattern) int {
	r := 0
	for i, grooved := range p {
		if grooved {
			r |= 1 << i
		}
	}
	return r
}

// Popcount returns the number of grooves cut in an encoded pattern.
func Popcount(r int) int {
	return bits.OnesCount(uint(r))
}

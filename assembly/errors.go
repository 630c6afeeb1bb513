package assembly

import (
	"fmt"

	"github.com/woodpuzzles/kumiki/notch"
)

// An UnknownStickTypeError reports an inventory entry whose pattern is not
// one of the 24 canonical stick types. The whole configuration is rejected;
// there is no partial acceptance of a mixed inventory.
type UnknownStickTypeError struct {
	Pattern int
}

func (e *UnknownStickTypeError) Error() string {
	return fmt.Sprintf("pattern %d is not a canonical stick type (its canonical form is %d)",
		e.Pattern, notch.Canonical(e.Pattern))
}

// An InfeasibleAssemblyError reports a configuration whose fixed base and
// top requirements cannot be met by any placement. It marks a genuinely
// unsolvable configuration, not a solver limitation: sticks can always be
// left unplaced, so only the fixed equalities can contradict each other.
type InfeasibleAssemblyError struct {
	Detail string
}

func (e *InfeasibleAssemblyError) Error() string {
	return "infeasible assembly: " + e.Detail
}

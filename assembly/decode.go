package assembly

import (
	"fmt"

	"github.com/woodpuzzles/kumiki/solve"
)

// A Layout is a decoded solution: which stick sits where. Sticks has one
// element per position, bottom layer first; nil marks an empty position.
type Layout struct {
	Sticks []*Placement
	Placed int
}

// Decode reads a solved assignment back into a per-position layout. The
// position-exclusivity constraints guarantee at most one selected placement
// per position; a solution violating that is reported as corrupt. An
// infeasible status becomes an InfeasibleAssemblyError.
func (m *Model) Decode(res solve.Result) (*Layout, error) {
	switch res.Status {
	case solve.Optimal, solve.BestFound:
	case solve.Infeasible:
		return nil, &InfeasibleAssemblyError{Detail: "the fixed base and top constraints admit no placement"}
	default:
		return nil, fmt.Errorf("unexpected solver status %v", res.Status)
	}
	lay := &Layout{Sticks: make([]*Placement, m.Positions())}
	for name, pl := range m.vars {
		if !res.Assignment[name] {
			continue
		}
		if prev := lay.Sticks[pl.Position]; prev != nil {
			return nil, fmt.Errorf("corrupt solution: position %d assigned to entries %d and %d", pl.Position, prev.Entry, pl.Entry)
		}
		pl := pl
		lay.Sticks[pl.Position] = &pl
		lay.Placed++
	}
	return lay, nil
}

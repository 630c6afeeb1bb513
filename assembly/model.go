package assembly

import (
	"fmt"

	"github.com/woodpuzzles/kumiki/notch"
	"github.com/woodpuzzles/kumiki/solve"
)

const (
	// PositionsPerLayer is the number of sticks laid side by side in one layer.
	PositionsPerLayer = 3
	// BaseBits is the size of the fixed base grid: one bit per touch point
	// of the 3×3 grid under the first layer.
	BaseBits = PositionsPerLayer * notch.RowLen

	maxBase = 1<<BaseBits - 1
)

// An Entry is one inventory line: a canonical stick pattern and the number
// of physical copies available. Several entries may share a pattern.
type Entry struct {
	Pattern int
	Count   int
}

// An Inventory is the set of sticks available for one puzzle.
type Inventory []Entry

// A Base is the expanded stud grid of the bottommost, immovable tray.
// Flag 3t+c is the stud meeting bottom groove t of the first-layer stick
// at column c.
type Base [BaseBits]bool

// DecodeBase expands a 9-bit base pattern, low bit first. Values outside
// [0, 511] are rejected, never truncated.
func DecodeBase(r int) (Base, error) {
	var b Base
	if r < 0 || r > maxBase {
		return b, &notch.MalformedPatternError{Value: r, Bits: BaseBits}
	}
	for i := range b {
		b[i] = r>>i&1 == 1
	}
	return b, nil
}

// A Placement identifies one candidate decision: a given inventory entry,
// in a given orientation, seated at a given position. Positions are
// numbered layer*PositionsPerLayer + column, bottom layer first.
type Placement struct {
	Entry       int
	Position    int
	Orientation notch.Orientation
}

// A Model is the placement problem for one puzzle configuration, together
// with the bookkeeping needed to read a solution back.
type Model struct {
	// Problem is handed to the external optimizer as-is.
	Problem solve.Problem
	// Pruned records, per inventory entry index, the orientations whose
	// placement variables are pinned to zero by symmetry.
	Pruned map[int][]notch.Orientation

	inventory Inventory
	layers    int
	vars      map[string]Placement
}

// Build validates a configuration and constructs its placement problem:
// one 0/1 variable per (entry, position, orientation), symmetry pruning,
// inventory limits, one stick per position, and the interlock equalities at
// every layer interface. The objective maximizes the number of seated
// sticks.
func Build(inv Inventory, layers, base int) (*Model, error) {
	if layers < 1 {
		return nil, fmt.Errorf("layer count must be at least 1, got %d", layers)
	}
	if len(inv) == 0 {
		return nil, fmt.Errorf("inventory is empty")
	}
	for _, entry := range inv {
		if entry.Pattern < 0 || entry.Pattern > notch.MaxPattern {
			return nil, &notch.MalformedPatternError{Value: entry.Pattern, Bits: notch.Slots}
		}
		if !notch.IsCanonical(entry.Pattern) {
			return nil, &UnknownStickTypeError{Pattern: entry.Pattern}
		}
		if entry.Count < 1 {
			return nil, fmt.Errorf("entry for pattern %d has non-positive count %d", entry.Pattern, entry.Count)
		}
	}
	studs, err := DecodeBase(base)
	if err != nil {
		return nil, err
	}

	m := &Model{
		Pruned:    make(map[int][]notch.Orientation),
		inventory: append(Inventory(nil), inv...),
		layers:    layers,
		vars:      make(map[string]Placement),
	}
	positions := layers * PositionsPerLayer

	for e := range inv {
		for p := 0; p < positions; p++ {
			for _, o := range notch.Orientations {
				name := varName(e, p, o)
				m.vars[name] = Placement{Entry: e, Position: p, Orientation: o}
				m.Problem.Maximize = append(m.Problem.Maximize, solve.Term{Var: name, Coeff: 1})
			}
		}
	}

	// Symmetry pruning. A redundant orientation reproduces a groove layout
	// some retained orientation already yields, so its variables are pinned
	// to zero at every position: left free they create spurious alternate
	// optima without changing the physical solution set.
	for e, entry := range inv {
		red := notch.Redundant(entry.Pattern)
		if len(red) == 0 {
			continue
		}
		m.Pruned[e] = red
		for _, o := range red {
			terms := make([]solve.Term, 0, positions)
			for p := 0; p < positions; p++ {
				terms = append(terms, solve.Term{Var: varName(e, p, o), Coeff: 1})
			}
			m.constrain(terms, solve.Eq, 0)
		}
	}

	// Inventory limits.
	for e, entry := range inv {
		terms := make([]solve.Term, 0, positions*len(notch.Orientations))
		for p := 0; p < positions; p++ {
			for _, o := range notch.Orientations {
				terms = append(terms, solve.Term{Var: varName(e, p, o), Coeff: 1})
			}
		}
		m.constrain(terms, solve.AtMost, entry.Count)
	}

	// A position holds at most one stick.
	for p := 0; p < positions; p++ {
		terms := make([]solve.Term, 0, len(inv)*len(notch.Orientations))
		for e := range inv {
			for _, o := range notch.Orientations {
				terms = append(terms, solve.Term{Var: varName(e, p, o), Coeff: 1})
			}
		}
		m.constrain(terms, solve.AtMost, 1)
	}

	// Interlock equalities, one interface at a time. Interface k sits below
	// layer k; k = 0 is the fixed base, k = layers the open top. At touch
	// point (c, t) the bottom groove t of the upper stick at column c meets
	// the top groove c of the crossing lower stick at position t. Exactly
	// one of the two surfaces presents a groove, except under the open sky
	// where the top face must come out smooth.
	for k := 0; k <= layers; k++ {
		for c := 0; c < PositionsPerLayer; c++ {
			for t := 0; t < notch.RowLen; t++ {
				target := 1
				var terms []solve.Term
				if k == layers {
					target = 0
				} else {
					upper := k*PositionsPerLayer + c
					for e, entry := range inv {
						for _, o := range notch.Orientations {
							if notch.At(entry.Pattern, o, t) {
								terms = append(terms, solve.Term{Var: varName(e, upper, o), Coeff: 1})
							}
						}
					}
				}
				if k == 0 {
					if studs[notch.RowLen*t+c] {
						target--
					}
				} else {
					lower := (k-1)*PositionsPerLayer + t
					for e, entry := range inv {
						for _, o := range notch.Orientations {
							if notch.At(entry.Pattern, o, notch.RowLen+c) {
								terms = append(terms, solve.Term{Var: varName(e, lower, o), Coeff: 1})
							}
						}
					}
				}
				if len(terms) == 0 {
					if target > 0 {
						return nil, &InfeasibleAssemblyError{
							Detail: fmt.Sprintf("no stick can present a groove at interface %d, column %d, groove %d", k, c, t),
						}
					}
					continue
				}
				m.constrain(terms, solve.Eq, target)
			}
		}
	}
	return m, nil
}

func (m *Model) constrain(terms []solve.Term, sense solve.Sense, bound int) {
	m.Problem.Constraints = append(m.Problem.Constraints, solve.Constraint{Terms: terms, Sense: sense, Bound: bound})
}

// Layers returns the number of stick layers the model stacks over the base.
func (m *Model) Layers() int {
	return m.layers
}

// Positions returns the total number of stick positions across all layers.
func (m *Model) Positions() int {
	return m.layers * PositionsPerLayer
}

// Inventory returns the validated inventory the model was built from.
func (m *Model) Inventory() Inventory {
	return append(Inventory(nil), m.inventory...)
}

// Placements returns the meaning of every decision variable by name.
func (m *Model) Placements() map[string]Placement {
	out := make(map[string]Placement, len(m.vars))
	for name, pl := range m.vars {
		out[name] = pl
	}
	return out
}

func varName(e, p int, o notch.Orientation) string {
	return fmt.Sprintf("place_e%d_p%d_%s", e, p, o)
}

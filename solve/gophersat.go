package solve

import (
	"fmt"
	"log/slog"

	"github.com/crillab/gophersat/maxsat"
)

// Gophersat optimizes problems with the gophersat weighted partial MAXSAT
// engine. Constraints become hard pseudo-boolean clauses and each objective
// term becomes a weighted soft unit clause, so minimizing the total weight
// of falsified soft clauses maximizes the objective. The zero value is
// ready to use and always solves to proven optimality.
type Gophersat struct {
	// Verbose makes the underlying solver print its search progress.
	Verbose bool
	// Logger receives solve-level debug records; nil means slog.Default.
	Logger *slog.Logger
}

var _ Solver = (*Gophersat)(nil)

// Solve submits the whole problem once and awaits a terminal status.
func (g *Gophersat) Solve(pb Problem) (res Result, err error) {
	// gophersat reports malformed input by panicking; surface that as a
	// SolverError rather than crashing the caller.
	defer func() {
		if r := recover(); r != nil {
			err = &SolverError{Reason: fmt.Sprint(r)}
		}
	}()
	var constrs []maxsat.Constr
	for _, c := range pb.Constraints {
		constrs = append(constrs, lower(c)...)
	}
	total := 0
	for _, t := range pb.Maximize {
		// Caller input, caught before the solver runs; SolverError stays
		// reserved for the engine's own abnormal termination.
		if t.Coeff <= 0 {
			return Result{}, fmt.Errorf("objective term %s has non-positive weight %d", t.Var, t.Coeff)
		}
		constrs = append(constrs, maxsat.WeightedClause([]maxsat.Lit{maxsat.Var(t.Var)}, t.Coeff))
		total += t.Coeff
	}
	if len(constrs) == 0 {
		return Result{Status: Optimal, Assignment: map[string]bool{}}, nil
	}
	prob := maxsat.New(constrs...)
	prob.SetVerbose(g.Verbose)
	g.logger().Debug("problem submitted",
		"constraints", len(pb.Constraints),
		"objective_terms", len(pb.Maximize))
	model, cost := prob.Solve()
	if model == nil {
		g.logger().Debug("problem is infeasible")
		return Result{Status: Infeasible}, nil
	}
	assign := make(map[string]bool, len(model))
	for v, b := range model {
		assign[v] = b
	}
	res = Result{Status: Optimal, Assignment: assign, Objective: total - cost}
	g.logger().Debug("problem solved", "status", res.Status, "objective", res.Objective)
	return res, nil
}

func (g *Gophersat) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return slog.Default()
}

// lower rewrites one linear constraint as gophersat "at least" material.
// An equality becomes a pair of opposite at-least constraints; an at-most
// constraint is stated over the negated literals. Negative coefficients are
// folded away by negating their literal and shifting the bound.
func lower(c Constraint) []maxsat.Constr {
	lits := make([]maxsat.Lit, 0, len(c.Terms))
	coeffs := make([]int, 0, len(c.Terms))
	bound := c.Bound
	sum := 0
	for _, t := range c.Terms {
		if t.Coeff == 0 {
			continue
		}
		lit, w := maxsat.Var(t.Var), t.Coeff
		if w < 0 {
			lit, w = lit.Negation(), -w
			bound += w
		}
		lits = append(lits, lit)
		coeffs = append(coeffs, w)
		sum += w
	}
	var out []maxsat.Constr
	if c.Sense == AtLeast || c.Sense == Eq {
		out = append(out, maxsat.HardPBConstr(lits, coeffs, bound))
	}
	if c.Sense == AtMost || c.Sense == Eq {
		neg := make([]maxsat.Lit, len(lits))
		for i, l := range lits {
			neg[i] = l.Negation()
		}
		out = append(out, maxsat.HardPBConstr(neg, coeffs, sum-bound))
	}
	return out
}

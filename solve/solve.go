// Package solve defines the narrow boundary between the assembly model and
// the external optimizer: binary variables identified by name, linear
// constraints over them with integer coefficients, and a linear objective
// to maximize. The package also provides a gophersat-backed Solver.
package solve

import "fmt"

// A Term is one weighted variable of a linear expression.
type Term struct {
	Var   string
	Coeff int
}

// A Sense relates a constraint's left-hand side to its bound.
type Sense uint8

const (
	// Eq requires the expression to equal the bound exactly.
	Eq Sense = iota
	// AtMost requires the expression to be at most the bound.
	AtMost
	// AtLeast requires the expression to be at least the bound.
	AtLeast
)

func (s Sense) String() string {
	switch s {
	case Eq:
		return "=="
	case AtMost:
		return "<="
	case AtLeast:
		return ">="
	}
	return fmt.Sprintf("sense(%d)", uint8(s))
}

// A Constraint is one linear constraint over 0/1 variables.
type Constraint struct {
	Terms []Term
	Sense Sense
	Bound int
}

// A Problem is a complete optimization problem. Maximize is the linear
// objective; a nil objective turns the problem into a pure decision one.
type Problem struct {
	Constraints []Constraint
	Maximize    []Term
}

// Status is the terminal state of one solve attempt. A solve is never
// retried: the mathematics of an identical second attempt cannot change.
type Status uint8

const (
	// Optimal means the returned assignment maximizes the objective.
	Optimal Status = iota
	// BestFound means the solver stopped within a limit before proving
	// optimality; the assignment is the best one seen.
	BestFound
	// Infeasible means no assignment satisfies the constraints.
	Infeasible
)

func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case BestFound:
		return "best-found"
	case Infeasible:
		return "infeasible"
	}
	return fmt.Sprintf("status(%d)", uint8(s))
}

// A Result is the solver's answer for one problem. Assignment is only
// populated when the status is Optimal or BestFound; Objective is the value
// of the maximize expression under that assignment.
type Result struct {
	Status     Status
	Assignment map[string]bool
	Objective  int
}

// Solver is any engine able to optimize a Problem. Implementations must
// distinguish an infeasible problem (a Result) from their own abnormal
// termination (an error): the two have different remediation paths.
type Solver interface {
	Solve(pb Problem) (Result, error)
}

// A SolverError reports an abnormal termination of the external optimizer.
// It is never folded into an Infeasible result.
type SolverError struct {
	Reason string
}

func (e *SolverError) Error() string {
	return "solver: " + e.Reason
}

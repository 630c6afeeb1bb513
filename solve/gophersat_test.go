package solve

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGophersatMaximizeUnderExclusivity(t *testing.T) {
	pb := Problem{
		Constraints: []Constraint{
			{Terms: []Term{{Var: "x", Coeff: 1}, {Var: "y", Coeff: 1}}, Sense: AtMost, Bound: 1},
		},
		Maximize: []Term{{Var: "x", Coeff: 1}, {Var: "y", Coeff: 1}},
	}
	res, err := (&Gophersat{}).Solve(pb)
	require.NoError(t, err)
	assert.Equal(t, Optimal, res.Status)
	assert.Equal(t, 1, res.Objective)
	assert.NotEqual(t, res.Assignment["x"], res.Assignment["y"])
}

func TestGophersatEquality(t *testing.T) {
	pb := Problem{
		Constraints: []Constraint{
			{Terms: []Term{{Var: "x", Coeff: 1}, {Var: "y", Coeff: 1}}, Sense: Eq, Bound: 1},
		},
		Maximize: []Term{{Var: "x", Coeff: 1}},
	}
	res, err := (&Gophersat{}).Solve(pb)
	require.NoError(t, err)
	require.Equal(t, Optimal, res.Status)
	assert.True(t, res.Assignment["x"])
	assert.False(t, res.Assignment["y"])
	assert.Equal(t, 1, res.Objective)
}

func TestGophersatWeightedObjective(t *testing.T) {
	// 2x + 3y <= 4 admits x or y but not both; y carries more weight.
	pb := Problem{
		Constraints: []Constraint{
			{Terms: []Term{{Var: "x", Coeff: 2}, {Var: "y", Coeff: 3}}, Sense: AtMost, Bound: 4},
		},
		Maximize: []Term{{Var: "x", Coeff: 2}, {Var: "y", Coeff: 3}},
	}
	res, err := (&Gophersat{}).Solve(pb)
	require.NoError(t, err)
	require.Equal(t, Optimal, res.Status)
	assert.Equal(t, 3, res.Objective)
	assert.False(t, res.Assignment["x"])
	assert.True(t, res.Assignment["y"])
}

func TestGophersatInfeasible(t *testing.T) {
	pb := Problem{
		Constraints: []Constraint{
			{Terms: []Term{{Var: "x", Coeff: 1}}, Sense: AtLeast, Bound: 1},
			{Terms: []Term{{Var: "x", Coeff: 1}}, Sense: AtMost, Bound: 0},
		},
		Maximize: []Term{{Var: "x", Coeff: 1}},
	}
	res, err := (&Gophersat{}).Solve(pb)
	require.NoError(t, err)
	assert.Equal(t, Infeasible, res.Status)
	assert.Nil(t, res.Assignment)
}

func TestGophersatEmptyEqualityIsInfeasible(t *testing.T) {
	pb := Problem{
		Constraints: []Constraint{
			{Sense: Eq, Bound: 1},
		},
		Maximize: []Term{{Var: "x", Coeff: 1}},
	}
	res, err := (&Gophersat{}).Solve(pb)
	require.NoError(t, err)
	assert.Equal(t, Infeasible, res.Status)
}

func TestGophersatRejectsNonPositiveObjectiveWeight(t *testing.T) {
	for _, coeff := range []int{0, -1} {
		pb := Problem{Maximize: []Term{{Var: "x", Coeff: coeff}}}
		_, err := (&Gophersat{}).Solve(pb)
		require.Error(t, err)
		assert.ErrorContains(t, err, "non-positive weight")
		// Bad caller input is not an abnormal solver termination.
		var serr *SolverError
		assert.False(t, errors.As(err, &serr))
	}
}

func TestGophersatEmptyProblem(t *testing.T) {
	res, err := (&Gophersat{}).Solve(Problem{})
	require.NoError(t, err)
	assert.Equal(t, Optimal, res.Status)
	assert.Equal(t, 0, res.Objective)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "optimal", Optimal.String())
	assert.Equal(t, "best-found", BestFound.String())
	assert.Equal(t, "infeasible", Infeasible.String())
}

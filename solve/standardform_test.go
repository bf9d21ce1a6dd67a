package solve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcondello/dwave-preprocessing/cqm"
)

func TestToStandardFormRejectsQuadraticObjective(t *testing.T) {
	m := cqm.New()
	x := m.AddVariable(cqm.BINARY, 0, 1)
	y := m.AddVariable(cqm.BINARY, 0, 1)
	m.Objective().SetQuadratic(x, y, 1)

	_, err := ToStandardForm(m)
	assert.ErrorIs(t, err, ErrNotLinear)
}

func TestToStandardFormRejectsNonzeroLowerBound(t *testing.T) {
	m := cqm.New()
	m.AddVariable(cqm.INTEGER, 2, 10)

	_, err := ToStandardForm(m)
	assert.ErrorIs(t, err, ErrNonzeroLowerBound)
}

func TestToStandardFormEncodesEqualityAndInequality(t *testing.T) {
	m := cqm.New()
	x := m.AddVariable(cqm.INTEGER, 0, 10)
	y := m.AddVariable(cqm.INTEGER, 0, 10)
	m.Objective().SetLinear(x, -1)
	m.Objective().SetLinear(y, -2)
	m.AddLinearConstraint([]int{x, y}, []float64{1, 1}, cqm.EQ, 5)
	m.AddLinearConstraint([]int{x}, []float64{1}, cqm.LE, 3)

	sf, err := ToStandardForm(m)
	require.NoError(t, err)
	assert.Equal(t, 2, sf.NumOriginalVars)

	rows, _ := sf.A.Dims()
	// 1 equality constraint + 1 explicit LE constraint + 2 upper-bound rows
	assert.Equal(t, 4, rows)
}

func TestSolveRelaxation(t *testing.T) {
	m := cqm.New()
	x := m.AddVariable(cqm.INTEGER, 0, 10)
	y := m.AddVariable(cqm.INTEGER, 0, 10)
	m.Objective().SetLinear(x, -1)
	m.Objective().SetLinear(y, -2)
	m.AddLinearConstraint([]int{x, y}, []float64{1, 1}, cqm.LE, 4)

	rel, err := SolveRelaxation(m)
	require.NoError(t, err)
	require.Len(t, rel.X, 2)
	assert.InDelta(t, -8.0, rel.Objective, 1e-6)
}

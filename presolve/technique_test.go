package presolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcondello/dwave-preprocessing/cqm"
)

func TestRemoveZeroBiases(t *testing.T) {
	m := cqm.New()
	x := m.AddVariable(cqm.BINARY, 0, 1)
	y := m.AddVariable(cqm.BINARY, 0, 1)
	m.Objective().SetQuadratic(x, y, 0)

	changed := removeZeroBiases(m)
	assert.True(t, changed)
	assert.False(t, m.Objective().HasInteraction(x, y))
}

func TestRemoveZeroBiasesDropsIsolatedZeroLinearVariable(t *testing.T) {
	m := cqm.New()
	x := m.AddVariable(cqm.BINARY, 0, 1)
	y := m.AddVariable(cqm.BINARY, 0, 1)
	m.Objective().SetLinear(x, 0)
	m.Objective().SetLinear(y, 1)

	changed := removeZeroBiases(m)
	assert.True(t, changed)
	assert.False(t, m.Objective().HasVariable(x))
	assert.True(t, m.Objective().HasVariable(y))
}

func TestRemoveSmallBiasesDropsUnconditionalBias(t *testing.T) {
	m := cqm.New()
	x := m.AddVariable(cqm.REAL, 0, 1)
	ci := m.AddLinearConstraint([]int{x}, []float64{1e-12}, cqm.LE, 5)

	changed := removeSmallBiases(m)
	assert.True(t, changed)
	assert.False(t, m.ConstraintRef(ci).HasVariable(x))
}

func TestRemoveSmallBiasesDropsConditionalBiasAndAdjustsRHS(t *testing.T) {
	m := cqm.New()
	x := m.AddVariable(cqm.REAL, 2, 3)
	ci := m.AddLinearConstraint([]int{x}, []float64{1e-9}, cqm.LE, 5)

	changed := removeSmallBiases(m)
	assert.True(t, changed)
	c := m.ConstraintRef(ci)
	assert.False(t, c.HasVariable(x))
	assert.InDelta(t, 5-1e-9*2, c.RHS(), 1e-15)
}

func TestRemoveSmallBiasesSkipsWhenBiasIsTooLarge(t *testing.T) {
	m := cqm.New()
	x := m.AddVariable(cqm.REAL, 0, 1)
	ci := m.AddLinearConstraint([]int{x}, []float64{1}, cqm.LE, 5)

	changed := removeSmallBiases(m)
	assert.False(t, changed)
	assert.True(t, m.ConstraintRef(ci).HasVariable(x))
}

func TestRemoveSmallBiasesSkipsQuadraticConstraints(t *testing.T) {
	m := cqm.New()
	x := m.AddVariable(cqm.BINARY, 0, 1)
	y := m.AddVariable(cqm.BINARY, 0, 1)
	ci := m.AddLinearConstraint([]int{x, y}, []float64{1e-12, 1}, cqm.LE, 5)
	m.ConstraintRef(ci).SetQuadratic(x, y, 1e-12)

	changed := removeSmallBiases(m)
	assert.False(t, changed)
	assert.True(t, m.ConstraintRef(ci).HasVariable(x))
}

func TestTightenBoundsToVartype(t *testing.T) {
	m := cqm.New()
	x := m.AddVariable(cqm.INTEGER, 0.3, 4.8)

	changed, err := tightenBoundsToVartype(m)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 1.0, m.LowerBound(x))
	assert.Equal(t, 4.0, m.UpperBound(x))
}

func TestTightenBoundsToVartypeInfeasible(t *testing.T) {
	m := cqm.New()
	m.AddVariable(cqm.INTEGER, 0.1, 0.9)

	_, err := tightenBoundsToVartype(m)
	require.Error(t, err)
	var infeasible *InfeasibleError
	assert.ErrorAs(t, err, &infeasible)
}

func TestDomainPropagationTightensBoundFromLE(t *testing.T) {
	m := cqm.New()
	x := m.AddVariable(cqm.INTEGER, 0, 20)
	y := m.AddVariable(cqm.INTEGER, 0, 20)
	m.AddLinearConstraint([]int{x, y}, []float64{1, 1}, cqm.LE, 10)
	m.SetLowerBound(y, 3)

	changed, err := domainPropagation(m)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 7.0, m.UpperBound(x))
}

func TestDomainPropagationDetectsInfeasibility(t *testing.T) {
	m := cqm.New()
	x := m.AddVariable(cqm.INTEGER, 5, 10)
	m.AddLinearConstraint([]int{x}, []float64{1}, cqm.LE, 2)

	_, err := domainPropagation(m)
	require.Error(t, err)
	var infeasible *InfeasibleError
	assert.ErrorAs(t, err, &infeasible)
}

func TestDomainPropagationSkipsSoftConstraints(t *testing.T) {
	m := cqm.New()
	x := m.AddVariable(cqm.INTEGER, 0, 20)
	ci := m.AddLinearConstraint([]int{x}, []float64{1}, cqm.LE, 5)
	m.ConstraintRef(ci).SetSoft(true)

	changed, err := domainPropagation(m)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 20.0, m.UpperBound(x))
}

func TestRemoveSingleVariableConstraintFoldsIntoBound(t *testing.T) {
	m := cqm.New()
	x := m.AddVariable(cqm.INTEGER, 0, 10)
	m.AddLinearConstraint([]int{x}, []float64{2}, cqm.LE, 10)

	changed, err := removeSingleVariableConstraints(m)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 0, m.NumConstraints())
	assert.Equal(t, 5.0, m.UpperBound(x))
}

func TestRemoveSingleVariableConstraintSkipsSoft(t *testing.T) {
	m := cqm.New()
	x := m.AddVariable(cqm.INTEGER, 0, 10)
	ci := m.AddLinearConstraint([]int{x}, []float64{2}, cqm.LE, 10)
	m.ConstraintRef(ci).SetSoft(true)

	changed, err := removeSingleVariableConstraints(m)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 1, m.NumConstraints())
	assert.Equal(t, 10.0, m.UpperBound(x))
}

func TestRemoveSingleVariableConstraintDropsFeasibleEmptyConstraint(t *testing.T) {
	m := cqm.New()
	m.AddLinearConstraint(nil, nil, cqm.LE, 5)

	changed, err := removeSingleVariableConstraints(m)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 0, m.NumConstraints())
}

func TestRemoveSingleVariableConstraintDetectsInfeasibleEmptyConstraint(t *testing.T) {
	m := cqm.New()
	m.AddLinearConstraint(nil, nil, cqm.EQ, 5)

	_, err := removeSingleVariableConstraints(m)
	require.Error(t, err)
	var infeasible *InfeasibleError
	assert.ErrorAs(t, err, &infeasible)
}

func TestRemoveSingleVariableConstraintRemovesEmptySoftConstraintWithoutFeasibilityCheck(t *testing.T) {
	m := cqm.New()
	ci := m.AddLinearConstraint(nil, nil, cqm.EQ, 5)
	m.ConstraintRef(ci).SetSoft(true)

	changed, err := removeSingleVariableConstraints(m)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 0, m.NumConstraints())
}

func TestRemoveFixedVariables(t *testing.T) {
	m := cqm.New()
	x := m.AddVariable(cqm.INTEGER, 0, 10)
	y := m.AddVariable(cqm.INTEGER, 4, 4)
	m.Objective().SetLinear(x, 1)
	m.Objective().SetLinear(y, 2)

	mv := newModelView(m)
	changed := removeFixedVariables(mv)

	assert.True(t, changed)
	assert.Equal(t, 1, m.NumVariables())
	assert.Equal(t, 8.0, m.Objective().Offset())
}

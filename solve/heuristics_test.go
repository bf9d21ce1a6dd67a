package solve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arcondello/dwave-preprocessing/cqm"
)

func TestMostFractionalVariable(t *testing.T) {
	m := cqm.New()
	m.AddVariable(cqm.INTEGER, 0, 10)
	m.AddVariable(cqm.INTEGER, 0, 10)
	m.AddVariable(cqm.REAL, 0, 10)

	x := []float64{1.9, 2.5, 3.1}
	assert.Equal(t, 1, MostFractionalVariable(m, x))
}

func TestMostFractionalVariableNoIntegralVars(t *testing.T) {
	m := cqm.New()
	m.AddVariable(cqm.REAL, 0, 10)

	assert.Equal(t, -1, MostFractionalVariable(m, []float64{1.5}))
}

func TestIsIntegral(t *testing.T) {
	m := cqm.New()
	m.AddVariable(cqm.INTEGER, 0, 10)
	m.AddVariable(cqm.REAL, 0, 10)

	assert.True(t, IsIntegral(m, []float64{3.0000001, 3.6}, 1e-3))
	assert.False(t, IsIntegral(m, []float64{3.2, 3.6}, 1e-3))
}

package cqm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpressionRemoveVariableDropsInteractions(t *testing.T) {
	m := New()
	x := m.AddVariable(BINARY, 0, 1)
	y := m.AddVariable(BINARY, 0, 1)
	e := m.Objective()

	e.SetLinear(x, 1)
	e.SetQuadratic(x, y, 2)
	e.RemoveVariable(x)

	assert.False(t, e.HasVariable(x))
	assert.False(t, e.HasInteraction(x, y))
	assert.True(t, e.HasVariable(y))
}

func TestExpressionScale(t *testing.T) {
	m := New()
	x := m.AddVariable(BINARY, 0, 1)
	y := m.AddVariable(BINARY, 0, 1)
	e := m.Objective()
	e.SetLinear(x, 2)
	e.SetQuadratic(x, y, 3)
	e.SetOffset(1)

	e.Scale(-1)

	assert.Equal(t, -2.0, e.Linear(x))
	assert.Equal(t, -3.0, e.Quadratic(x, y))
	assert.Equal(t, -1.0, e.Offset())
}

func TestExpressionQuadraticTermsDeterministicOrder(t *testing.T) {
	m := New()
	a := m.AddVariable(BINARY, 0, 1)
	b := m.AddVariable(BINARY, 0, 1)
	c := m.AddVariable(BINARY, 0, 1)
	e := m.Objective()

	e.SetQuadratic(c, a, 1)
	e.SetQuadratic(b, a, 2)
	e.SetQuadratic(c, b, 3)

	terms := e.QuadraticTerms()
	require := []QuadraticTerm{
		{U: a, V: b, Bias: 2},
		{U: a, V: c, Bias: 1},
		{U: b, V: c, Bias: 3},
	}
	assert.Equal(t, require, terms)
}

func TestIsLinear(t *testing.T) {
	m := New()
	x := m.AddVariable(BINARY, 0, 1)
	y := m.AddVariable(BINARY, 0, 1)
	e := m.Objective()
	e.SetLinear(x, 1)
	assert.True(t, e.IsLinear())
	e.SetQuadratic(x, y, 1)
	assert.False(t, e.IsLinear())
}

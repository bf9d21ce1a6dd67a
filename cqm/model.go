package cqm

// CQM is a constrained quadratic model: a shared variable table, a
// distinguished objective expression, and an ordered list of constraints.
//
// CQM is always used through a pointer. Expressions keep an unexported
// back-reference to their owning model (for per-variable bound/vartype
// lookups); copying a CQM by value would leave those references pointing at
// the original, so the type intentionally offers no value-copy constructor.
type CQM struct {
	vartypes []Vartype
	lb       []float64
	ub       []float64

	objective   *Expression
	constraints []*Constraint
}

// New returns an empty constrained quadratic model.
func New() *CQM {
	m := &CQM{}
	m.objective = newExpression(m)
	return m
}

// NumVariables returns the number of variables in the model.
func (m *CQM) NumVariables() int {
	return len(m.vartypes)
}

// Vartype returns the vartype of variable v.
func (m *CQM) Vartype(v int) Vartype {
	return m.vartypes[v]
}

// LowerBound returns the current lower bound of variable v.
func (m *CQM) LowerBound(v int) float64 {
	return m.lb[v]
}

// UpperBound returns the current upper bound of variable v.
func (m *CQM) UpperBound(v int) float64 {
	return m.ub[v]
}

// SetLowerBound sets the lower bound of variable v. This does not affect
// the mapping between reduced and original assignments, so it is not
// journaled.
func (m *CQM) SetLowerBound(v int, lb float64) {
	m.lb[v] = lb
}

// SetUpperBound sets the upper bound of variable v. This does not affect
// the mapping between reduced and original assignments, so it is not
// journaled.
func (m *CQM) SetUpperBound(v int, ub float64) {
	m.ub[v] = ub
}

// AddVariable appends a fresh variable of the given vartype and bounds,
// returning its index. BINARY and SPIN variables get their mandated bounds
// regardless of what's passed in.
func (m *CQM) AddVariable(vt Vartype, lb, ub float64) int {
	if dlb, dub, ok := vt.DefaultBounds(); ok {
		lb, ub = dlb, dub
	}
	v := len(m.vartypes)
	m.vartypes = append(m.vartypes, vt)
	m.lb = append(m.lb, lb)
	m.ub = append(m.ub, ub)
	return v
}

// Objective returns the model's objective expression.
func (m *CQM) Objective() *Expression {
	return m.objective
}

// Constraints returns the model's constraints, in order. The returned slice
// must not be mutated by the caller; use RemoveConstraint/NewConstraint to
// change the constraint list.
func (m *CQM) Constraints() []*Constraint {
	return m.constraints
}

// NumConstraints returns the number of constraints in the model.
func (m *CQM) NumConstraints() int {
	return len(m.constraints)
}

// ConstraintRef returns the constraint at index i.
func (m *CQM) ConstraintRef(i int) *Constraint {
	if i < 0 || i >= len(m.constraints) {
		panic(errConstraintOutOfRange(i, len(m.constraints)))
	}
	return m.constraints[i]
}

// NewConstraint appends an empty (trivially satisfied) linear constraint
// and returns it for the caller to populate.
func (m *CQM) NewConstraint() *Constraint {
	c := newConstraint(m)
	m.constraints = append(m.constraints, c)
	return c
}

// AddLinearConstraint appends a linear constraint `sum(biases[i]*vars[i]) sense rhs`
// and returns its index. Panics if a variable index is out of range for the
// model.
func (m *CQM) AddLinearConstraint(vars []int, biases []float64, sense Sense, rhs float64) int {
	for _, v := range vars {
		if v < 0 || v >= len(m.vartypes) {
			panic(errVariableOutOfRange(v, len(m.vartypes)))
		}
	}

	c := newConstraint(m)
	for i, v := range vars {
		c.SetLinear(v, biases[i])
	}
	c.sense = sense
	c.rhs = rhs
	m.constraints = append(m.constraints, c)
	return len(m.constraints) - 1
}

// RemoveConstraint removes the constraint at index i, shifting later
// constraints down by one. Callers walking the constraint list while
// removing must use an index that doesn't advance past a deletion (see
// presolve's reduction techniques for the pattern).
func (m *CQM) RemoveConstraint(i int) {
	m.constraints = append(m.constraints[:i], m.constraints[i+1:]...)
}

func (m *CQM) allExpressions() []*Expression {
	exprs := make([]*Expression, 0, 1+len(m.constraints))
	exprs = append(exprs, m.objective)
	for _, c := range m.constraints {
		exprs = append(exprs, c.Expression)
	}
	return exprs
}

// ChangeVartype changes the vartype of v. Only SPIN->BINARY is supported;
// any other requested change returns ErrUnsupportedVartypeChange and leaves
// the model untouched.
//
// The rewrite substitutes s = 2x-1 (s the old SPIN value, x the new BINARY
// value) into every expression that references v. A self-interaction
// b*s*s collapses to the constant b: since x is binary, x*x = x, so
// (2x-1)^2 = 4x^2 - 4x + 1 = 4x - 4x + 1 = 1, and b*s*s = b*1 = b. A cross
// term b*s*u (u != v) becomes b*(2x-1)*u = 2b*x*u - b*u, i.e. the
// quadratic bias doubles and -b is added to u's linear bias. A linear term
// a*s becomes a*(2x-1) = 2a*x - a.
func (m *CQM) ChangeVartype(vt Vartype, v int) error {
	if m.vartypes[v] != SPIN || vt != BINARY {
		return ErrUnsupportedVartypeChange
	}

	for _, e := range m.allExpressions() {
		if !e.HasVariable(v) {
			continue
		}

		if e.HasInteraction(v, v) {
			b := e.Quadratic(v, v)
			e.AddOffset(b)
			e.RemoveInteraction(v, v)
		}

		for _, u := range neighborSlice(e, v) {
			b := e.Quadratic(v, u)
			e.AddQuadratic(v, u, b)
			e.AddLinear(u, -b)
		}

		a := e.Linear(v)
		e.SetLinear(v, 2*a)
		e.AddOffset(-a)
	}

	m.vartypes[v] = BINARY
	m.lb[v], m.ub[v] = 0, 1
	return nil
}

// FixVariable removes v from the model after substituting `value` for it
// everywhere it appears: every expression's offset and remaining linear
// biases absorb v's contribution, then v's slot is removed from the model
// and every variable index greater than v is shifted down by one so the
// model stays densely indexed.
func (m *CQM) FixVariable(v int, value float64) {
	exprs := m.allExpressions()

	for _, e := range exprs {
		if !e.HasVariable(v) {
			continue
		}

		if e.HasInteraction(v, v) {
			b := e.Quadratic(v, v)
			e.AddOffset(b * value * value)
			e.RemoveInteraction(v, v)
		}

		for _, u := range neighborSlice(e, v) {
			b := e.Quadratic(v, u)
			e.AddLinear(u, b*value)
			e.RemoveInteraction(v, u)
		}

		a := e.Linear(v)
		e.AddOffset(a * value)
		e.RemoveVariable(v)
	}

	m.removeVariableSlot(v)
	for _, e := range exprs {
		e.reindexAbove(v)
	}
}

func (m *CQM) removeVariableSlot(v int) {
	m.vartypes = append(m.vartypes[:v], m.vartypes[v+1:]...)
	m.lb = append(m.lb[:v], m.lb[v+1:]...)
	m.ub = append(m.ub[:v], m.ub[v+1:]...)
}

func neighborSlice(e *Expression, v int) []int {
	neighbors := e.adj[v]
	out := make([]int, 0, len(neighbors))
	for u := range neighbors {
		if u == v {
			continue
		}
		out = append(out, u)
	}
	return out
}

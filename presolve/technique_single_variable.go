package presolve

import "github.com/arcondello/dwave-preprocessing/cqm"

// removeSingleVariableConstraints drops every constraint that no longer
// references any variable, checking its offset against its rhs for
// feasibility first unless it's soft, and folds every non-soft constraint
// referencing exactly one variable into that variable's bounds (or proves
// the model infeasible) before dropping it too. Soft single-variable
// constraints are left in place: folding one into a bound would make its
// violation unconditionally enforced, which is exactly what marking it soft
// was meant to avoid.
func removeSingleVariableConstraints(m *cqm.CQM) (bool, error) {
	changed := false

	for i := 0; i < m.NumConstraints(); {
		c := m.ConstraintRef(i)

		if c.NumVariables() == 0 {
			if !c.IsSoft() {
				ok := true
				switch c.Sense() {
				case cqm.EQ:
					ok = c.Offset() == c.RHS()
				case cqm.LE:
					ok = c.Offset() <= c.RHS()
				case cqm.GE:
					ok = c.Offset() >= c.RHS()
				}
				if !ok {
					return changed, newInfeasibleError("constraint with no variables is unsatisfiable")
				}
			}
			m.RemoveConstraint(i)
			changed = true
			continue
		}

		if c.IsSoft() || !c.IsLinear() || c.NumVariables() != 1 {
			i++
			continue
		}

		v := c.Variables()[0]
		b := c.Linear(v)
		rhs := (c.RHS() - c.Offset()) / b
		lb, ub := m.LowerBound(v), m.UpperBound(v)

		switch c.Sense() {
		case cqm.EQ:
			lb, ub = maxF(lb, rhs), minF(ub, rhs)
		case cqm.LE:
			if b > 0 {
				ub = minF(ub, rhs)
			} else {
				lb = maxF(lb, rhs)
			}
		case cqm.GE:
			if b > 0 {
				lb = maxF(lb, rhs)
			} else {
				ub = minF(ub, rhs)
			}
		}

		if lb > ub+feasibilityTolerance {
			return changed, newInfeasibleError("single-variable constraint tightens bounds past each other")
		}

		m.SetLowerBound(v, lb)
		m.SetUpperBound(v, ub)
		m.RemoveConstraint(i)
		changed = true
	}

	return changed, nil
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

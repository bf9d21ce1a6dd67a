package presolve

import "github.com/arcondello/dwave-preprocessing/cqm"

// domainPropagation tightens variable bounds using each linear constraint's
// min/max activity: the smallest and largest value its expression can take
// given the current bounds of every variable it references. A constraint
// whose minimum possible activity already exceeds its right-hand side (for
// <=) or whose activity range excludes it entirely (for ==) proves the
// model infeasible. Otherwise, isolating one variable's term and asking
// what range it must stay in for the rest of the constraint to still be
// satisfiable can tighten that variable's bounds.
//
// Constraints with quadratic terms and soft constraints (whose violation is
// tolerated) are skipped: activity bounds aren't meaningful for the former,
// and tightening from the latter would wrongly treat a soft constraint as
// binding.
func domainPropagation(m *cqm.CQM) (bool, error) {
	changed := false

	for _, c := range m.Constraints() {
		if c.IsSoft() || !c.IsLinear() {
			continue
		}

		minAct, maxAct, ok := activityBounds(m, c)
		if !ok {
			continue
		}

		switch c.Sense() {
		case cqm.LE:
			if minAct > c.RHS()+feasibilityTolerance {
				return changed, newInfeasibleError("constraint minimum activity exceeds its bound")
			}
		case cqm.EQ:
			if minAct > c.RHS()+feasibilityTolerance || maxAct < c.RHS()-feasibilityTolerance {
				return changed, newInfeasibleError("constraint activity range excludes its target")
			}
		}

		for _, v := range c.Variables() {
			// Binary variables' bounds are never tightened here.
			if m.Vartype(v) == cqm.BINARY {
				continue
			}
			a := c.Linear(v)
			if a == 0 {
				continue
			}

			lb, ub := m.LowerBound(v), m.UpperBound(v)

			if nlb, nub, ok := tightenFromLE(m, c, v, a, minAct); ok {
				if cnlb := clampBound(nlb); cnlb > lb+minBoundChange {
					lb = cnlb
				}
				if cnub := clampBound(nub); cnub < ub-minBoundChange {
					ub = cnub
				}
			}
			if c.Sense() == cqm.EQ {
				if nlb, nub, ok := tightenFromGE(m, c, v, a, maxAct); ok {
					if cnlb := clampBound(nlb); cnlb > lb+minBoundChange {
						lb = cnlb
					}
					if cnub := clampBound(nub); cnub < ub-minBoundChange {
						ub = cnub
					}
				}
			}

			if lb != m.LowerBound(v) {
				m.SetLowerBound(v, lb)
				changed = true
			}
			if ub != m.UpperBound(v) {
				m.SetUpperBound(v, ub)
				changed = true
			}
		}
	}

	return changed, nil
}

// activityBounds returns the constraint's minimum and maximum possible
// activity. ok is false if any variable carries an infinite bound on a side
// the computation needs, since the result would be meaningless.
func activityBounds(m *cqm.CQM, c *cqm.Constraint) (min, max float64, ok bool) {
	for _, v := range c.Variables() {
		a := c.Linear(v)
		lb, ub := m.LowerBound(v), m.UpperBound(v)
		if isInfinite(lb) || isInfinite(ub) {
			return 0, 0, false
		}

		if a >= 0 {
			min += a * lb
			max += a * ub
		} else {
			min += a * ub
			max += a * lb
		}
	}
	return min, max, true
}

// tightenFromLE isolates v's term in `sum <= rhs`: the rest of the
// expression contributes at least (minAct - a*thisVarMinContribution), so
// v's term is bounded above by rhs minus that residual.
func tightenFromLE(m *cqm.CQM, c *cqm.Constraint, v int, a, minAct float64) (lb, ub float64, ok bool) {
	lbv, ubv := m.LowerBound(v), m.UpperBound(v)
	var contribution float64
	if a >= 0 {
		contribution = a * lbv
	} else {
		contribution = a * ubv
	}
	residual := minAct - contribution
	bound := (c.RHS() - residual) / a

	if a > 0 {
		return lbv, bound, true
	}
	return bound, ubv, true
}

// tightenFromGE isolates v's term in `sum >= rhs` (derived from an EQ
// constraint's other direction), symmetric to tightenFromLE.
func tightenFromGE(m *cqm.CQM, c *cqm.Constraint, v int, a, maxAct float64) (lb, ub float64, ok bool) {
	lbv, ubv := m.LowerBound(v), m.UpperBound(v)
	var contribution float64
	if a >= 0 {
		contribution = a * ubv
	} else {
		contribution = a * lbv
	}
	residual := maxAct - contribution
	bound := (c.RHS() - residual) / a

	if a > 0 {
		return bound, ubv, true
	}
	return lbv, bound, true
}

func isInfinite(x float64) bool {
	return x <= -infinity || x >= infinity
}

func clampBound(x float64) float64 {
	if x > newBoundMax {
		return newBoundMax
	}
	if x < -newBoundMax {
		return -newBoundMax
	}
	return x
}

package presolve

import (
	"math"

	"github.com/arcondello/dwave-preprocessing/cqm"
)

// tightenBoundsToVartype snaps the bounds of every integral-vartype variable
// (SPIN, BINARY, INTEGER) to the nearest integers that don't widen the
// domain: the lower bound rounds up, the upper bound rounds down.
func tightenBoundsToVartype(m *cqm.CQM) (bool, error) {
	changed := false
	for v := 0; v < m.NumVariables(); v++ {
		if !m.Vartype(v).IsIntegral() {
			continue
		}

		lb, ub := m.LowerBound(v), m.UpperBound(v)
		nlb, nub := math.Ceil(lb), math.Floor(ub)

		if nlb > nub+feasibilityTolerance {
			return changed, newInfeasibleError("integral variable's bounds contain no integer")
		}

		if nlb != lb {
			m.SetLowerBound(v, nlb)
			changed = true
		}
		if nub != ub {
			m.SetUpperBound(v, nub)
			changed = true
		}
	}
	return changed, nil
}

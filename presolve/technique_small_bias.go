package presolve

import "github.com/arcondello/dwave-preprocessing/cqm"

// removeSmallBiases drops linear terms of a linear constraint whose bias is
// negligible, adjusting the constraint's rhs to compensate. It is not
// defined for constraints with quadratic terms.
//
// A variable's bias is dropped unconditionally when its magnitude is below
// ignorableBias. It is also a candidate for conditional removal when its
// magnitude is below smallBiasThreshold and
// |a| * (ub-lb) * numVariables < smallBiasLimit * feasibilityTolerance; the
// conditional candidates only actually get removed if the total rhs
// adjustment they would require, summed over the whole constraint, stays
// under smallBiasSumLimit * feasibilityTolerance -- otherwise none of them
// are removed this round, since dropping only some of them would still
// leave the constraint biased by an amount too large to ignore.
func removeSmallBiases(m *cqm.CQM) bool {
	changed := false
	for _, c := range m.Constraints() {
		if !c.IsLinear() {
			continue
		}

		var unconditional []int
		var conditional []int
		reduction := 0.0
		reductionMagnitude := 0.0

		n := float64(c.NumVariables())
		for _, v := range c.Variables() {
			a := c.Linear(v)
			lb, ub := c.LowerBound(v), c.UpperBound(v)
			vRange := ub - lb

			if abs(a) < smallBiasThreshold && abs(a)*vRange*n < smallBiasLimit*feasibilityTolerance {
				conditional = append(conditional, v)
				reduction += a * lb
				reductionMagnitude += abs(a) * vRange
			}
			if abs(a) < ignorableBias {
				unconditional = append(unconditional, v)
			}
		}

		if reductionMagnitude < smallBiasSumLimit*feasibilityTolerance {
			c.SetRHS(c.RHS() - reduction)
			unconditional = append(unconditional, conditional...)
		}

		for _, v := range unconditional {
			c.RemoveVariable(v)
			changed = true
		}
	}
	return changed
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

package solve

import (
	"math"

	"github.com/arcondello/dwave-preprocessing/cqm"
)

// MostFractionalVariable returns the index of the integral-vartype variable
// whose relaxed value x sits closest to a half-integer, or -1 if x has no
// integral-vartype variable at all. A caller driving its own
// branch-and-bound on top of SolveRelaxation can use this to pick a
// branching variable the way textbook most-infeasible branching does.
func MostFractionalVariable(m *cqm.CQM, x []float64) int {
	best := -1
	bestDistance := math.Inf(1)

	for v, val := range x {
		if !m.Vartype(v).IsIntegral() {
			continue
		}
		_, frac := math.Modf(val)
		distance := math.Abs(0.5 - frac)
		if distance < bestDistance {
			bestDistance = distance
			best = v
		}
	}
	return best
}

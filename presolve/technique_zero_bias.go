package presolve

import "github.com/arcondello/dwave-preprocessing/cqm"

// removeZeroBiases drops quadratic interactions whose bias is exactly zero,
// then drops any variable left with a zero linear bias and no remaining
// interactions. It never changes the feasible region or the objective value
// of any assignment; it only shrinks the model's footprint.
func removeZeroBiases(m *cqm.CQM) bool {
	changed := false
	for _, e := range allExpressions(m) {
		for _, t := range e.QuadraticTerms() {
			if t.Bias == 0 {
				e.RemoveInteraction(t.U, t.V)
				changed = true
			}
		}

		vars := append([]int(nil), e.Variables()...)
		for _, v := range vars {
			if e.Linear(v) == 0 && e.NumInteractions(v) == 0 {
				e.RemoveVariable(v)
				changed = true
			}
		}
	}
	return changed
}

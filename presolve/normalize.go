package presolve

import (
	"math"

	"github.com/arcondello/dwave-preprocessing/cqm"
)

func allExpressions(m *cqm.CQM) []*cqm.Expression {
	exprs := make([]*cqm.Expression, 0, 1+m.NumConstraints())
	exprs = append(exprs, m.Objective())
	for _, c := range m.Constraints() {
		exprs = append(exprs, c.Expression)
	}
	return exprs
}

// normalize runs the fixed sequence of one-shot rewrites that bring a model
// into the canonical form the reduction techniques assume: no NaN biases,
// no SPIN variables, no constraint offsets, no quadratic self-loops, no GE
// constraints, and discrete markers that actually describe one-hot groups.
// Each step runs exactly once, in this order, regardless of whether an
// earlier step reports a change.
func normalize(mv *ModelView) (bool, error) {
	changed := false

	if err := rejectNaN(mv.Model()); err != nil {
		return changed, err
	}

	if c := convertSpinToBinary(mv); c {
		changed = true
	}
	if c := removeConstraintOffsets(mv.Model()); c {
		changed = true
	}
	if c := eliminateSelfLoops(mv); c {
		changed = true
	}
	if c := flipGEToLE(mv.Model()); c {
		changed = true
	}
	if c := validateDiscreteMarkers(mv.Model()); c {
		changed = true
	}

	return changed, nil
}

func rejectNaN(m *cqm.CQM) error {
	for _, e := range allExpressions(m) {
		if math.IsNaN(e.Offset()) {
			return newInvalidModelError(errNaNBias)
		}
		for _, v := range e.Variables() {
			if math.IsNaN(e.Linear(v)) {
				return newInvalidModelError(errNaNBias)
			}
		}
		for _, t := range e.QuadraticTerms() {
			if math.IsNaN(t.Bias) {
				return newInvalidModelError(errNaNBias)
			}
		}
	}
	return nil
}

func convertSpinToBinary(mv *ModelView) bool {
	changed := false
	for v := 0; v < mv.Model().NumVariables(); v++ {
		if mv.Model().Vartype(v) == cqm.SPIN {
			// ChangeVartype cannot fail for a SPIN variable going to BINARY.
			_ = mv.ChangeVartype(cqm.BINARY, v)
			changed = true
		}
	}
	return changed
}

func removeConstraintOffsets(m *cqm.CQM) bool {
	changed := false
	for _, c := range m.Constraints() {
		if c.Offset() == 0 {
			continue
		}
		c.SetRHS(c.RHS() - c.Offset())
		c.SetOffset(0)
		changed = true
	}
	return changed
}

// eliminateSelfLoops removes quadratic self-interactions (v, v) regardless
// of v's vartype, by introducing a companion variable c with the same
// vartype and bounds as v, rewriting the self-loop's bias as the cross term
// b*v*c, and tying c to v with an enforced v - c = 0 constraint -- a model
// with cross terms but no self-loops is what the downstream graph-based
// reduction techniques assume. A variable gets at most one companion no
// matter how many expressions its self-loop appears in.
func eliminateSelfLoops(mv *ModelView) bool {
	m := mv.Model()
	changed := false
	companions := make(map[int]int)

	for _, e := range allExpressions(m) {
		for _, v := range e.Variables() {
			if !e.HasInteraction(v, v) {
				continue
			}
			b := e.Quadratic(v, v)

			c, ok := companions[v]
			if !ok {
				c = mv.AddVariable(m.Vartype(v), m.LowerBound(v), m.UpperBound(v))
				m.AddLinearConstraint([]int{v, c}, []float64{1, -1}, cqm.EQ, 0)
				companions[v] = c
			}
			e.RemoveInteraction(v, v)
			e.AddQuadratic(v, c, b)
			changed = true
		}
	}
	return changed
}

func flipGEToLE(m *cqm.CQM) bool {
	changed := false
	for _, c := range m.Constraints() {
		if c.Sense() != cqm.GE {
			continue
		}
		c.Scale(-1)
		c.SetRHS(-c.RHS())
		c.SetSense(cqm.LE)
		changed = true
	}
	return changed
}

// validateDiscreteMarkers drops the discrete marker from any constraint
// that isn't actually a one-hot group, and resolves overlapping discrete
// groups (constraints marked discrete that share a variable) by keeping
// whichever was declared first and unmarking the rest -- a variable can
// belong to at most one discrete group.
func validateDiscreteMarkers(m *cqm.CQM) bool {
	changed := false
	var kept []*cqm.Constraint

	for _, c := range m.Constraints() {
		if !c.MarkedDiscrete() {
			continue
		}
		if !c.IsOnehot() {
			c.MarkDiscrete(false)
			changed = true
			continue
		}

		overlaps := false
		for _, k := range kept {
			if c.SharesVariables(k) {
				overlaps = true
				break
			}
		}
		if overlaps {
			c.MarkDiscrete(false)
			changed = true
			continue
		}
		kept = append(kept, c)
	}
	return changed
}

package presolve

// removeFixedVariables eliminates every variable whose bounds have
// collapsed to a single point, substituting that value everywhere and
// journaling the removal through the ModelView so Restore can put it back.
// Fixing a variable shifts every later index down by one, so the scan
// revisits the index it just fixed instead of advancing.
func removeFixedVariables(mv *ModelView) bool {
	changed := false

	v := 0
	for v < mv.Model().NumVariables() {
		lb, ub := mv.Model().LowerBound(v), mv.Model().UpperBound(v)
		if lb != ub {
			v++
			continue
		}
		mv.FixVariable(v, lb)
		changed = true
	}
	return changed
}

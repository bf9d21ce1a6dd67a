package presolve

import "github.com/arcondello/dwave-preprocessing/cqm"

// ModelView is the sole mutation boundary between a Presolver and the model
// it holds. Every mutation that changes what a variable assignment *means*
// -- adding a variable, narrowing SPIN to BINARY, fixing a variable to a
// constant -- is journaled here before (or after, where the journal's
// inversion requires the original numbering) being delegated to the
// underlying cqm.CQM. Everything else -- bound tightening, bias rewrites,
// constraint removal -- passes straight through, because none of it changes
// the correspondence between reduced-model and original-model variables.
type ModelView struct {
	model   *cqm.CQM
	journal *Journal
}

func newModelView(m *cqm.CQM) *ModelView {
	return &ModelView{model: m, journal: &Journal{}}
}

// Model returns the underlying CQM for read access and for the pass-through
// mutations the journal doesn't need to know about.
func (v *ModelView) Model() *cqm.CQM {
	return v.model
}

// Journal returns the accumulated transform log.
func (v *ModelView) Journal() *Journal {
	return v.journal
}

// AddVariable appends a variable and journals its addition, so Restore knows
// to drop the corresponding slot when mapping a reduced sample back.
func (v *ModelView) AddVariable(vt cqm.Vartype, lb, ub float64) int {
	idx := v.model.AddVariable(vt, lb, ub)
	v.journal.Record(AddTransform{V: idx})
	return idx
}

// ChangeVartype narrows a SPIN variable to BINARY. The journal record is
// written before the delegated rewrite so that its variable index refers to
// v's numbering at the moment of the call, per the journal's invariant --
// the substitution is `s = 2x - 1`, so a BINARY sample x maps back to
// `2x - 1`.
func (v *ModelView) ChangeVartype(vt cqm.Vartype, variable int) error {
	v.journal.Record(SubstituteTransform{V: variable, Multiplier: 2, Offset: -1})
	if err := v.model.ChangeVartype(vt, variable); err != nil {
		// Roll back the speculative record: the delegated call rejected the
		// change, so nothing happened and nothing should be journaled.
		v.journal.records = v.journal.records[:len(v.journal.records)-1]
		return newLogicError(err.Error())
	}
	return nil
}

// FixVariable pins a variable to value and removes it from the model. The
// delegated call is made first so the model's reindexing has already
// happened when the journal (which is read back-to-front, starting from the
// most recent record) is consulted.
func (v *ModelView) FixVariable(variable int, value float64) {
	v.model.FixVariable(variable, value)
	v.journal.Record(FixTransform{V: variable, Value: value})
}

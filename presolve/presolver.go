// Package presolve rewrites a constrained quadratic model into an
// equivalent, simpler model, recording every rewrite that changes what a
// variable assignment means so a solution to the reduced model can be
// mapped back to a solution of the original one.
package presolve

import (
	"go.uber.org/zap"

	"github.com/arcondello/dwave-preprocessing/cqm"
)

// Feasibility reports what a Presolver's run was able to establish about
// its model's feasibility.
type Feasibility int

const (
	// Unknown means no technique proved either feasibility or
	// infeasibility; the reduced model may still turn out either way.
	Unknown Feasibility = iota
	// Feasible means a technique proved the model has at least one
	// feasible assignment.
	Feasible
	// Infeasible means a technique proved the model has no feasible
	// assignment.
	Infeasible
)

// Presolver drives a constrained quadratic model through normalization and
// then iterated reduction, tracking the transforms needed to map a solution
// of the reduced model back to the original one.
type Presolver struct {
	view *ModelView

	techniques  TechniqueFlags
	normalized  bool
	detached    bool
	feasibility Feasibility

	log *zap.SugaredLogger
}

// New returns a Presolver over a fresh, empty model.
func New() *Presolver {
	return NewFromModel(cqm.New())
}

// NewFromModel returns a Presolver over the given model. The Presolver takes
// ownership of m: further direct mutation of m while the Presolver is in use
// will desynchronize the journal from the model's actual history.
func NewFromModel(m *cqm.CQM) *Presolver {
	return &Presolver{
		view: newModelView(m),
	}
}

// SetLogger attaches a logger the Presolver uses for round-by-round tracing
// at debug level. A nil logger (the default) disables tracing.
func (p *Presolver) SetLogger(log *zap.SugaredLogger) {
	p.log = log
}

// LoadDefaultPresolvers enables every reduction technique. Without this
// call (or an explicit SetTechniques), Apply's reduction phase is a no-op:
// Normalize still runs regardless of technique selection.
func (p *Presolver) LoadDefaultPresolvers() {
	p.techniques = All
}

// SetTechniques overrides which reduction techniques Apply's reduction
// phase may use. A zero value disables the reduction phase entirely;
// Normalize is unaffected either way.
func (p *Presolver) SetTechniques(flags TechniqueFlags) {
	p.techniques = flags
}

// Model returns the presolver's current model. It must not be retained
// past a call that mutates the Presolver (Normalize, Apply, DetachModel).
func (p *Presolver) Model() *cqm.CQM {
	return p.view.Model()
}

// Feasibility reports what's been established about the model's
// feasibility so far.
func (p *Presolver) Feasibility() Feasibility {
	return p.feasibility
}

// DetachModel returns the current model and marks the Presolver unusable
// for any further Normalize/Apply call. It exists so a caller can hand the
// model off to a solver without the Presolver's ModelView holding a
// reference that could let later accidental mutation desynchronize the
// journal.
func (p *Presolver) DetachModel() (*cqm.CQM, error) {
	if p.detached {
		return nil, newLogicError("model already detached")
	}
	p.detached = true
	return p.view.Model(), nil
}

// Restore maps a sample of the (possibly detached) reduced model's variable
// values back to a sample of the original model's variables, by inverting
// every transform the Presolver's journal recorded.
func Restore[T Numeric](p *Presolver, reduced []T) []T {
	return restoreJournal(p.view.journal, reduced)
}

// Normalize runs the one-shot normalization suite (NaN rejection,
// SPIN->BINARY conversion, constraint-offset removal, self-loop
// elimination, GE->LE flipping, discrete-marker validation). It is
// idempotent: calling it again after it has already run is a no-op that
// returns (false, nil). Apply calls Normalize itself if it hasn't run yet,
// so most callers never need to call this directly.
func (p *Presolver) Normalize() (bool, error) {
	if p.detached {
		return false, newLogicError("presolver's model has been detached")
	}
	if p.normalized {
		return false, nil
	}

	changed, err := normalize(p.view)
	if err != nil {
		return changed, err
	}
	p.normalized = true
	return changed, nil
}

// Apply runs Normalize (if it hasn't already run) and then the reduction
// phase: every enabled technique, in a fixed order, repeated until a round
// makes no change or maxRounds is reached. It returns whether the model
// changed at all (across both phases) and any error a technique raised.
// Once Apply (or Normalize) reports an InfeasibleError, Feasibility()
// reports Infeasible and the model should not be reduced further.
func (p *Presolver) Apply() (bool, error) {
	if p.detached {
		return false, newLogicError("presolver's model has been detached")
	}

	changedOverall := false

	if !p.normalized {
		changed, err := p.Normalize()
		changedOverall = changedOverall || changed
		if err != nil {
			p.noteFeasibilityError(err)
			return changedOverall, err
		}
	}

	if p.techniques == 0 {
		return changedOverall, nil
	}

	for round := 0; round < maxRounds; round++ {
		changed, err := p.reduceOnce()
		changedOverall = changedOverall || changed
		if err != nil {
			p.noteFeasibilityError(err)
			return changedOverall, err
		}
		debugf(p.log, "presolve round %d: changed=%v", round, changed)
		if !changed {
			break
		}
	}

	// Reduction may have invalidated discrete markers (e.g. folded away one
	// of a one-hot group's variables), so re-run that normalization step
	// once more before handing the model back.
	if validateDiscreteMarkers(p.view.Model()) {
		changedOverall = true
	}

	return changedOverall, nil
}

func (p *Presolver) noteFeasibilityError(err error) {
	if _, ok := err.(*InfeasibleError); ok {
		p.feasibility = Infeasible
	}
}

func (p *Presolver) reduceOnce() (bool, error) {
	m := p.view.Model()
	changed := false

	if removeZeroBiases(m) {
		changed = true
	}
	if removeSmallBiases(m) {
		changed = true
	}
	if c, err := removeSingleVariableConstraints(m); err != nil {
		return changed, err
	} else if c {
		changed = true
	}
	if c, err := tightenBoundsToVartype(m); err != nil {
		return changed, err
	} else if c {
		changed = true
	}
	if c, err := domainPropagation(m); err != nil {
		return changed, err
	} else if c {
		changed = true
	}
	if removeFixedVariables(p.view) {
		changed = true
	}

	return changed, nil
}

package presolve

import "github.com/pkg/errors"

// errNaNBias is the sentinel cause wrapped by InvalidModelError when
// normalization finds a NaN bias.
var errNaNBias = errors.New("nan bias")

// InvalidModelError is returned when the model handed to the presolver
// cannot be normalized regardless of technique configuration -- currently
// this means a NaN bias somewhere in the objective or a constraint.
type InvalidModelError struct {
	cause error
}

func (e *InvalidModelError) Error() string {
	return "biases cannot be NAN"
}

func (e *InvalidModelError) Unwrap() error {
	return e.cause
}

func newInvalidModelError(cause error) error {
	return &InvalidModelError{cause: errors.WithStack(cause)}
}

// InfeasibleError is returned when reduction proves the model has no
// feasible assignment, independent of objective value -- for
// example a single-variable constraint whose bound already excludes every
// value the variable's domain allows.
type InfeasibleError struct {
	reason string
}

func (e *InfeasibleError) Error() string {
	return "infeasible"
}

// Reason returns the human-readable detail behind the infeasibility, kept
// separate from Error() because Error()'s string is a stable API surface.
func (e *InfeasibleError) Reason() string {
	return e.reason
}

func newInfeasibleError(reason string) error {
	return &InfeasibleError{reason: reason}
}

// LogicError is returned for caller misuse: operating on a Presolver whose
// model has already been detached, or asking the ModelView for a vartype
// change the underlying model does not support.
type LogicError struct {
	msg string
}

func (e *LogicError) Error() string {
	return e.msg
}

func newLogicError(msg string) error {
	return &LogicError{msg: msg}
}

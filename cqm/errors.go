package cqm

import "github.com/pkg/errors"

// errUnknownVariable is wrapped with call-site context and used as the panic
// value when AddLinearConstraint is given a variable index the model doesn't
// recognize. It should never surface from correctly-written presolve code;
// it exists so that such a panic carries a readable message instead of a
// bare slice-index error.
var errUnknownVariable = errors.New("unknown variable")

func errVariableOutOfRange(v int, n int) error {
	return errors.Wrapf(errUnknownVariable, "variable %d (model has %d variables)", v, n)
}

var errUnknownConstraint = errors.New("unknown constraint")

func errConstraintOutOfRange(c int, n int) error {
	return errors.Wrapf(errUnknownConstraint, "constraint %d (model has %d constraints)", c, n)
}

// ErrUnsupportedVartypeChange is returned by CQM.ChangeVartype for any
// requested change other than SPIN->BINARY.
var ErrUnsupportedVartypeChange = errors.New("unsupported vartype change")

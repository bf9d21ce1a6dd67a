package solve

import (
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/arcondello/dwave-preprocessing/cqm"
)

// Relaxation is the result of solving a model's LP relaxation: its
// integrality constraints dropped, every variable treated as continuous.
type Relaxation struct {
	Objective float64
	X         []float64
}

// SolveRelaxation converts m to standard form and solves its LP relaxation.
// The returned X is trimmed back down to m's original variables, with any
// slack variables introduced for inequality constraints discarded.
func SolveRelaxation(m *cqm.CQM) (*Relaxation, error) {
	sf, err := ToStandardForm(m)
	if err != nil {
		return nil, err
	}

	z, x, err := lp.Simplex(sf.C, sf.A, sf.B, 0, nil)
	if err != nil {
		return nil, err
	}

	if len(x) > sf.NumOriginalVars {
		x = x[:sf.NumOriginalVars]
	}

	return &Relaxation{Objective: z, X: x}, nil
}

// IsIntegral reports whether every value in x corresponding to an integral
// vartype (SPIN, BINARY, INTEGER) is within tol of an integer -- the
// textbook branch-and-bound stopping condition, kept here as a building
// block even though this package doesn't implement the branch-and-bound
// search itself.
func IsIntegral(m *cqm.CQM, x []float64, tol float64) bool {
	for v, val := range x {
		if !m.Vartype(v).IsIntegral() {
			continue
		}
		if diff := val - roundToNearest(val); diff > tol || diff < -tol {
			return false
		}
	}
	return true
}

func roundToNearest(x float64) float64 {
	if x < 0 {
		return -roundToNearest(-x)
	}
	frac := x - float64(int64(x))
	if frac < 0.5 {
		return float64(int64(x))
	}
	return float64(int64(x)) + 1
}

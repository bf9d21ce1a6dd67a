// Package solve adapts a presolved, linear constrained quadratic model into
// the dense matrix form gonum's simplex solver expects, and solves its LP
// relaxation. It is an outer-shell illustration of how a caller might
// consume a presolver's output -- not part of the presolve core, and not a
// branch-and-bound engine: quadratic terms and integrality are out of
// scope here.
package solve

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/arcondello/dwave-preprocessing/cqm"
)

// StandardForm is a model in the form gonum's lp.Simplex solves:
// minimize c^T x subject to A x = b, x >= 0.
type StandardForm struct {
	C []float64
	A *mat.Dense
	B []float64

	// NumOriginalVars is the number of variables before slack variables
	// were appended to convert inequalities to equalities.
	NumOriginalVars int
}

// ErrNotLinear is returned by ToStandardForm when the model's objective or
// any constraint still has a quadratic term.
var ErrNotLinear = errors.New("model is not linear")

// ErrNonzeroLowerBound is returned by ToStandardForm when a variable's lower
// bound isn't zero. lp.Simplex assumes every variable is nonnegative;
// shifting variables with a nonzero lower bound is the caller's
// responsibility (e.g. by fixing or re-bounding upstream in presolve).
var ErrNonzeroLowerBound = errors.New("variable has a nonzero lower bound")

// ToStandardForm builds a StandardForm from a model whose objective and
// constraints are already linear (as a fully-reduced presolver output
// should be, modulo companion-variable self-loop substitutions, which stay
// linear in the variables lp.Simplex sees). Constraints with sense GE are
// rejected -- run the model through presolve.Normalize first, which flips
// GE to LE.
func ToStandardForm(m *cqm.CQM) (*StandardForm, error) {
	if !m.Objective().IsLinear() {
		return nil, ErrNotLinear
	}

	n := m.NumVariables()
	for v := 0; v < n; v++ {
		if m.LowerBound(v) != 0 {
			return nil, errors.Wrapf(ErrNonzeroLowerBound, "variable %d has lower bound %v", v, m.LowerBound(v))
		}
	}

	c := make([]float64, n)
	for v := 0; v < n; v++ {
		c[v] = m.Objective().Linear(v)
	}

	var (
		aRows [][]float64
		b     []float64
		gRows [][]float64
		h     []float64
	)

	for _, con := range m.Constraints() {
		if !con.IsLinear() {
			return nil, ErrNotLinear
		}
		row := make([]float64, n)
		for v := 0; v < n; v++ {
			row[v] = con.Linear(v)
		}

		switch con.Sense() {
		case cqm.EQ:
			aRows = append(aRows, row)
			b = append(b, con.RHS())
		case cqm.LE:
			gRows = append(gRows, row)
			h = append(h, con.RHS())
		case cqm.GE:
			return nil, errors.New("GE constraint present; normalize the model first")
		}
	}

	// Every variable's current upper bound, if finite, is itself a
	// single-variable LE constraint; encode it alongside the model's
	// own constraints so the relaxation respects it.
	for v := 0; v < n; v++ {
		ub := m.UpperBound(v)
		if ub >= 1e30 {
			continue
		}
		row := make([]float64, n)
		row[v] = 1
		gRows = append(gRows, row)
		h = append(h, ub)
	}

	A := denseFromRows(aRows, n)
	G := denseFromRows(gRows, n)

	cNew, aNew, bNew := appendSlacks(c, A, b, G, h)

	return &StandardForm{
		C:               cNew,
		A:               aNew,
		B:               bNew,
		NumOriginalVars: n,
	}, nil
}

func denseFromRows(rows [][]float64, cols int) *mat.Dense {
	if len(rows) == 0 {
		return nil
	}
	flat := make([]float64, 0, len(rows)*cols)
	for _, r := range rows {
		flat = append(flat, r...)
	}
	return mat.NewDense(len(rows), cols, flat)
}

// appendSlacks folds G x <= h into the equality system by adding one slack
// variable per inequality row, following the same construction as the
// teacher's ILP subproblem solver.
func appendSlacks(c []float64, A *mat.Dense, b []float64, G *mat.Dense, h []float64) (cNew []float64, aNew *mat.Dense, bNew []float64) {
	if G == nil {
		return c, A, b
	}

	nVar := len(c)
	nIneq := len(h)

	var nCons int
	if A != nil {
		nCons, _ = A.Dims()
	}

	nNewVar := nVar + nIneq
	nNewCons := nCons + nIneq

	cNew = make([]float64, nNewVar)
	copy(cNew, c)

	bNew = make([]float64, nNewCons)
	copy(bNew, b)
	copy(bNew[nCons:], h)

	aNew = mat.NewDense(nNewCons, nNewVar, nil)
	if A != nil {
		aNew.Slice(0, nCons, 0, nVar).(*mat.Dense).Copy(A)
	}
	aNew.Slice(nCons, nNewCons, 0, nVar).(*mat.Dense).Copy(G)

	bottomRight := aNew.Slice(nCons, nNewCons, nVar, nNewVar).(*mat.Dense)
	for i := 0; i < nIneq; i++ {
		bottomRight.Set(i, i, 1)
	}

	return cNew, aNew, bNew
}

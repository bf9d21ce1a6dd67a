package cqm

// pairKey canonicalizes an unordered variable pair so it can be used as a
// map key: lo is always the smaller index (lo == hi for a self-interaction).
type pairKey struct {
	lo, hi int
}

func makePairKey(u, v int) pairKey {
	if u > v {
		u, v = v, u
	}
	return pairKey{lo: u, hi: v}
}

// QuadraticTerm is one (u, v, bias) entry of an expression's quadratic part.
type QuadraticTerm struct {
	U, V int
	Bias float64
}

// Expression is an ordered set of variables with linear biases, a set of
// quadratic biases over unordered pairs (including self-pairs), and a scalar
// offset. It holds an unexported back-reference to its owning model so that
// per-variable bound/vartype lookups needed by the reduction techniques can
// be served directly from the expression.
type Expression struct {
	model *CQM

	order  []int
	pos    map[int]int
	linear map[int]float64
	quad   map[pairKey]float64
	adj    map[int]map[int]struct{}
	offset float64
}

func newExpression(model *CQM) *Expression {
	return &Expression{
		model:  model,
		pos:    make(map[int]int),
		linear: make(map[int]float64),
		quad:   make(map[pairKey]float64),
		adj:    make(map[int]map[int]struct{}),
	}
}

// Variables returns the variables referenced by this expression, in the
// order they were first added to it. The returned slice must not be
// mutated by the caller.
func (e *Expression) Variables() []int {
	return e.order
}

// NumVariables returns the number of variables referenced by this
// expression.
func (e *Expression) NumVariables() int {
	return len(e.order)
}

// HasVariable reports whether v is referenced by this expression.
func (e *Expression) HasVariable(v int) bool {
	_, ok := e.pos[v]
	return ok
}

func (e *Expression) addVariableIfAbsent(v int) {
	if _, ok := e.pos[v]; ok {
		return
	}
	e.pos[v] = len(e.order)
	e.order = append(e.order, v)
	e.linear[v] = 0
	e.adj[v] = make(map[int]struct{})
}

// Linear returns the linear bias of v in this expression (0 if v is absent
// or simply has no linear term).
func (e *Expression) Linear(v int) float64 {
	return e.linear[v]
}

// SetLinear sets the linear bias of v, adding v to the expression if it
// isn't already present.
func (e *Expression) SetLinear(v int, bias float64) {
	e.addVariableIfAbsent(v)
	e.linear[v] = bias
}

// AddLinear adds delta to the linear bias of v, adding v to the expression
// if it isn't already present.
func (e *Expression) AddLinear(v int, delta float64) {
	e.addVariableIfAbsent(v)
	e.linear[v] += delta
}

// Quadratic returns the quadratic bias between u and v (0 if absent).
func (e *Expression) Quadratic(u, v int) float64 {
	return e.quad[makePairKey(u, v)]
}

// HasInteraction reports whether there is a recorded (possibly zero) bias
// between u and v.
func (e *Expression) HasInteraction(u, v int) bool {
	_, ok := e.quad[makePairKey(u, v)]
	return ok
}

// NumInteractions returns the number of distinct variables v interacts with,
// counting a self-interaction once.
func (e *Expression) NumInteractions(v int) int {
	return len(e.adj[v])
}

// SetQuadratic sets the bias between u and v, adding both to the expression
// if absent.
func (e *Expression) SetQuadratic(u, v int, bias float64) {
	e.addVariableIfAbsent(u)
	e.addVariableIfAbsent(v)
	e.quad[makePairKey(u, v)] = bias
	e.linkAdjacency(u, v)
}

// AddQuadratic adds delta to the bias between u and v, adding both to the
// expression if absent.
func (e *Expression) AddQuadratic(u, v int, delta float64) {
	e.addVariableIfAbsent(u)
	e.addVariableIfAbsent(v)
	e.quad[makePairKey(u, v)] += delta
	e.linkAdjacency(u, v)
}

func (e *Expression) linkAdjacency(u, v int) {
	if u == v {
		e.adj[u][u] = struct{}{}
		return
	}
	e.adj[u][v] = struct{}{}
	e.adj[v][u] = struct{}{}
}

// RemoveInteraction deletes the bias between u and v, if any.
func (e *Expression) RemoveInteraction(u, v int) {
	key := makePairKey(u, v)
	if _, ok := e.quad[key]; !ok {
		return
	}
	delete(e.quad, key)
	if u == v {
		delete(e.adj[u], u)
		return
	}
	delete(e.adj[u], v)
	delete(e.adj[v], u)
}

// RemoveVariable drops v from the expression entirely: its linear bias and
// every interaction it participates in are discarded without adjusting any
// other bias. Callers that need the substitution performed (offset/linear
// adjustments for a fixed or eliminated variable) must do that first -- see
// CQM.FixVariable.
func (e *Expression) RemoveVariable(v int) {
	i, ok := e.pos[v]
	if !ok {
		return
	}
	for u := range e.adj[v] {
		e.RemoveInteraction(v, u)
	}
	delete(e.adj, v)
	delete(e.linear, v)
	delete(e.pos, v)
	e.order = append(e.order[:i], e.order[i+1:]...)
	for j := i; j < len(e.order); j++ {
		e.pos[e.order[j]] = j
	}
}

// QuadraticTerms returns the expression's quadratic terms in a
// deterministic (ascending u, then v) order.
func (e *Expression) QuadraticTerms() []QuadraticTerm {
	terms := make([]QuadraticTerm, 0, len(e.quad))
	for k, bias := range e.quad {
		terms = append(terms, QuadraticTerm{U: k.lo, V: k.hi, Bias: bias})
	}
	sortQuadraticTerms(terms)
	return terms
}

func sortQuadraticTerms(terms []QuadraticTerm) {
	// insertion sort: expressions are small (a handful of variables), so
	// this never needs to beat the standard sort package -- just avoid the
	// import for a hot path that only ever touches a few dozen entries.
	for i := 1; i < len(terms); i++ {
		j := i
		for j > 0 && less(terms[j], terms[j-1]) {
			terms[j], terms[j-1] = terms[j-1], terms[j]
			j--
		}
	}
}

func less(a, b QuadraticTerm) bool {
	if a.U != b.U {
		return a.U < b.U
	}
	return a.V < b.V
}

// Offset returns the expression's scalar offset.
func (e *Expression) Offset() float64 {
	return e.offset
}

// SetOffset sets the expression's scalar offset.
func (e *Expression) SetOffset(offset float64) {
	e.offset = offset
}

// AddOffset adds delta to the expression's scalar offset.
func (e *Expression) AddOffset(delta float64) {
	e.offset += delta
}

// IsLinear reports whether the expression has no quadratic terms.
func (e *Expression) IsLinear() bool {
	return len(e.quad) == 0
}

// Scale multiplies every linear bias, quadratic bias, and the offset by
// factor.
func (e *Expression) Scale(factor float64) {
	for v := range e.linear {
		e.linear[v] *= factor
	}
	for k := range e.quad {
		e.quad[k] *= factor
	}
	e.offset *= factor
}

// LowerBound forwards to the owning model's current lower bound for v.
func (e *Expression) LowerBound(v int) float64 {
	return e.model.LowerBound(v)
}

// UpperBound forwards to the owning model's current upper bound for v.
func (e *Expression) UpperBound(v int) float64 {
	return e.model.UpperBound(v)
}

// Vartype forwards to the owning model's vartype for v.
func (e *Expression) Vartype(v int) Vartype {
	return e.model.Vartype(v)
}

// reindexAbove decrements every variable index greater than removed by one,
// rebuilding every internal map. Used after CQM removes a variable slot so
// that every expression's indices stay in sync with the model's compacted
// variable table. removed itself must no longer be present in e.
func (e *Expression) reindexAbove(removed int) {
	shift := func(v int) int {
		if v > removed {
			return v - 1
		}
		return v
	}

	newOrder := make([]int, len(e.order))
	newPos := make(map[int]int, len(e.pos))
	for i, v := range e.order {
		nv := shift(v)
		newOrder[i] = nv
		newPos[nv] = i
	}
	e.order = newOrder
	e.pos = newPos

	newLinear := make(map[int]float64, len(e.linear))
	for v, bias := range e.linear {
		newLinear[shift(v)] = bias
	}
	e.linear = newLinear

	newQuad := make(map[pairKey]float64, len(e.quad))
	for k, bias := range e.quad {
		newQuad[makePairKey(shift(k.lo), shift(k.hi))] = bias
	}
	e.quad = newQuad

	newAdj := make(map[int]map[int]struct{}, len(e.adj))
	for v, neighbors := range e.adj {
		nn := make(map[int]struct{}, len(neighbors))
		for u := range neighbors {
			nn[shift(u)] = struct{}{}
		}
		newAdj[shift(v)] = nn
	}
	e.adj = newAdj
}

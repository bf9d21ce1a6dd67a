package presolve

// Tolerances shared by the reduction techniques. Values mirror the
// thresholds long-used by the presolver this package supersedes: loose
// enough to strip floating-point noise, tight enough that no reduction
// changes a model's feasible region or optimal value.
const (
	// smallBiasThreshold (C_BIAS) is the largest linear bias magnitude
	// eligible for conditional removal from a linear constraint at all.
	smallBiasThreshold = 1e-3

	// smallBiasLimit (C_LIMIT) scales the conditional-removal test: a
	// variable's bias is a candidate for removal when
	// |a| * (ub-lb) * numVariables < smallBiasLimit * feasibilityTolerance.
	smallBiasLimit = 1e-2

	// ignorableBias (U_BIAS) is the threshold below which a linear bias is
	// dropped unconditionally, independent of the conditional-removal test.
	ignorableBias = 1e-10

	// smallBiasSumLimit (SUM_LIMIT) bounds the total rhs adjustment a round
	// of conditional small-bias removal may accumulate for a single
	// constraint; if the accumulated magnitude exceeds this (scaled by
	// feasibilityTolerance), none of that round's conditional candidates are
	// removed.
	smallBiasSumLimit = 1e-1

	// feasibilityTolerance (FEAS) is the slack allowed when comparing an
	// activity bound against a right-hand side.
	feasibilityTolerance = 1e-6

	// infinity (INF) stands in for an unbounded bound.
	infinity = 1e30

	// newBoundMax caps a bound produced by domain propagation, so a chain of
	// propagations can't explode towards infinity.
	newBoundMax = 1e8

	// minBoundChange (MIN_CHANGE) is the smallest improvement domain
	// propagation will act on; smaller improvements are treated as no
	// change, so the round loop can reach a fixed point.
	minBoundChange = 1e-3 * feasibilityTolerance

	// maxRounds bounds how many times the reduction loop iterates before
	// the driver gives up on reaching a fixed point.
	maxRounds = 100
)

package presolve

// TechniqueFlags is a bitset selecting whether the driver's reduction phase
// runs at all. The bit layout is an opaque contract between the presolver
// and its caller: named bits exist so a caller can compose a value, but no
// external consumer should interpret individual bits -- the driver itself
// only ever asks "is this bitset nonzero", exactly as the two named
// techniques below were left in the legacy sketch this module supersedes
// (see DESIGN.md, "Two presolver sketches").
type TechniqueFlags uint64

const (
	// Technique1 is a named, individually-meaningless bit kept for parity
	// with the external contract.
	Technique1 TechniqueFlags = 1 << iota
	// Technique2 is a named, individually-meaningless bit kept for parity
	// with the external contract.
	Technique2

	// Normalization is the composite of the two bits above; it exists so
	// callers that migrate from the legacy sketch have a symbol to port.
	// Like any nonzero value, passing it to SetTechniques enables the whole
	// reduction phase.
	Normalization = Technique1 | Technique2

	// All enables the reduction phase: every technique runs, every round,
	// until a fixed point or maxRounds is reached.
	All TechniqueFlags = ^TechniqueFlags(0)
)

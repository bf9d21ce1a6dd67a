package presolve

// Transform is a variable-level change recorded by the Journal. It is a
// closed sum type: the only implementations are AddTransform, FixTransform,
// and SubstituteTransform. Modeling it this way (rather than a single
// struct with fields that sit NaN-initialized and unused depending on the
// kind) keeps each record's payload to exactly what it needs.
type Transform interface {
	isTransform()
}

// AddTransform records that a fresh variable was appended at index V.
type AddTransform struct {
	V int
}

func (AddTransform) isTransform() {}

// FixTransform records that variable V was removed after being pinned to
// Value.
type FixTransform struct {
	V     int
	Value float64
}

func (FixTransform) isTransform() {}

// SubstituteTransform records that variable V's encoding changed: the
// original value equals Multiplier*new + Offset.
type SubstituteTransform struct {
	V          int
	Multiplier float64
	Offset     float64
}

func (SubstituteTransform) isTransform() {}

// Journal is an append-only log of Transform records sufficient to map any
// assignment of the reduced model's variables back to an assignment of the
// original model's variables.
//
// Indices in each record refer to the variable numbering at the moment the
// record was written. Restore walks the records in reverse to reconstruct
// those numberings one step at a time -- it must never be replayed
// front-to-back.
type Journal struct {
	records []Transform
}

// Record appends a transform to the journal.
func (j *Journal) Record(t Transform) {
	j.records = append(j.records, t)
}

// Len returns the number of recorded transforms.
func (j *Journal) Len() int {
	return len(j.records)
}

// Numeric constrains the value types Restore can operate on.
type Numeric interface {
	~float64 | ~float32 | ~int | ~int64
}

// restoreJournal maps a sample of reduced-model variable values back to a
// sample of original-model variable values by inverting every recorded
// transform, back to front. The public entry point is Restore, which takes
// a Presolver rather than a bare Journal.
func restoreJournal[T Numeric](j *Journal, reduced []T) []T {
	sample := make([]T, len(reduced))
	copy(sample, reduced)

	for i := len(j.records) - 1; i >= 0; i-- {
		switch t := j.records[i].(type) {
		case FixTransform:
			sample = insertAt(sample, t.V, T(t.Value))
		case SubstituteTransform:
			sample[t.V] = T(float64(sample[t.V])*t.Multiplier + t.Offset)
		case AddTransform:
			sample = removeAt(sample, t.V)
		}
	}
	return sample
}

func insertAt[T any](s []T, i int, v T) []T {
	s = append(s, v)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

func removeAt[T any](s []T, i int) []T {
	return append(s[:i], s[i+1:]...)
}
